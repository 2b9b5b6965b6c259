package internal

import (
	"io"
	"log"
	"sync/atomic"

	"github.com/Open-S2/earclip/dbg"
)

// Engine trace. Off unless an output is set. Geometry that can't be handled
// (a hole with no bridge, a ring with no valid diagonal) is never an error, so
// this is the only place it shows up.

var (
	tracer atomic.Value
	calls  uint64
)

func init() {
	tracer.Store((*log.Logger)(nil))
}

// SetTraceOutput routes the trace to w. A nil writer turns it off.
func SetTraceOutput(w io.Writer) {
	if w == nil {
		tracer.Store((*log.Logger)(nil))
		return
	}
	tracer.Store(log.New(w, "earclip: ", log.Lmicroseconds))
}

func traceEnabled() bool {
	return tracer.Load().(*log.Logger) != nil
}

func tracef(format string, args ...interface{}) {
	if l := tracer.Load().(*log.Logger); l != nil {
		l.Printf(format, args...)
	}
}

// Readable name for a ring node, stable for the rest of the process. The key
// holds no pointers, so naming a node doesn't pin its arena.
func (e *earcut) name(h handle) string {
	if !traceEnabled() {
		return ""
	}
	if h == none {
		return dbg.Name(nil)
	}
	return dbg.Name(e.key(h))
}

type nodeKey struct {
	call uint64
	h    handle
}

func (e *earcut) key(h handle) nodeKey {
	return nodeKey{e.call, h}
}

func passName(p pass) string {
	return dbg.Level(int(p))
}
