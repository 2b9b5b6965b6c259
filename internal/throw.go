package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Validation failures anywhere below the public API are raised as panics with
// a TriangulateError, and recovered into an ordinary error at the boundary.
type TriangulateError struct {
	err error
}

func (e *TriangulateError) Error() string { return e.err.Error() }
func (e *TriangulateError) Cause() error  { return e.err }
func (e *TriangulateError) Unwrap() error { return e.err }

func fatalf(format string, args ...interface{}) {
	panic(&TriangulateError{errors.Errorf(format, args...)})
}

// Convert a recovered TriangulateError into an error. Any other panic,
// runtime errors included, is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if e, ok := r.(*TriangulateError); ok {
			return e
		}
		panic(r)
	}
	return nil
}

func checkDim(dim int) {
	if dim != 2 && dim != 3 {
		fatalf("unsupported dimension %d, want 2 or 3", dim)
	}
}

func checkBuffer(data []float64, holeIndices []int, dim int) {
	checkDim(dim)
	if len(data)%dim != 0 {
		fatalf("vertex buffer length %d is not a multiple of dimension %d", len(data), dim)
	}
	count := len(data) / dim
	last := 0
	for i, hole := range holeIndices {
		if hole < last || hole > count {
			fatalf("hole %d starts at vertex %d, want a value in [%d, %d]", i, hole, last, count)
		}
		last = hole
	}
}

func checkIndices(indices []int, count int) {
	if len(indices)%3 != 0 {
		fatalf("index count %d is not a multiple of 3", len(indices))
	}
	for i, index := range indices {
		if index < 0 || index >= count {
			fatalf("index %d at position %d is outside the %d vertices", index, i, count)
		}
	}
}

func checkModulo(modulo float64) {
	if math.IsNaN(modulo) || modulo <= 0 {
		fatalf("modulo must be positive, got %v", modulo)
	}
}
