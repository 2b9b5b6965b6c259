package dbg

import (
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type key struct{ n int }

	first := Name(key{1})
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(key{1}), "names are memoized")
}

func TestName_Nil(t *testing.T) {
	var p *int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(p))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, aurora.Green("P0").String(), Level(0))
	assert.Equal(t, aurora.Red("P3").String(), Level(3))
	assert.Equal(t, aurora.Red("P7").String(), Level(7))
}
