package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Run fn and return the TriangulateError it raised, if any.
func catch(fn func()) (err error) {
	defer func() {
		err = HandleTriangulatePanicRecover(recover())
	}()
	fn()
	return nil
}

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool, shouldFault bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom at %d", 3)
		}

		if shouldPanic {
			panic("true panic")
		}

		if shouldFault {
			indices, i := []int{0, 1, 2}, 3
			_ = indices[i]
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false, false)
		assert.EqualError(t, err, "kaboom at 3")
		var triangulateErr *TriangulateError
		assert.True(t, errors.As(err, &triangulateErr))
		assert.EqualError(t, errors.Cause(err), "kaboom at 3")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true, false)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false, false)
		assert.NoError(t, err)
	})
}

func TestCheckIndices(t *testing.T) {
	assert.NoError(t, catch(func() { checkIndices([]int{0, 1, 2}, 3) }))
	assert.EqualError(t, catch(func() { checkIndices([]int{0, 1}, 3) }),
		"index count 2 is not a multiple of 3")
	assert.EqualError(t, catch(func() { checkIndices([]int{0, 1, 3}, 3) }),
		"index 3 at position 2 is outside the 3 vertices")
	assert.EqualError(t, catch(func() { checkIndices([]int{0, -1, 2}, 3) }),
		"index -1 at position 1 is outside the 3 vertices")
}

func TestCheckBuffer_Holes(t *testing.T) {
	data := []float64{0, 0, 1, 0, 0, 1, 1, 1}
	assert.NoError(t, catch(func() { checkBuffer(data, []int{2, 2, 4}, 2) }))
	assert.EqualError(t, catch(func() { checkBuffer(data, []int{5}, 2) }),
		"hole 0 starts at vertex 5, want a value in [0, 4]")
	assert.EqualError(t, catch(func() { checkBuffer(data, []int{3, 1}, 2) }),
		"hole 1 starts at vertex 1, want a value in [3, 4]")
}
