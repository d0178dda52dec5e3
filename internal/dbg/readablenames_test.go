package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type thing struct{ n int }
	a, b := &thing{1}, &thing{2}

	assert.Equal(t, Name(a), Name(a))
	assert.NotEmpty(t, Name(a))
	// Distinct pointers, distinct names, almost always. Petname can repeat, so
	// only check that they were memoized separately.
	Name(b)
	mu.Lock()
	assert.Len(t, memo, 2)
	mu.Unlock()

	var missing *thing
	assert.Equal(t, "Ø", Name(missing))
	assert.Equal(t, "Ø", Name(nil))
}
