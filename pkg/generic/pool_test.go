package generic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetPoolClearsValues(t *testing.T) {
	p := NewResetPool(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

	buf := p.Get()
	buf.WriteString("dirty")
	p.Put(buf)

	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 0, p.Get().Len())
}

func TestPoolGeneratesValues(t *testing.T) {
	calls := 0
	p := NewPool(func() int {
		calls++
		return 7
	})

	assert.Equal(t, 7, p.Get())
	assert.GreaterOrEqual(t, calls, 1)
}
