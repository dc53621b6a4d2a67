package maybe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	s := Some(false)
	assert.True(t, s.IsValid(), "Some(false) must be set even though false is the zero value")
	assert.False(t, s.Value())

	var zero Maybe[bool]
	assert.False(t, zero.IsValid())
	assert.Equal(t, None[bool](), zero)
}

func TestValueOrDefault(t *testing.T) {
	assert.Equal(t, "x", None[string]().ValueOrDefault("x"))
	assert.Equal(t, "", Some("").ValueOrDefault("x"))
}

func TestPtrRoundTrip(t *testing.T) {
	assert.Nil(t, None[int]().Ptr())

	n := 42
	m := FromPtr(&n)
	assert.True(t, m.IsValid())
	assert.Equal(t, 42, *m.Ptr())

	n = 7
	assert.Equal(t, 42, m.Value(), "FromPtr copies the value")
	assert.False(t, FromPtr[int](nil).IsValid())
}
