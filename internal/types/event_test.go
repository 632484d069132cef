package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoiceCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key  InputKey
		code int
		ok   bool
	}{
		{'1', 0, true},
		{'2', 1, true},
		{'9', 8, true},
		{'0', 9, true},
		{'A', 10, true},
		{'E', 14, true},
		{'F', -1, false},
		{'x', -1, false},
		{0, -1, false},
	}
	for _, c := range cases {
		e := InputEvent{Key: c.key}
		code, ok := e.ChoiceCode()
		assert.Equal(t, c.ok, ok, "key %c", rune(c.key))
		assert.Equal(t, c.code, code, "key %c", rune(c.key))
	}
}

func TestInputEventPredicates(t *testing.T) {
	t.Parallel()

	e := InputEvent{Key: '5'}
	assert.True(t, e.IsDigit())
	assert.False(t, e.IsMenuLetter())

	e = InputEvent{Key: 'C'}
	assert.False(t, e.IsDigit())
	assert.True(t, e.IsMenuLetter())

	e = InputEvent{}
	assert.True(t, e.IsZero())
}
