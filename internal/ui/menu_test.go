package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMenuFileExample(t *testing.T) {
	t.Parallel()

	title, opts, err := ParseMenuFile([]byte("Main\nRequest pushback\nRequest de-ice\n"))
	require.NoError(t, err)
	assert.Equal(t, "Main", title)
	require.Len(t, opts, 2+5)

	assert.Equal(t, MenuOption{Key: "1", Label: "Request pushback", Choice: 0}, opts[0])
	assert.Equal(t, MenuOption{Key: "2", Label: "Request de-ice", Choice: 1}, opts[1])
	for i, key := range []string{"A", "B", "C", "D", "E"} {
		assert.Equal(t, key, opts[2+i].Key)
		assert.Equal(t, 10+i, opts[2+i].Choice)
	}

	m := Menu{Title: title, Options: opts}
	lines := m.Render()
	assert.Equal(t, "Main", lines[0])
	assert.Equal(t, "1 - Request pushback", lines[1])
	assert.Equal(t, "2 - Request de-ice", lines[2])
}

func TestParseMenuFileTenthLineIsKeyZero(t *testing.T) {
	t.Parallel()

	src := "Title\n"
	for i := 1; i <= 12; i++ {
		src += fmt.Sprintf("option %d\n", i)
	}
	_, opts, err := ParseMenuFile([]byte(src))
	require.NoError(t, err)
	// 12 content lines: only 10 fit one menu page
	require.Len(t, opts, 10+5)
	assert.Equal(t, "9", opts[8].Key)
	assert.Equal(t, 8, opts[8].Choice)
	assert.Equal(t, "0", opts[9].Key)
	assert.Equal(t, 9, opts[9].Choice)
	assert.Equal(t, "option 10", opts[9].Label)
	assert.Equal(t, "A", opts[10].Key)
}

func TestParseMenuFileCRLF(t *testing.T) {
	t.Parallel()

	title, opts, err := ParseMenuFile([]byte("Deice menu\r\nLeft wing\r\nRight wing\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "Deice menu", title)
	require.Len(t, opts, 2+5)
	assert.Equal(t, "Left wing", opts[0].Label)
}

func TestParseMenuFileTitleOnly(t *testing.T) {
	t.Parallel()

	title, opts, err := ParseMenuFile([]byte("Waiting...\n"))
	require.NoError(t, err)
	assert.Equal(t, "Waiting...", title)
	require.Len(t, opts, 5) // fixed options are appended even with no content
	assert.Equal(t, "A", opts[0].Key)
}

func TestParseMenuFileEmpty(t *testing.T) {
	t.Parallel()

	_, _, err := ParseMenuFile([]byte(""))
	assert.Error(t, err)
	_, _, err = ParseMenuFile([]byte("\n\n  \n"))
	assert.Error(t, err)
}

func TestMenuByChoice(t *testing.T) {
	t.Parallel()

	_, opts, err := ParseMenuFile([]byte("Main\none\ntwo\n"))
	require.NoError(t, err)
	m := Menu{Options: opts}

	o, ok := m.ByChoice(1)
	require.True(t, ok)
	assert.Equal(t, "two", o.Label)
	o, ok = m.ByChoice(14)
	require.True(t, ok)
	assert.Equal(t, "E", o.Key)
	_, ok = m.ByChoice(5) // key without a listed option
	assert.False(t, ok)
}

func TestMenuMoveHighlight(t *testing.T) {
	t.Parallel()

	_, opts, err := ParseMenuFile([]byte("Main\none\ntwo\n"))
	require.NoError(t, err)
	m := Menu{Options: opts}

	m.MoveHighlight(-1)
	assert.Equal(t, len(opts)-1, m.Highlighted)
	m.MoveHighlight(1)
	assert.Equal(t, 0, m.Highlighted)
}
