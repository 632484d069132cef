package settings

import (
	"os"
	"testing"

	"github.com/accessfs/gsxa/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	st := NewStoreDir(log2.NewTest(t, log2.LAll), t.TempDir())
	assert.Equal(t, Settings{}, st.Load())
}

func TestLoadCorruptFile(t *testing.T) {
	t.Parallel()

	st := NewStoreDir(log2.NewTest(t, log2.LAll), t.TempDir())
	require.NoError(t, os.WriteFile(st.Path(), []byte("{not json"), 0o644))
	assert.Equal(t, Settings{}, st.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	st := NewStoreDir(log2.NewTest(t, log2.LAll), t.TempDir())
	st.Save(Settings{SpeakMenu: true})
	assert.Equal(t, Settings{SpeakMenu: true}, st.Load())

	st.Save(Settings{SpeakMenu: true, SpeakTooltip: true})
	assert.Equal(t, Settings{SpeakMenu: true, SpeakTooltip: true}, st.Load())
}

func TestSaveCreatesDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir() + "/nested/gsxa"
	st := NewStoreDir(log2.NewTest(t, log2.LAll), dir)
	st.Save(Settings{SpeakTooltip: true})
	assert.Equal(t, Settings{SpeakTooltip: true}, st.Load())
}

func TestFileIsHumanReadable(t *testing.T) {
	t.Parallel()

	st := NewStoreDir(log2.NewTest(t, log2.LAll), t.TempDir())
	st.Save(Settings{SpeakMenu: true})
	b, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"speak_menu": true`)
	assert.Contains(t, string(b), `"speak_tooltip": false`)
}
