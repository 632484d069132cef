package config_global

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/accessfs/gsxa/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFull(t *testing.T) {
	t.Parallel()

	src := `
log_level = "debug"
gsx_root = "C:\\GSX"
reload_delay_ms = 250
hotkey_mods = 6
hotkey_vk = 123

sound {
  menu_open = "sounds/open.mp3"
  menu_open_volume = 12
}

speech {
  engine = "sapi"
  voice = "Microsoft Zira"
}
`
	c := ParseConfig(log2.NewTest(t, log2.LAll), []byte(src))
	assert.Equal(t, log2.Level(log2.LDebug), c.Level())
	assert.Equal(t, `C:\GSX`, c.GsxRoot)
	assert.Equal(t, 250*time.Millisecond, c.ReloadDelay())
	assert.Equal(t, 6, c.HotkeyMods)
	assert.Equal(t, 123, c.HotkeyVK)
	require.NotNil(t, c.Sound)
	assert.Equal(t, "sounds/open.mp3", c.Sound.MenuOpen)
	assert.Equal(t, 12, c.Sound.MenuOpenVolume)
	assert.False(t, c.Sound.Disabled)
	require.NotNil(t, c.Speech)
	assert.Equal(t, "sapi", c.Speech.Engine)
	assert.Equal(t, "Microsoft Zira", c.Speech.Voice)
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	c := ParseConfig(log2.NewTest(t, log2.LAll), []byte(""))
	assert.Equal(t, log2.Level(log2.LInfo), c.Level())
	assert.Equal(t, "", c.GsxRoot)
	assert.Equal(t, 500*time.Millisecond, c.ReloadDelay())
	require.NotNil(t, c.Sound)
	assert.True(t, c.Sound.Disabled, "sound is opt-in")
	require.NotNil(t, c.Speech)
	assert.False(t, c.Speech.Disabled)
}

func TestReadConfigMissingFile(t *testing.T) {
	t.Parallel()

	c := ReadConfig(log2.NewTest(t, log2.LAll), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Equal(t, 500*time.Millisecond, c.ReloadDelay())
	require.NotNil(t, c.Sound)
	require.NotNil(t, c.Speech)
}

func TestReadConfigFile(t *testing.T) {
	t.Parallel()

	fn := filepath.Join(t.TempDir(), "gsxa.hcl")
	require.NoError(t, os.WriteFile(fn, []byte("log_level = \"error\"\n"), 0o644))
	c := ReadConfig(log2.NewTest(t, log2.LAll), fn)
	assert.Equal(t, log2.Level(log2.LError), c.Level())
}
