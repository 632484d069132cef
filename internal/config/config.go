package config_global

import (
	"os"
	"time"

	"github.com/accessfs/gsxa/helpers"
	"github.com/accessfs/gsxa/internal/sound"
	"github.com/accessfs/gsxa/internal/speech"
	"github.com/accessfs/gsxa/log2"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

type Config struct {
	LogLevel string `hcl:"log_level,optional"` // error|info|debug
	// overrides the registry lookup of the GSX install root
	GsxRoot       string         `hcl:"gsx_root,optional"`
	ReloadDelayMs int            `hcl:"reload_delay_ms,optional"`
	HotkeyMods    int            `hcl:"hotkey_mods,optional"`
	HotkeyVK      int            `hcl:"hotkey_vk,optional"`
	Sound         *sound.Config  `hcl:"sound,block"`
	Speech        *speech.Config `hcl:"speech,block"`
}

// ReadConfig tolerates a missing file (all defaults), parse errors are fatal.
func ReadConfig(log *log2.Log, fn string) *Config {
	c := &Config{}
	if _, err := os.Stat(fn); err != nil {
		log.Infof("config file(%v) not found, using defaults", fn)
		return c.withDefaults()
	}
	if err := hclsimple.DecodeFile(fn, nil, c); err != nil {
		log.Fatalf("parse config file(%v) error(%v)", fn, err)
	}
	return c.withDefaults()
}

func ParseConfig(log *log2.Log, src []byte) *Config {
	c := &Config{}
	if err := hclsimple.Decode("config.hcl", src, nil, c); err != nil {
		log.Fatalf("parse config error(%v)", err)
	}
	return c.withDefaults()
}

func (c *Config) withDefaults() *Config {
	if c.Sound == nil {
		c.Sound = &sound.Config{Disabled: true}
	}
	if c.Speech == nil {
		c.Speech = &speech.Config{}
	}
	return c
}

// ReloadDelay is the wait between reopening the menu and submitting the
// reload choice, the upstream engine needs to see "open" first.
func (c *Config) ReloadDelay() time.Duration {
	return helpers.IntMillisecondDefault(c.ReloadDelayMs, 500*time.Millisecond)
}

func (c *Config) Level() log2.Level {
	switch c.LogLevel {
	case "debug":
		return log2.LDebug
	case "error":
		return log2.LError
	default:
		return log2.LInfo
	}
}
