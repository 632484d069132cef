//go:build windows

package main

import (
	"github.com/accessfs/gsxa/helpers"
	config_global "github.com/accessfs/gsxa/internal/config"
	"github.com/accessfs/gsxa/internal/input"
)

func inputSources(cfg *config_global.Config) []input.Source {
	return []input.Source{
		&input.HotkeySource{
			Mods: uint32(helpers.ConfigDefaultInt(cfg.HotkeyMods, input.DefaultHotkeyMods)),
			VK:   uint32(helpers.ConfigDefaultInt(cfg.HotkeyVK, input.DefaultHotkeyVK)),
		},
	}
}
