//go:build !windows

package main

import (
	config_global "github.com/accessfs/gsxa/internal/config"
	"github.com/accessfs/gsxa/internal/input"
)

// no global hotkeys outside windows, the console covers it
func inputSources(*config_global.Config) []input.Source { return nil }
