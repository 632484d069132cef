package ui

import (
	"fmt"
	"time"

	"github.com/accessfs/gsxa/internal/display"
	"github.com/accessfs/gsxa/internal/settings"
	"github.com/accessfs/gsxa/internal/simbus"
)

// Checkbox wiring for the embedding window and the console: each toggle
// takes effect immediately and is persisted immediately. The effective
// value can differ from the request when the speech engine fails to load.

func (ui *UI) ToggleSpeakMenu(on bool) bool {
	effective := ui.g.Speech.EnableMenu(on)
	ui.persistToggles()
	return effective
}

func (ui *UI) ToggleSpeakTooltip(on bool) bool {
	effective := ui.g.Speech.EnableTooltip(on)
	ui.persistToggles()
	return effective
}

func (ui *UI) persistToggles() {
	ui.g.Settings.Save(settings.Settings{
		SpeakMenu:    ui.g.Speech.MenuOn(),
		SpeakTooltip: ui.g.Speech.TooltipOn(),
	})
}

// StatusText summarizes the companion for the status view and the console.
func (ui *UI) StatusText() string {
	st := ui.g.Display.State(display.ViewStatus).Text()
	started, err := ui.g.Bus.ReadLVar(simbus.LVarCouatlStarted)
	if err == nil && started != 0 {
		return fmt.Sprintf("%s, engine started, last event %v ago",
			st, ui.g.Bus.LastEventAge().Round(100*time.Millisecond))
	}
	return st
}
