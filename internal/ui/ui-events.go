package ui

import (
	"strings"

	"github.com/accessfs/gsxa/internal/display"
	"github.com/accessfs/gsxa/internal/simbus"
	"github.com/accessfs/gsxa/internal/sound"
	"github.com/accessfs/gsxa/internal/types"
	"github.com/juju/errors"
)

// toggle payload 1 while closed opens, repeated presses alternate
func (ui *UI) parseToggleClosed(value float64) types.UiState {
	switch int(value) {
	case simbus.ToggleShow:
		if ui.menuShow() {
			return types.StateMenuOpen
		}
	case simbus.ToggleHide:
		// already closed
	default:
		ui.g.Log.Debugf("menu toggle=%v while closed", value)
	}
	return types.StateDoesNotChange
}

func (ui *UI) parseToggleOpen(value float64) types.UiState {
	switch int(value) {
	case simbus.ToggleShow, simbus.ToggleHide:
		ui.menuHide()
		return types.StateMenuClosed
	case simbus.ToggleRefresh:
		// upstream rewrote the menu file in place
		if !ui.menuShow() {
			ui.g.Log.Debugf("menu refresh failed, view left unchanged")
		}
	case simbus.ToggleBusy:
		ui.g.Log.Debugf("menu busy")
	}
	return types.StateDoesNotChange
}

func (ui *UI) parseKeyOpen(e types.InputEvent) types.UiState {
	if e.Source == types.HotkeySource {
		// same as the in-simulator toggle: GSX answers with toggle=1
		ui.requestMenuOpen()
		return types.StateDoesNotChange
	}
	code, ok := e.ChoiceCode()
	if !ok {
		return types.StateDoesNotChange
	}
	if _, listed := ui.menu.ByChoice(code); !listed {
		ui.g.Log.Debugf("key (%c) has no menu option", rune(e.Key))
		return types.StateDoesNotChange
	}
	return ui.submitChoice(code)
}

// submitChoice writes the code and closes the view. The reload choice is
// the exception: the upstream engine must see MENU_OPEN=1 before it
// processes choice 14, so the submit is delayed behind a cancelable timer.
func (ui *UI) submitChoice(code int) types.UiState {
	if code == simbus.ChoiceReload {
		if err := ui.g.Bus.WriteLVar(simbus.LVarMenuOpen, 1); err != nil {
			ui.g.Error(errors.Annotate(err, "menu reopen for reload"))
			ui.menuHide()
			return types.StateMenuClosed
		}
		ui.armReload(ui.g.Config.ReloadDelay())
		return types.StateDoesNotChange
	}

	if err := ui.g.Bus.WriteLVar(simbus.LVarMenuChoice, float64(code)); err != nil {
		ui.g.Error(errors.Annotatef(err, "menu choice=%d", code))
	}
	sound.Choice()
	ui.menuHide()
	return types.StateMenuClosed
}

func (ui *UI) finishReloadChoice() types.UiState {
	if err := ui.g.Bus.WriteLVar(simbus.LVarMenuChoice, simbus.ChoiceReload); err != nil {
		ui.g.Error(errors.Annotate(err, "menu choice=reload"))
	}
	sound.Choice()
	ui.menuHide()
	return types.StateMenuClosed
}

// requestMenuOpen asks GSX to open its menu; the view opens when the
// toggle notification comes back, not before.
func (ui *UI) requestMenuOpen() {
	if err := ui.g.Bus.WriteLVar(simbus.LVarMenuOpen, 1); err != nil {
		ui.g.Error(errors.Annotate(err, "menu open request"))
	}
}

func (ui *UI) menuShow() bool {
	if !ui.g.Paths.Valid() {
		ui.g.Log.Debugf("menu toggle ignored, paths not resolved")
		return false
	}
	if err := ui.menu.Reload(ui.g.Paths.MenuFile); err != nil {
		// view left unchanged on purpose
		ui.g.Error(err)
		return false
	}
	ui.menu.Open = true
	lines := ui.menu.Render()
	ui.g.Display.SetLines(display.ViewMenu, lines...)
	sound.MenuOpen()
	ui.g.Speech.SpeakMenu(strings.Join(lines, "\n"))
	return true
}

func (ui *UI) menuHide() {
	ui.cancelReload()
	if !ui.menu.Open {
		return
	}
	ui.menu.Hide()
	ui.g.Display.Clear(display.ViewMenu)
	sound.MenuClose()
}
