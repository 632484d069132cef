package ui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/accessfs/gsxa/internal/display"
	"github.com/accessfs/gsxa/internal/simbus"
	"github.com/accessfs/gsxa/internal/types"
	"github.com/juju/errors"
)

func (ui *UI) State() types.UiState {
	return types.UiState(atomic.LoadUint32((*uint32)(&ui.state)))
}
func (ui *UI) setState(new types.UiState)         { atomic.StoreUint32((*uint32)(&ui.state), uint32(new)) }
func (ui *UI) XXX_testSetState(new types.UiState) { ui.setState(new) }

func (ui *UI) Loop(ctx context.Context) {
	ui.g.Alive.Add(1)
	defer ui.g.Alive.Done()
	next := types.StateDefault
	for next != types.StateStop && ui.g.Alive.IsRunning() {
		current := ui.State()
		next = ui.enter(ctx, current)
		if next == types.StateDefault {
			ui.g.Log.Fatalf("ui state=%v next=default", current)
		}

		if !ui.g.Alive.IsRunning() {
			ui.g.Log.Debugf("ui Loop stopping because g.Alive")
			next = types.StateStop
		}

		ui.setState(next)
		if ui.XXX_testHook != nil {
			ui.XXX_testHook(next)
		}
	}
	ui.cancelReload()
	ui.g.Log.Debugf("ui loop end")
}

func (ui *UI) enter(ctx context.Context, s types.UiState) types.UiState {
	switch s {
	case types.StateConnect:
		return ui.onConnect(ctx)

	case types.StateUnavailable:
		// taxonomy: no retry loop, user relaunches; window stays readable
		for ui.g.Alive.IsRunning() {
			if e := ui.wait(time.Second); e.Kind == types.EventStop {
				return types.StateStop
			}
		}
		return types.StateStop

	case types.StateMenuClosed:
		return ui.onMenuClosed()

	case types.StateMenuOpen:
		return ui.onMenuOpen()

	case types.StateStop:
		return types.StateStop

	default:
		ui.g.Log.Fatalf("unhandled ui state=%v", s)
		return types.StateDefault
	}
}

func (ui *UI) onConnect(ctx context.Context) types.UiState {
	if err := ui.g.Bus.Connect(ctx); err != nil {
		ui.g.Error(errors.Annotate(err, "bus connect"))
		ui.g.Display.SetLines(display.ViewStatus, MsgBusUnavailable)
		return types.StateUnavailable
	}

	if err := ui.g.ResolvePaths(); err != nil {
		ui.g.Error(err)
		ui.g.Display.SetLines(display.ViewStatus, MsgPathsDisabled)
	} else {
		ui.statusConnected()
	}

	// advertise the external menu controller to GSX
	if err := ui.g.Bus.WriteLVar(simbus.LVarMenuRemote, 1); err != nil {
		ui.g.Error(errors.Annotate(err, "remote flag"))
	}

	ui.g.Alive.Add(1)
	go func() {
		defer ui.g.Alive.Done()
		ui.g.Bus.Pump(ctx)
	}()

	return types.StateMenuClosed
}

func (ui *UI) statusConnected() {
	status := MsgConnected
	if started, err := ui.g.Bus.ReadLVar(simbus.LVarCouatlStarted); err != nil {
		ui.g.Log.Debugf("read couatl started (%v)", err)
	} else if started == 0 {
		status = MsgEngineStarting
	}
	ui.g.Display.SetLines(display.ViewStatus, status)
}

func (ui *UI) onMenuClosed() types.UiState {
	for ui.g.Alive.IsRunning() {
		e := ui.wait(time.Second)
		switch e.Kind {
		case types.EventStop:
			return types.StateStop

		case types.EventBus:
			switch e.Bus.Kind {
			case types.BusMenuToggle:
				if next := ui.parseToggleClosed(e.Bus.Value); next != types.StateDoesNotChange {
					return next
				}
			case types.BusTooltipSet:
				ui.tooltipSet(e.Bus.Value)
			case types.BusDisconnect:
				ui.g.Display.SetLines(display.ViewStatus, MsgDisconnected)
				return types.StateUnavailable
			}

		case types.EventInput:
			// selection keys are active only while the menu is open
			if e.Input.Source == types.HotkeySource {
				ui.requestMenuOpen()
			}
		}
	}
	return types.StateStop
}

func (ui *UI) onMenuOpen() types.UiState {
	for ui.g.Alive.IsRunning() {
		e := ui.wait(time.Second)
		switch e.Kind {
		case types.EventStop:
			return types.StateStop

		case types.EventBus:
			switch e.Bus.Kind {
			case types.BusMenuToggle:
				if next := ui.parseToggleOpen(e.Bus.Value); next != types.StateDoesNotChange {
					return next
				}
			case types.BusTooltipSet:
				ui.tooltipSet(e.Bus.Value)
			case types.BusDisconnect:
				ui.menuHide()
				ui.g.Display.SetLines(display.ViewStatus, MsgDisconnected)
				return types.StateUnavailable
			}

		case types.EventInput:
			if next := ui.parseKeyOpen(e.Input); next != types.StateDoesNotChange {
				return next
			}

		case types.EventReloadTimer:
			return ui.finishReloadChoice()
		}
	}
	return types.StateStop
}
