package ui

import (
	"context"
	"time"

	"github.com/accessfs/gsxa/internal/state"
	"github.com/accessfs/gsxa/internal/types"
)

const (
	MsgBusUnavailable = "GSX bus unavailable, restart after starting the simulator"
	MsgDisconnected   = "simulator disconnected"
	MsgConnected      = "GSX bus connected"
	MsgPathsDisabled  = "GSX install path not found, menu and tooltip sync disabled"
	MsgEngineStarting = "couatl engine not started yet"
)

type UI struct {
	g     *state.Global
	menu  Menu
	state types.UiState

	busch   chan types.BusEvent
	inputch chan types.InputEvent

	// armed only between the reload choice and its delayed submit
	reloadTmr *time.Timer
	reloadCh  <-chan time.Time

	XXX_testHook func(types.UiState)
}

var _ types.UIer = &UI{} // compile-time interface test

func (ui *UI) Init(ctx context.Context) error {
	ui.g = state.GetGlobal(ctx)
	ui.setState(types.StateConnect)

	ui.busch = make(chan types.BusEvent, 8)
	ui.g.Bus.Subscribe(func(e types.BusEvent) { ui.busch <- e })
	ui.inputch = ui.g.Input.SubscribeChan("ui", ui.g.Alive.StopChan())
	return nil
}

func (ui *UI) wait(timeout time.Duration) types.Event {
	tmr := time.NewTimer(timeout)
	defer tmr.Stop()
	select {
	case e := <-ui.busch:
		if e.Kind != types.BusInvalid {
			return types.Event{Kind: types.EventBus, Bus: e}
		}

	case e := <-ui.inputch:
		return types.Event{Kind: types.EventInput, Input: e}

	case <-ui.reloadCh:
		ui.reloadCh = nil
		ui.reloadTmr = nil
		return types.Event{Kind: types.EventReloadTimer}

	case <-tmr.C:
		return types.Event{Kind: types.EventTime}

	case <-ui.g.Alive.StopChan():
		return types.Event{Kind: types.EventStop}
	}
	return types.Event{Kind: types.EventInvalid}
}

func (ui *UI) armReload(d time.Duration) {
	ui.cancelReload()
	ui.reloadTmr = time.NewTimer(d)
	ui.reloadCh = ui.reloadTmr.C
}

// cancelReload closes the delayed-submit race on hide/stop.
func (ui *UI) cancelReload() {
	if ui.reloadTmr != nil {
		ui.reloadTmr.Stop()
		ui.reloadTmr = nil
		ui.reloadCh = nil
	}
}
