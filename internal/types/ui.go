package types

import "context"

type UIer interface {
	Loop(context.Context)
	State() UiState
}

type UiState uint32

const (
	StateDefault UiState = iota

	StateConnect     // 1 t=bus.Connect +ok=MenuClosed +err=Unavailable
	StateUnavailable // 2 terminal until relaunch, window stays usable
	StateMenuClosed  // 3 t=bus/input +toggle1=MenuOpen
	StateMenuOpen    // 4 t=bus/input +toggle=MenuClosed +choice=MenuClosed

	StateStop

	StateDoesNotChange
)

// HotkeySource tags input events coming from the global open-menu key.
const HotkeySource = "hotkey"
