//go:build windows

package input

import (
	"unsafe"

	"github.com/accessfs/gsxa/internal/types"
	"github.com/juju/errors"
	"golang.org/x/sys/windows"
)

const (
	wmHotkey = 0x0312

	// defaults: Ctrl+Shift+F12
	DefaultHotkeyMods = 0x0002 | 0x0004
	DefaultHotkeyVK   = 0x7B
)

var (
	dllUser32          = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey = dllUser32.NewProc("RegisterHotKey")
	procGetMessage     = dllUser32.NewProc("GetMessageW")
)

type msg struct {
	HWND    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      [2]int32
}

// HotkeySource delivers the global open-menu key. RegisterHotKey binds to
// the calling thread, so Read runs Register lazily on its own goroutine.
type HotkeySource struct {
	Mods       uint32
	VK         uint32
	registered bool
}

var _ Source = &HotkeySource{} // compile-time interface test

func (hs *HotkeySource) String() string { return types.HotkeySource }

func (hs *HotkeySource) Read() (types.InputEvent, error) {
	if !hs.registered {
		if ok, _, err := procRegisterHotKey.Call(0, 1, uintptr(hs.Mods), uintptr(hs.VK)); ok == 0 {
			return types.InputEvent{}, errors.Annotate(err, "RegisterHotKey")
		}
		hs.registered = true
	}
	var m msg
	for {
		r, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(r) == -1 {
			return types.InputEvent{}, errors.Annotate(err, "GetMessage")
		}
		if m.Message == wmHotkey {
			return types.InputEvent{Source: types.HotkeySource, Key: types.InputKey('M'), Up: true}, nil
		}
	}
}
