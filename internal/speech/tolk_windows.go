//go:build windows

package speech

import (
	"unsafe"

	"github.com/accessfs/gsxa/helpers"
	"github.com/accessfs/gsxa/log2"
	"github.com/juju/errors"
	"golang.org/x/sys/windows"
)

// Tolk abstracts the installed screen reader (NVDA, JAWS, ...) behind one
// DLL. https://github.com/dkager/tolk
var (
	dllTolk = windows.NewLazySystemDLL("Tolk.dll")

	procTolkLoad     = dllTolk.NewProc("Tolk_Load")
	procTolkIsLoaded = dllTolk.NewProc("Tolk_IsLoaded")
	procTolkTrySAPI  = dllTolk.NewProc("Tolk_TrySAPI")
	procTolkOutput   = dllTolk.NewProc("Tolk_Output")
	procTolkUnload   = dllTolk.NewProc("Tolk_Unload")
)

type tolk struct {
	log *log2.Log
}

var _ Outputer = &tolk{} // compile-time interface test

func NewOutputer(conf Config, log *log2.Log) Outputer {
	if conf.Disabled {
		return Noop{}
	}
	if helpers.ConfigDefaultStr(conf.Engine, "tolk") == "sapi" {
		return newSAPI(conf, log)
	}
	return &tolk{log: log}
}

func (t *tolk) Load() error {
	if err := dllTolk.Load(); err != nil {
		return errors.Annotate(err, "Tolk.dll")
	}
	_, _, _ = procTolkTrySAPI.Call(1) // fall back to SAPI when no reader runs
	_, _, _ = procTolkLoad.Call()
	if loaded, _, _ := procTolkIsLoaded.Call(); loaded == 0 {
		return errors.Errorf("Tolk_Load failed")
	}
	return nil
}

func (t *tolk) Output(text string, interrupt bool) error {
	p, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return errors.Trace(err)
	}
	var i uintptr
	if interrupt {
		i = 1
	}
	if ok, _, _ := procTolkOutput.Call(uintptr(unsafe.Pointer(p)), i); ok == 0 {
		return errors.Errorf("Tolk_Output failed")
	}
	return nil
}

func (t *tolk) Unload() { _, _, _ = procTolkUnload.Call() }
