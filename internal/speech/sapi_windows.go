//go:build windows

package speech

import (
	"github.com/accessfs/gsxa/log2"
	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/juju/errors"
)

// SAPI speech flags
const (
	svsflagsAsync        = 1
	svsfPurgeBeforeSpeak = 2
)

type sapi struct {
	log   *log2.Log
	voice string
	disp  *ole.IDispatch
}

var _ Outputer = &sapi{} // compile-time interface test

func newSAPI(conf Config, log *log2.Log) *sapi {
	return &sapi{log: log, voice: conf.Voice}
}

func (s *sapi) Load() error {
	if err := ole.CoInitialize(0); err != nil {
		return errors.Annotate(err, "CoInitialize")
	}
	unknown, err := oleutil.CreateObject("SAPI.SpVoice")
	if err != nil {
		return errors.Annotate(err, "SAPI.SpVoice")
	}
	s.disp, err = unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return errors.Annotate(err, "SpVoice IDispatch")
	}
	if s.voice != "" {
		s.selectVoice()
	}
	return nil
}

func (s *sapi) Output(text string, interrupt bool) error {
	flags := svsflagsAsync
	if interrupt {
		flags |= svsfPurgeBeforeSpeak
	}
	_, err := oleutil.CallMethod(s.disp, "Speak", text, flags)
	return errors.Annotate(err, "SpVoice.Speak")
}

func (s *sapi) Unload() {
	if s.disp != nil {
		s.disp.Release()
		s.disp = nil
	}
	ole.CoUninitialize()
}

func (s *sapi) selectVoice() {
	voices, err := oleutil.CallMethod(s.disp, "GetVoices", "", "")
	if err != nil {
		s.log.Debugf("sapi GetVoices (%v)", err)
		return
	}
	list := voices.ToIDispatch()
	defer list.Release()
	count, err := oleutil.GetProperty(list, "Count")
	if err != nil {
		return
	}
	for i := 0; i < int(count.Val); i++ {
		item, err := oleutil.CallMethod(list, "Item", i)
		if err != nil {
			continue
		}
		v := item.ToIDispatch()
		desc, err := oleutil.CallMethod(v, "GetDescription")
		if err == nil && desc.ToString() == s.voice {
			_, _ = oleutil.PutProperty(s.disp, "Voice", v)
			v.Release()
			return
		}
		v.Release()
	}
	s.log.Debugf("sapi voice %q not found, using default", s.voice)
}
