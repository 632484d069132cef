// Package speech gates screen-reader output per surface (menu, tooltip).
// The underlying engine is loaded lazily on first enable; any engine fault
// force-disables the responsible toggle instead of failing the window.
package speech

import (
	"sync"

	"github.com/accessfs/gsxa/log2"
	"github.com/juju/errors"
)

type Outputer interface {
	Load() error
	Output(text string, interrupt bool) error
	Unload()
}

type Config struct {
	Disabled bool   `hcl:"disabled,optional"`
	Engine   string `hcl:"engine,optional"` // tolk (default) or sapi
	Voice    string `hcl:"voice,optional"`
}

// The mutex covers the gates and the engine state: toggles flip on the
// console goroutine while the ui loop speaks.
type Speech struct {
	log     *log2.Log
	out     Outputer
	mu      sync.Mutex
	loaded  bool
	menu    bool
	tooltip bool
}

func New(log *log2.Log, out Outputer) *Speech {
	return &Speech{log: log, out: out}
}

func (s *Speech) EnableMenu(on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = on && s.ensureLoaded()
	return s.menu
}

func (s *Speech) EnableTooltip(on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tooltip = on && s.ensureLoaded()
	return s.tooltip
}

func (s *Speech) MenuOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu
}

func (s *Speech) TooltipOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tooltip
}

func (s *Speech) SpeakMenu(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.menu {
		return
	}
	if err := s.out.Output(text, true); err != nil {
		s.menu = false
		s.log.Error(errors.Annotate(err, "speech menu, toggle disabled"))
	}
}

func (s *Speech) SpeakTooltip(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tooltip {
		return
	}
	if err := s.out.Output(text, true); err != nil {
		s.tooltip = false
		s.log.Error(errors.Annotate(err, "speech tooltip, toggle disabled"))
	}
}

func (s *Speech) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		s.out.Unload()
		s.loaded = false
	}
}

// caller holds s.mu
func (s *Speech) ensureLoaded() bool {
	if s.loaded {
		return true
	}
	if err := s.out.Load(); err != nil {
		s.log.Error(errors.Annotate(err, "speech engine load"))
		return false
	}
	s.loaded = true
	return true
}
