// Package display models the screen-reader-friendly text views of the
// companion window. The embedding GUI redraws from the update channel;
// state is copy-on-read so the GUI never shares slices with the UI loop.
package display

import (
	"strings"
	"sync"

	"github.com/accessfs/gsxa/log2"
)

const (
	ViewMenu    = "menu"
	ViewTooltip = "tooltip"
	ViewStatus  = "status"
)

type Display struct {
	log   *log2.Log
	mu    sync.Mutex
	views map[string][]string
	upd   chan<- State
}

func New(log *log2.Log) *Display {
	return &Display{
		log:   log,
		views: make(map[string][]string, 3),
	}
}

func (d *Display) SetUpdateChan(ch chan<- State) {
	d.mu.Lock()
	d.upd = ch
	d.mu.Unlock()
}

// nil lines: clear the view
func (d *Display) SetLines(view string, lines ...string) {
	d.mu.Lock()
	d.views[view] = append([]string(nil), lines...)
	upd := d.upd
	st := d.state(view)
	d.mu.Unlock()

	if d.log.Enabled(log2.LDebug) {
		d.log.Debugf("display %s=%q", view, lines)
	}
	if upd != nil {
		upd <- st
	}
}

func (d *Display) SetText(view string, text string) {
	d.SetLines(view, strings.Split(text, "\n")...)
}

func (d *Display) Clear(view string) { d.SetLines(view) }

func (d *Display) State(view string) State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state(view)
}

func (d *Display) state(view string) State {
	return State{
		View:  view,
		Lines: append([]string(nil), d.views[view]...),
	}
}

type State struct {
	View  string
	Lines []string
}

func (s State) Text() string { return strings.Join(s.Lines, "\n") }

func (s State) Copy() State {
	return State{
		View:  s.View,
		Lines: append([]string(nil), s.Lines...),
	}
}
