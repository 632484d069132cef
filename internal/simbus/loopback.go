package simbus

import (
	"context"
	"sync"
	"time"

	"github.com/accessfs/gsxa/internal/types"
	"github.com/accessfs/gsxa/log2"
	"github.com/temoto/atomic_clock"
)

// Loopback is an in-memory bus for console mode and platforms without the
// simulator. Writing MENU_OPEN=1 echoes a MenuToggle notification back, so
// the menu can be driven end to end without GSX.
type Loopback struct {
	log       *log2.Log
	mu        sync.Mutex
	lvars     map[string]float64
	handler   Handler
	echo      chan types.BusEvent
	lastEvent *atomic_clock.Clock
}

var _ Buser = &Loopback{} // compile-time interface test

func NewLoopback(log *log2.Log) *Loopback {
	return &Loopback{
		log:       log,
		lvars:     map[string]float64{LVarCouatlStarted: 1},
		echo:      make(chan types.BusEvent, 16),
		lastEvent: atomic_clock.New(),
	}
}

func (lb *Loopback) Connect(context.Context) error { return nil }

func (lb *Loopback) Close() {}

func (lb *Loopback) ReadLVar(name string) (float64, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.lvars[name], nil
}

func (lb *Loopback) WriteLVar(name string, value float64) error {
	lb.mu.Lock()
	prev := lb.lvars[name]
	lb.lvars[name] = value
	// a submitted choice consumes the menu, same as the real engine
	if name == LVarMenuChoice {
		lb.lvars[LVarMenuOpen] = 0
	}
	lb.mu.Unlock()
	lb.log.Debugf("loopback write %s=%v", name, value)

	// echo only the closed->open edge; the reload choice rewrites
	// MENU_OPEN=1 on an already open menu and must stay silent
	if name == LVarMenuOpen && value == 1 && prev != 1 {
		select {
		case lb.echo <- types.BusEvent{Kind: types.BusMenuToggle, Value: ToggleShow}:
		default:
		}
	}
	return nil
}

func (lb *Loopback) Subscribe(h Handler) { lb.handler = h }

func (lb *Loopback) Pump(ctx context.Context) {
	for {
		select {
		case e := <-lb.echo:
			lb.lastEvent.SetNow()
			if lb.handler != nil {
				lb.handler(e)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (lb *Loopback) LastEventAge() time.Duration { return atomic_clock.Since(lb.lastEvent) }
