// Public API to easy create bus stubs for test code.

package simbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/accessfs/gsxa/internal/types"
	"github.com/juju/errors"
	"github.com/temoto/atomic_clock"
)

type MockW struct {
	Name  string
	Value float64
}

type Mock struct {
	t         testing.TB
	mu        sync.Mutex
	lvars     map[string]float64
	writes    []MockW
	handler   Handler
	lastEvent *atomic_clock.Clock
	connErr   error
	pumpch    chan types.BusEvent
}

var _ Buser = &Mock{} // compile-time interface test

func NewMock(t testing.TB) *Mock {
	return &Mock{
		t:         t,
		lvars:     make(map[string]float64, 8),
		lastEvent: atomic_clock.New(),
		pumpch:    make(chan types.BusEvent, 16),
	}
}

// SetConnectError makes the next Connect fail, for the bus-unavailable path.
func (m *Mock) SetConnectError(err error) { m.connErr = err }

func (m *Mock) SetLVar(name string, value float64) {
	m.mu.Lock()
	m.lvars[name] = value
	m.mu.Unlock()
}

// Writes returns writes recorded so far, oldest first.
func (m *Mock) Writes() []MockW {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockW(nil), m.writes...)
}

func (m *Mock) LastWrite() (MockW, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return MockW{}, false
	}
	return m.writes[len(m.writes)-1], true
}

// Fire queues an inbound notification for delivery by Pump.
func (m *Mock) Fire(e types.BusEvent) {
	select {
	case m.pumpch <- e:
	case <-time.After(5 * time.Second):
		m.t.Fatalf("simbus-mock: Fire(%v) pump queue full", e)
	}
}

func (m *Mock) Connect(context.Context) error {
	if m.connErr != nil {
		return errors.Trace(m.connErr)
	}
	return nil
}

func (m *Mock) Close() {}

func (m *Mock) ReadLVar(name string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.lvars[name]
	if !ok {
		return 0, errors.NotFoundf("lvar %s", name)
	}
	return v, nil
}

func (m *Mock) WriteLVar(name string, value float64) error {
	m.mu.Lock()
	m.lvars[name] = value
	m.writes = append(m.writes, MockW{Name: name, Value: value})
	m.mu.Unlock()
	return nil
}

func (m *Mock) Subscribe(h Handler) { m.handler = h }

func (m *Mock) Pump(ctx context.Context) {
	for {
		select {
		case e := <-m.pumpch:
			m.lastEvent.SetNow()
			if m.handler != nil {
				m.handler(e)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (m *Mock) LastEventAge() time.Duration { return atomic_clock.Since(m.lastEvent) }
