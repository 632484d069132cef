// Package simbus wraps the simulator telemetry/event channel (SimConnect)
// behind a small read/write-LVar + notification interface.
package simbus

import (
	"context"
	"time"

	"github.com/accessfs/gsxa/internal/types"
)

type Handler func(types.BusEvent)

// Buser is the simulator side of the companion: named variables for
// read/write plus an inbound notification pump. Implementations deliver
// notifications from Pump only, there is no background thread.
type Buser interface {
	Connect(ctx context.Context) error
	Close()
	ReadLVar(name string) (float64, error)
	WriteLVar(name string, value float64) error
	Subscribe(Handler)
	// Pump blocks delivering inbound notifications to the subscribed
	// handler until ctx is done or the connection drops. Per-tick faults
	// are logged by the implementation and do not stop the pump.
	Pump(ctx context.Context)
	// LastEventAge is the time since the last inbound notification.
	LastEventAge() time.Duration
}
