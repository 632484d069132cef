package simbus

import (
	"context"
	"time"
)

type Noop struct{}

var _ Buser = Noop{} // compile-time interface test

func (Noop) Connect(context.Context) error { return nil }

func (Noop) Close() {}

func (Noop) ReadLVar(string) (float64, error) { return 0, nil }

func (Noop) WriteLVar(string, float64) error { return nil }

func (Noop) Subscribe(Handler) {}

func (Noop) Pump(ctx context.Context) { <-ctx.Done() }

func (Noop) LastEventAge() time.Duration { return 0 }
