package state_new

import (
	"context"
	"testing"

	config_global "github.com/accessfs/gsxa/internal/config"
	"github.com/accessfs/gsxa/internal/settings"
	"github.com/accessfs/gsxa/internal/simbus"
	"github.com/accessfs/gsxa/internal/state"
	"github.com/accessfs/gsxa/log2"
)

func NewContext(log *log2.Log, bus simbus.Buser) (context.Context, *state.Global) {
	return state.NewContext(log, bus)
}

// NewTestContext wires a mock bus and a throwaway settings dir.
func NewTestContext(t testing.TB, confText string) (context.Context, *state.Global, *simbus.Mock) {
	log := log2.NewTest(t, log2.LAll)
	log.SetFlags(log2.LTestFlags)
	mock := simbus.NewMock(t)
	ctx, g := state.NewContext(log, mock)
	g.Settings = settings.NewStoreDir(log, t.TempDir())
	if err := g.Init(ctx, config_global.ParseConfig(log, []byte(confText))); err != nil {
		t.Fatal(err)
	}
	return ctx, g, mock
}
