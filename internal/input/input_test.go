package input

import (
	"testing"
	"time"

	"github.com/accessfs/gsxa/internal/types"
	"github.com/accessfs/gsxa/log2"
	"github.com/stretchr/testify/assert"
)

func TestDispatchFanout(t *testing.T) {
	t.Parallel()

	stop := make(chan struct{})
	defer close(stop)
	d := NewDispatch(log2.NewTest(t, log2.LAll), stop)

	ch := d.SubscribeChan("ui", stop)
	var funcGot types.InputEvent
	funcDone := make(chan struct{})
	d.SubscribeFunc("gui", func(e types.InputEvent) {
		funcGot = e
		close(funcDone)
	}, stop)
	go d.Run(nil)

	sent := types.InputEvent{Source: "test", Key: '3', Up: true}
	d.Emit(sent)

	select {
	case got := <-ch:
		assert.Equal(t, sent, got)
	case <-time.After(3 * time.Second):
		t.Fatal("chan subscriber timeout")
	}
	select {
	case <-funcDone:
		assert.Equal(t, sent, funcGot)
	case <-time.After(3 * time.Second):
		t.Fatal("func subscriber timeout")
	}
}

func TestDispatchUnsubscribe(t *testing.T) {
	t.Parallel()

	stop := make(chan struct{})
	defer close(stop)
	d := NewDispatch(log2.NewTest(t, log2.LAll), stop)

	ch := d.SubscribeChan("ui", stop)
	go d.Run(nil)
	d.Unsubscribe("ui")

	if _, ok := <-ch; ok {
		t.Fatal("channel must be closed after unsubscribe")
	}
	d.Emit(types.InputEvent{Source: "test", Key: '1'}) // nobody listens, must not block
}
