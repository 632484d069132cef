//go:build windows

package simbus

import (
	"context"
	"sync"
	"time"
	"unsafe"

	"github.com/accessfs/gsxa/internal/types"
	"github.com/accessfs/gsxa/log2"
	"github.com/juju/errors"
	"github.com/temoto/atomic_clock"
	"golang.org/x/sys/windows"
)

const appName = "gsxa"

// SimConnect wire constants, from SimConnect.h. Values are fixed by the
// simulator, do not edit.
const (
	recvIDQuit       = 3
	recvIDEvent      = 4
	recvIDClientData = 16

	objectIDUser = 0

	groupIDMenu    = 1
	priorityMenu   = 1
	eventIDToggle  = 100
	eventIDTooltip = 101

	clientDataIDLvars  = 200
	clientDataDefLvars = 201

	clientDataPeriodOnce = 1
	clientDataSetDefault = 0
)

// couatl mirrors the menu LVars into one client data area as float64 slots.
const clientDataNameLvars = "FSDT_GSX_LVARS"

var lvarSlot = map[string]uint32{
	LVarCouatlStarted: 0,
	LVarMenuOpen:      1,
	LVarMenuChoice:    2,
	LVarMenuRemote:    3,
}

var (
	dllSimConnect = windows.NewLazySystemDLL("SimConnect.dll")

	procOpen             = dllSimConnect.NewProc("SimConnect_Open")
	procClose            = dllSimConnect.NewProc("SimConnect_Close")
	procGetNextDispatch  = dllSimConnect.NewProc("SimConnect_GetNextDispatch")
	procMapClientEvent   = dllSimConnect.NewProc("SimConnect_MapClientEventToSimEvent")
	procAddClientEvent   = dllSimConnect.NewProc("SimConnect_AddClientEventToNotificationGroup")
	procSetGroupPriority = dllSimConnect.NewProc("SimConnect_SetNotificationGroupPriority")
	procMapClientData    = dllSimConnect.NewProc("SimConnect_MapClientDataNameToID")
	procAddToClientData  = dllSimConnect.NewProc("SimConnect_AddToClientDataDefinition")
	procRequestData      = dllSimConnect.NewProc("SimConnect_RequestClientData")
	procSetClientData    = dllSimConnect.NewProc("SimConnect_SetClientData")
)

type recvHeader struct {
	Size    uint32
	Version uint32
	ID      uint32
}

type recvEvent struct {
	recvHeader
	GroupID uint32
	EventID uint32
	Data    uint32
}

type recvClientData struct {
	recvHeader
	RequestID uint32
	ObjectID  uint32
	DefineID  uint32
	Flags     uint32
	Entry     uint32
	OutOf     uint32
	DefCount  uint32
	Value     float64
}

type client struct {
	log       *log2.Log
	h         windows.Handle
	handler   Handler
	lastEvent *atomic_clock.Clock
	// serializes the dispatch drain: the buffer returned by
	// GetNextDispatch is valid only until the next call, and both the
	// pump and ReadLVar waiters drain the same queue
	mu sync.Mutex
}

func New(log *log2.Log) Buser {
	return &client{log: log, lastEvent: atomic_clock.New()}
}

func (c *client) Connect(ctx context.Context) error {
	name, _ := windows.BytePtrFromString(appName)
	hr, _, _ := procOpen.Call(
		uintptr(unsafe.Pointer(&c.h)),
		uintptr(unsafe.Pointer(name)),
		0, 0, 0, 0,
	)
	if int32(hr) < 0 {
		return errors.Errorf("SimConnect_Open hr=%08x", uint32(hr))
	}

	for id, ev := range map[uint32]string{
		eventIDToggle:  EventMenuToggle,
		eventIDTooltip: EventTooltipSet,
	} {
		evname, _ := windows.BytePtrFromString(ev)
		if hr, _, _ := procMapClientEvent.Call(uintptr(c.h), uintptr(id), uintptr(unsafe.Pointer(evname))); int32(hr) < 0 {
			return errors.Errorf("map event %s hr=%08x", ev, uint32(hr))
		}
		if hr, _, _ := procAddClientEvent.Call(uintptr(c.h), groupIDMenu, uintptr(id)); int32(hr) < 0 {
			return errors.Errorf("subscribe event %s hr=%08x", ev, uint32(hr))
		}
	}
	if hr, _, _ := procSetGroupPriority.Call(uintptr(c.h), groupIDMenu, priorityMenu); int32(hr) < 0 {
		return errors.Errorf("group priority hr=%08x", uint32(hr))
	}

	dataName, _ := windows.BytePtrFromString(clientDataNameLvars)
	if hr, _, _ := procMapClientData.Call(uintptr(c.h), uintptr(unsafe.Pointer(dataName)), clientDataIDLvars); int32(hr) < 0 {
		return errors.Errorf("map client data hr=%08x", uint32(hr))
	}
	// one float64 slot per LVar, offset = slot*8
	for _, slot := range lvarSlot {
		if hr, _, _ := procAddToClientData.Call(uintptr(c.h), clientDataDefLvars+uintptr(slot), uintptr(slot*8), 8, 0, 0); int32(hr) < 0 {
			return errors.Errorf("client data definition slot=%d hr=%08x", slot, uint32(hr))
		}
	}
	return nil
}

func (c *client) Close() {
	if c.h != 0 {
		_, _, _ = procClose.Call(uintptr(c.h))
		c.h = 0
	}
}

func (c *client) Subscribe(h Handler) { c.handler = h }

func (c *client) LastEventAge() time.Duration { return atomic_clock.Since(c.lastEvent) }

func (c *client) ReadLVar(name string) (float64, error) {
	slot, ok := lvarSlot[name]
	if !ok {
		return 0, errors.NotFoundf("lvar %s", name)
	}
	c.mu.Lock()
	hr, _, _ := procRequestData.Call(uintptr(c.h),
		clientDataIDLvars,
		uintptr(slot), // request id = slot
		clientDataDefLvars+uintptr(slot),
		clientDataPeriodOnce,
		0, 0, 0, 0)
	c.mu.Unlock()
	if int32(hr) < 0 {
		return 0, errors.Errorf("request lvar %s hr=%08x", name, uint32(hr))
	}
	// response arrives on the same dispatch queue the pump drains
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		p := c.pollOne()
		if !p.ok {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if p.id == recvIDClientData && p.data.RequestID == slot {
			return p.data.Value, nil
		}
		c.deliver(p)
	}
	return 0, errors.Timeoutf("read lvar %s", name)
}

func (c *client) WriteLVar(name string, value float64) error {
	slot, ok := lvarSlot[name]
	if !ok {
		return errors.NotFoundf("lvar %s", name)
	}
	c.mu.Lock()
	hr, _, _ := procSetClientData.Call(uintptr(c.h),
		clientDataIDLvars,
		clientDataDefLvars+uintptr(slot),
		clientDataSetDefault,
		0, 8,
		uintptr(unsafe.Pointer(&value)))
	c.mu.Unlock()
	if int32(hr) < 0 {
		return errors.Errorf("write lvar %s=%v hr=%08x", name, value, uint32(hr))
	}
	return nil
}

// Pump polls the dispatch queue. The original rides the window message
// pump; here a single goroutine owns all bus callbacks instead.
func (c *client) Pump(ctx context.Context) {
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
		for {
			p := c.pollOne()
			if !p.ok {
				break
			}
			c.deliver(p)
			if p.id == recvIDQuit {
				return
			}
		}
	}
}

// polled is a decoded copy of one dispatch entry, safe to use after the
// drain mutex is released.
type polled struct {
	ok       bool
	id       uint32
	hasEvent bool
	event    types.BusEvent
	data     recvClientData
}

func (c *client) pollOne() polled {
	c.mu.Lock()
	defer c.mu.Unlock()

	var pData *recvHeader
	var cbData uint32
	hr, _, _ := procGetNextDispatch.Call(uintptr(c.h),
		uintptr(unsafe.Pointer(&pData)),
		uintptr(unsafe.Pointer(&cbData)))
	if int32(hr) < 0 || pData == nil {
		return polled{}
	}

	p := polled{ok: true, id: pData.ID}
	raw := unsafe.Pointer(pData)
	switch pData.ID {
	case recvIDEvent:
		ev := *(*recvEvent)(raw)
		switch ev.EventID {
		case eventIDToggle:
			p.event = types.BusEvent{Kind: types.BusMenuToggle, Value: float64(ev.Data)}
			p.hasEvent = true
		case eventIDTooltip:
			p.event = types.BusEvent{Kind: types.BusTooltipSet, Value: float64(ev.Data)}
			p.hasEvent = true
		default:
			c.log.Debugf("simbus unknown event id=%d data=%d", ev.EventID, ev.Data)
		}
	case recvIDQuit:
		p.event = types.BusEvent{Kind: types.BusDisconnect}
		p.hasEvent = true
	case recvIDClientData:
		p.data = *(*recvClientData)(raw)
	default:
		// open confirmations, exceptions; exceptions are logged, pump stays up
		c.log.Debugf("simbus dispatch id=%d size=%d", pData.ID, pData.Size)
	}
	return p
}

// deliver runs the subscriber outside the drain mutex, a slow handler must
// not block concurrent LVar reads.
func (c *client) deliver(p polled) {
	if p.id == recvIDEvent || p.id == recvIDQuit {
		c.lastEvent.SetNow()
	}
	if p.hasEvent && c.handler != nil {
		c.handler(p.event)
	}
}
