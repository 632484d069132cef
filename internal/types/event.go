package types

//go:generate stringer -type=EventKind -trimprefix=Event
type EventKind uint8

const (
	EventInvalid EventKind = iota
	EventBus
	EventInput
	EventTime
	EventReloadTimer
	EventStop
)

// BusEventKind tags inbound simulator notifications.
//
//go:generate stringer -type=BusEventKind -trimprefix=Bus
type BusEventKind uint8

const (
	BusInvalid BusEventKind = iota
	BusMenuToggle
	BusTooltipSet
	BusDisconnect
)

type BusEvent struct {
	Kind  BusEventKind
	Value float64
}

type Event struct {
	Kind  EventKind
	Bus   BusEvent
	Input InputEvent
}

type InputKey uint16

type InputEvent struct {
	Source string
	Key    InputKey
	Up     bool
}

func (e *InputEvent) IsZero() bool       { return e.Key == 0 }
func (e *InputEvent) IsDigit() bool      { return e.Key >= '0' && e.Key <= '9' }
func (e *InputEvent) IsMenuLetter() bool { return e.Key >= 'A' && e.Key <= 'E' }

// ChoiceCode maps a selection key to the upstream menu choice code:
// digits 1-9 -> 0-8, digit 0 -> 9, letters A-E -> 10-14.
func (e *InputEvent) ChoiceCode() (int, bool) {
	switch {
	case e.Key >= '1' && e.Key <= '9':
		return int(e.Key - '1'), true
	case e.Key == '0':
		return 9, true
	case e.IsMenuLetter():
		return int(e.Key-'A') + 10, true
	}
	return -1, false
}
