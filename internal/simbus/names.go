package simbus

// Fixed upstream names. GSX matches these strings exactly, do not edit.
const (
	LVarCouatlStarted = "FSDT_GSX_COUATL_STARTED"
	LVarMenuOpen      = "FSDT_GSX_MENU_OPEN"
	LVarMenuChoice    = "FSDT_GSX_MENU_CHOICE"
	LVarMenuRemote    = "FSDT_GSX_MENU_REMOTE"

	EventMenuToggle = "FSDT_GSX_MENU_TOGGLE"
	EventTooltipSet = "FSDT_GSX_TOOLTIP_SET"
)

// MenuToggle payloads, see couatl menu lifecycle.
const (
	ToggleShow    = 1 // open if closed, close if open
	ToggleHide    = 2
	ToggleRefresh = 3
	ToggleBusy    = 4
)

// ChoiceReload re-runs the couatl menu scenario. The upstream engine must
// see MENU_OPEN=1 before it processes this choice.
const ChoiceReload = 14

// ChoiceNone parks the choice LVar between selections.
const ChoiceNone = -1
