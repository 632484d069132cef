package main

import (
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/accessfs/gsxa/helpers/cli"
	"github.com/accessfs/gsxa/internal/display"
	"github.com/accessfs/gsxa/internal/state"
	"github.com/accessfs/gsxa/internal/types"
	"github.com/accessfs/gsxa/internal/ui"
)

// consoleLoop drives the menu from a terminal, mostly to exercise the
// companion without the simulator window.
func consoleLoop(g *state.Global, u *ui.UI) {
	exec := func(line string) { consoleExec(g, u, line) }
	cli.MainLoop("gsxa", exec, consoleComplete)
}

func consoleExec(g *state.Global, u *ui.UI, line string) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}
	switch words[0] {
	case "open":
		g.Input.Emit(types.InputEvent{Source: types.HotkeySource, Key: types.InputKey('M'), Up: true})

	case "key":
		if len(words) < 2 || len(words[1]) != 1 {
			fmt.Println("usage: key <1-9|0|A-E>")
			return
		}
		k := types.InputKey(strings.ToUpper(words[1])[0])
		g.Input.Emit(types.InputEvent{Source: "console", Key: k, Up: true})

	case "speak":
		if len(words) < 3 {
			fmt.Println("usage: speak <menu|tooltip> <on|off>")
			return
		}
		on := words[2] == "on"
		var effective bool
		switch words[1] {
		case "menu":
			effective = u.ToggleSpeakMenu(on)
		case "tooltip":
			effective = u.ToggleSpeakTooltip(on)
		}
		fmt.Printf("speak %s = %t\n", words[1], effective)

	case "menu":
		fmt.Println(g.Display.State(display.ViewMenu).Text())

	case "tooltip":
		fmt.Println(g.Display.State(display.ViewTooltip).Text())

	case "status":
		fmt.Println(u.StatusText())

	case "exit", "quit":
		g.Stop()

	default:
		fmt.Printf("unknown command %q\n", words[0])
	}
}

func consoleComplete(d prompt.Document) []prompt.Suggest {
	suggests := []prompt.Suggest{
		{Text: "open", Description: "request the GSX menu"},
		{Text: "key", Description: "press a selection key, e.g. key 2"},
		{Text: "speak", Description: "speak menu|tooltip on|off"},
		{Text: "menu", Description: "print the menu view"},
		{Text: "tooltip", Description: "print the tooltip view"},
		{Text: "status", Description: "print the status line"},
		{Text: "exit", Description: "stop gsxa"},
	}
	return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), true)
}
