package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"
)

// MainLoop reads commands interactively, or line by line when stdin is a
// pipe (so console scripts work in tests and batch files).
func MainLoop(tag string, execP func(line string), complete func(d prompt.Document) []prompt.Suggest) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		prompt.New(execP, complete,
			prompt.OptionPrefix(tag+"> "),
		).Run()
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			execP(line)
		}
	}
}
