package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/juju/errors"
)

// MenuOption is one selectable line of the mirrored GSX menu.
type MenuOption struct {
	Key    string // display key "1".."9", "0", "A".."E"
	Label  string
	Choice int // upstream choice code 0..14
}

func (mo *MenuOption) String() string {
	return fmt.Sprintf("%s - %s", mo.Key, mo.Label)
}

// Menu mirrors the in-simulator menu. Single owner (the UI loop), rebuilt
// from the menu file on every reload, discarded on hide.
type Menu struct {
	Open        bool
	Title       string
	Options     []MenuOption
	Highlighted int
}

// maximum dynamic options per menu page, keys 1..9 then 0
const maxFileOptions = 10

// Static actions appended after the file content on every reload. The
// upstream menu scenario resolves these codes regardless of which sub-menu
// is showing, so they are appended unconditionally even for sub-menus.
var fixedOptions = []MenuOption{
	{Key: "A", Label: "GSX Settings", Choice: 10},
	{Key: "B", Label: "Customize airport positions", Choice: 11},
	{Key: "C", Label: "Restart Couatl engine", Choice: 12},
	{Key: "D", Label: "Cancel all services", Choice: 13},
	{Key: "E", Label: "Reload menu", Choice: 14},
}

// ParseMenuFile maps the menu file to title + options: first line is the
// title, following lines get keys "1".."9" then "0" (choice codes 0..9),
// then the fixed options. Lines past the tenth are dropped, the simulator
// menu cannot show them either.
func ParseMenuFile(b []byte) (string, []MenuOption, error) {
	norm := strings.ReplaceAll(string(b), "\r\n", "\n")
	lines := strings.Split(norm, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return "", nil, errors.Errorf("empty menu file")
	}

	title := lines[0]
	content := lines[1:]
	if len(content) > maxFileOptions {
		content = content[:maxFileOptions]
	}
	opts := make([]MenuOption, 0, len(content)+len(fixedOptions))
	for i, label := range content {
		key := "0" // tenth line wraps to key "0", not "10"
		if i < 9 {
			key = string(rune('1' + i))
		}
		opts = append(opts, MenuOption{Key: key, Label: label, Choice: i})
	}
	opts = append(opts, fixedOptions...)
	return title, opts, nil
}

// Reload rebuilds the menu from the file. The previous state is kept on
// any read/parse error, the caller decides whether to open the view.
func (m *Menu) Reload(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Annotate(err, "menu file")
	}
	title, opts, err := ParseMenuFile(b)
	if err != nil {
		return errors.Trace(err)
	}
	m.Title = title
	m.Options = opts
	m.Highlighted = 0
	return nil
}

// ByChoice finds the option carrying a choice code; selection keys without
// a listed option are ignored.
func (m *Menu) ByChoice(code int) (MenuOption, bool) {
	for _, o := range m.Options {
		if o.Choice == code {
			return o, true
		}
	}
	return MenuOption{}, false
}

// Render returns the text view lines: title first, one option per line.
func (m *Menu) Render() []string {
	lines := make([]string, 0, 1+len(m.Options))
	lines = append(lines, m.Title)
	for i := range m.Options {
		lines = append(lines, m.Options[i].String())
	}
	return lines
}

// MoveHighlight shifts the highlighted option for the embedding GUI,
// wrapping at both ends.
func (m *Menu) MoveHighlight(delta int) {
	if len(m.Options) == 0 {
		return
	}
	m.Highlighted = (m.Highlighted + delta + len(m.Options)) % len(m.Options)
}

func (m *Menu) Hide() { *m = Menu{} }
