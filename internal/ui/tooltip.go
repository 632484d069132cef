package ui

import (
	"os"
	"strings"

	"github.com/accessfs/gsxa/internal/display"
	"github.com/juju/errors"
)

// tooltipSet mirrors the tooltip file on every set notification. No state
// besides the displayed text; a read fault leaves the previous text stale.
func (ui *UI) tooltipSet(timeout float64) {
	if !ui.g.Paths.Valid() {
		ui.g.Log.Debugf("tooltip set ignored, paths not resolved")
		return
	}
	b, err := os.ReadFile(ui.g.Paths.TooltipFile)
	if err != nil {
		ui.g.Error(errors.Annotate(err, "tooltip file"))
		return
	}
	text := joinTooltipLines(string(b))
	ui.g.Log.Debugf("tooltip timeout=%v text=%q", timeout, text)
	ui.g.Display.SetLines(display.ViewTooltip, text)
	ui.g.Speech.SpeakTooltip(text)
}

func joinTooltipLines(s string) string {
	norm := strings.ReplaceAll(s, "\r\n", "\n")
	fields := strings.Split(norm, "\n")
	parts := fields[:0]
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
