// Package gsxpath derives the menu and tooltip file locations from the GSX
// installation root. Resolved once after the bus connects, recomputed only
// on reconnect.
package gsxpath

import (
	"path/filepath"

	"github.com/juju/errors"
)

const (
	menuFileName    = "menu"
	tooltipFileName = "tooltip"
)

type Paths struct {
	Root        string
	MenuFile    string
	TooltipFile string
}

func (p Paths) Valid() bool { return p.Root != "" }

func FromRoot(root string) Paths {
	return Paths{
		Root:        root,
		MenuFile:    filepath.Join(root, menuFileName),
		TooltipFile: filepath.Join(root, tooltipFileName),
	}
}

// Resolve returns the file paths, preferring an explicit override from
// config over the recorded install root. No retries; on error the caller
// logs and runs with menu/tooltip sync disabled.
func Resolve(override string) (Paths, error) {
	if override != "" {
		return FromRoot(override), nil
	}
	root, err := installRoot()
	if err != nil {
		return Paths{}, errors.Annotate(err, "gsx install root")
	}
	if root == "" {
		return Paths{}, errors.NotFoundf("gsx install root")
	}
	return FromRoot(root), nil
}
