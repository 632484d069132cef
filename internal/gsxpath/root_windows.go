//go:build windows

package gsxpath

import (
	"github.com/juju/errors"
	"golang.org/x/sys/windows/registry"
)

// Registry location written by the GSX installer. Fixed upstream, do not edit.
const (
	regKey   = `SOFTWARE\FSDreamTeam\GSX`
	regValue = "root"
)

func installRoot() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, regKey, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Annotatef(err, "registry open %s", regKey)
	}
	defer k.Close()
	root, _, err := k.GetStringValue(regValue)
	if err != nil {
		return "", errors.Annotatef(err, "registry value %s", regValue)
	}
	return root, nil
}
