//go:build !windows

package gsxpath

import "os"

// No registry outside windows; GSX_ROOT keeps console mode and tests going.
func installRoot() (string, error) {
	return os.Getenv("GSX_ROOT"), nil
}
