//go:build !windows

package speech

import "github.com/accessfs/gsxa/log2"

// Screen readers are windows-only here; everything else stays silent.
func NewOutputer(conf Config, log *log2.Log) Outputer { return Noop{} }
