//go:build !windows

package simbus

import "github.com/accessfs/gsxa/log2"

// SimConnect exists on windows only, everything else gets the loopback.
func New(log *log2.Log) Buser { return NewLoopback(log) }
