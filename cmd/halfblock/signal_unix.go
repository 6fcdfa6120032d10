//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package main

import (
	"os/signal"
	"syscall"
)

// ignoreBrokenPipe lets writes to a closed stdout fail with EPIPE instead of
// killing the process, so piping into head(1) exits cleanly
func ignoreBrokenPipe() {
	signal.Ignore(syscall.SIGPIPE)
}
