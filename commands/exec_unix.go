//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package commands

import "golang.org/x/sys/unix"

var platformReplacer ProcessReplacer = unix.Exec
