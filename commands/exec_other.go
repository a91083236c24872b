//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package commands

var platformReplacer ProcessReplacer
