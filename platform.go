//go:build unix

package faultinject

import (
	"golang.org/x/sys/unix"
)

// Supported returns true if every fault class can be raised on this
// platform. It is false when the build target's instruction set has no
// known invalid-opcode and breakpoint sequences.
func Supported() (bool, error) {
	if !isaKnown() {
		return false, ErrUnsupportedISA
	}
	return true, nil
}

// Signal returns the signal expected to terminate the process when this
// fault kind is raised.
func (k Kind) Signal() unix.Signal {
	switch k {
	case KindArithmetic:
		return unix.SIGFPE
	case KindMemory, KindStackOverflow:
		return unix.SIGSEGV
	case KindIllegalInstruction:
		return unix.SIGILL
	case KindAlignment:
		return unix.SIGBUS
	case KindBreakpoint:
		return unix.SIGTRAP
	case KindAbort:
		return unix.SIGABRT
	}
	return 0
}
