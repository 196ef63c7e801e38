//go:build !unix

package faultinject

import "syscall"

// Supported returns false on non-unix platforms.
func Supported() (bool, error) {
	return false, ErrUnsupportedPlatform
}

// Signal returns 0 on non-unix platforms; no fault can be raised.
func (k Kind) Signal() syscall.Signal {
	return 0
}

// Stub implementations for the raise operations. Attempts are still
// recorded so the metrics surface behaves the same on every platform.

func RaiseArithmetic() error {
	recordRaise(KindArithmetic)
	return recordOutcome(ErrUnsupportedPlatform)
}

func RaiseMemory() error {
	recordRaise(KindMemory)
	return recordOutcome(ErrUnsupportedPlatform)
}

func RaiseIllegalInstruction() error {
	recordRaise(KindIllegalInstruction)
	return recordOutcome(ErrUnsupportedPlatform)
}

func RaiseAlignment(path string) error {
	recordRaise(KindAlignment)
	return recordOutcome(ErrUnsupportedPlatform)
}

func RaiseBreakpoint() error {
	recordRaise(KindBreakpoint)
	return recordOutcome(ErrUnsupportedPlatform)
}

func RaiseAbort() error {
	recordRaise(KindAbort)
	return recordOutcome(ErrUnsupportedPlatform)
}

func RaiseStackOverflow() error {
	recordRaise(KindStackOverflow)
	return recordOutcome(ErrUnsupportedPlatform)
}
