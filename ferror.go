package faultinject

import (
	"fmt"
	"os"
	"strconv"
)

// Fault status codes shared with the C fault bodies. FAULT_OK is never
// surfaced as an error: the only successful outcome of a raise operation is
// process termination.
const (
	FAULT_OK                   uint32 = 0
	FAULT_RETURNED             uint32 = 1 // operation ran to its end without faulting
	FAULT_UNSUPPORTED_ISA      uint32 = 2 // no known fault sequence for this instruction set
	FAULT_SETUP                uint32 = 3 // fault was never attempted
	FAULT_MAP_FAILED           uint32 = 4 // mmap of the bus backing file failed
	FAULT_UNSUPPORTED_PLATFORM uint32 = 5 // non-unix build
)

// FaultError describes why a raise operation returned instead of
// terminating the process.
type FaultError struct {
	Code    uint32
	message string // Optional custom message for specific errors
	err     error  // Underlying cause (setup failures)
}

func (e *FaultError) Error() string {
	msg := e.message
	if msg == "" {
		if isProductionEnv() {
			msg = e.sanitizedError()
		} else {
			msg = e.detailedError()
		}
	}
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

func (e *FaultError) Unwrap() error { return e.err }

// Is matches any FaultError carrying the same code, so sentinel values work
// with errors.Is regardless of wrapped causes.
func (e *FaultError) Is(target error) bool {
	t, ok := target.(*FaultError)
	return ok && t.Code == e.Code
}

// detailedError provides full error context for development
func (e *FaultError) detailedError() string {
	switch e.Code {
	case FAULT_OK:
		return "fault: success"
	case FAULT_RETURNED:
		return "fault: operation returned without faulting (FAULT_RETURNED) - the environment tolerated the fault condition"
	case FAULT_UNSUPPORTED_ISA:
		return "fault: no fault sequence for this instruction set (FAULT_UNSUPPORTED_ISA) - supported: x86-64, x86, arm64, arm"
	case FAULT_SETUP:
		return "fault: setup failed before the fault was attempted (FAULT_SETUP) - check the supplied path and permissions"
	case FAULT_MAP_FAILED:
		return "fault: mapping the backing file failed (FAULT_MAP_FAILED) - the fault was never attempted"
	case FAULT_UNSUPPORTED_PLATFORM:
		return "fault: not supported on this platform (FAULT_UNSUPPORTED_PLATFORM) - unix with cgo required"
	default:
		return fmt.Sprintf("fault: unknown status code 0x%08x", e.Code)
	}
}

// sanitizedError provides minimal error information for production
func (e *FaultError) sanitizedError() string {
	switch e.Code {
	case FAULT_OK:
		return "fault: success"
	case FAULT_RETURNED:
		return "fault: operation returned without faulting"
	case FAULT_UNSUPPORTED_ISA:
		return "fault: unsupported instruction set"
	case FAULT_SETUP:
		return "fault: setup failed"
	case FAULT_MAP_FAILED:
		return "fault: mapping failed"
	case FAULT_UNSUPPORTED_PLATFORM:
		return "fault: unsupported platform"
	default:
		return "fault: fault injection error"
	}
}

// isProductionEnv checks if we're running in production environment
func isProductionEnv() bool {
	env := os.Getenv("FAULT_ENV")
	if env == "production" || env == "prod" {
		return true
	}

	// Check if debug mode is explicitly disabled
	if debug := os.Getenv("FAULT_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil && !val {
			return true
		}
	}

	return false
}

// faultStatus converts a status code from a C fault body into an error.
// FAULT_OK never reaches Go: the fault bodies either kill the process or
// report why they could not.
func faultStatus(code uint32) error {
	if code == FAULT_OK {
		return nil
	}
	return &FaultError{Code: code}
}

// setupError wraps a failure that happened before the fault was attempted,
// keeping it distinguishable from a fault that failed to occur.
func setupError(what string, err error) error {
	return &FaultError{
		Code:    FAULT_SETUP,
		message: "fault: " + what,
		err:     err,
	}
}

// Common specific errors for API consumers
var (
	ErrNoFault             = &FaultError{Code: FAULT_RETURNED}
	ErrUnsupportedISA      = &FaultError{Code: FAULT_UNSUPPORTED_ISA}
	ErrSetup               = &FaultError{Code: FAULT_SETUP}
	ErrUnsupportedPlatform = &FaultError{Code: FAULT_UNSUPPORTED_PLATFORM, message: "fault: not supported on this platform"}
)
