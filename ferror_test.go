package faultinject

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestFaultError(t *testing.T) {
	tests := []struct {
		name     string
		code     uint32
		expected string
	}{
		{
			name:     "FAULT_OK",
			code:     FAULT_OK,
			expected: "fault: success",
		},
		{
			name:     "FAULT_RETURNED",
			code:     FAULT_RETURNED,
			expected: "fault: operation returned without faulting (FAULT_RETURNED) - the environment tolerated the fault condition",
		},
		{
			name:     "FAULT_UNSUPPORTED_ISA",
			code:     FAULT_UNSUPPORTED_ISA,
			expected: "fault: no fault sequence for this instruction set (FAULT_UNSUPPORTED_ISA) - supported: x86-64, x86, arm64, arm",
		},
		{
			name:     "FAULT_SETUP",
			code:     FAULT_SETUP,
			expected: "fault: setup failed before the fault was attempted (FAULT_SETUP) - check the supplied path and permissions",
		},
		{
			name:     "FAULT_MAP_FAILED",
			code:     FAULT_MAP_FAILED,
			expected: "fault: mapping the backing file failed (FAULT_MAP_FAILED) - the fault was never attempted",
		},
		{
			name:     "FAULT_UNSUPPORTED_PLATFORM",
			code:     FAULT_UNSUPPORTED_PLATFORM,
			expected: "fault: not supported on this platform (FAULT_UNSUPPORTED_PLATFORM) - unix with cgo required",
		},
		{
			name:     "unknown code",
			code:     0xDEADBEEF,
			expected: "fault: unknown status code 0xdeadbeef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FAULT_ENV", "")
			t.Setenv("FAULT_DEBUG", "")
			err := &FaultError{Code: tt.code}
			if got := err.Error(); got != tt.expected {
				t.Errorf("FaultError{Code: 0x%x}.Error() = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestFaultErrorSanitized(t *testing.T) {
	tests := []struct {
		name     string
		code     uint32
		expected string
	}{
		{
			name:     "FAULT_RETURNED",
			code:     FAULT_RETURNED,
			expected: "fault: operation returned without faulting",
		},
		{
			name:     "FAULT_UNSUPPORTED_ISA",
			code:     FAULT_UNSUPPORTED_ISA,
			expected: "fault: unsupported instruction set",
		},
		{
			name:     "FAULT_SETUP",
			code:     FAULT_SETUP,
			expected: "fault: setup failed",
		},
		{
			name:     "FAULT_MAP_FAILED",
			code:     FAULT_MAP_FAILED,
			expected: "fault: mapping failed",
		},
		{
			name:     "unknown code",
			code:     0xDEADBEEF,
			expected: "fault: fault injection error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FAULT_ENV", "production")
			err := &FaultError{Code: tt.code}
			if got := err.Error(); got != tt.expected {
				t.Errorf("FaultError{Code: 0x%x}.Error() = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestFaultErrorWrapping(t *testing.T) {
	cause := os.ErrPermission
	err := setupError("open bus backing file", cause)

	if !errors.Is(err, ErrSetup) {
		t.Errorf("setup error should match ErrSetup, got %v", err)
	}
	if errors.Is(err, ErrNoFault) {
		t.Errorf("setup error must not match ErrNoFault")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("setup error should unwrap to its cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "open bus backing file") {
		t.Errorf("setup error should carry its context, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), cause.Error()) {
		t.Errorf("setup error should carry its cause, got %q", err.Error())
	}
}

func TestFaultErrorSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *FaultError
	}{
		{"no fault", faultStatus(FAULT_RETURNED), ErrNoFault},
		{"unsupported isa", faultStatus(FAULT_UNSUPPORTED_ISA), ErrUnsupportedISA},
		{"unsupported platform", ErrUnsupportedPlatform, ErrUnsupportedPlatform},
		{"wrapped", fmt.Errorf("raise: %w", faultStatus(FAULT_RETURNED)), ErrNoFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestFaultStatusOK(t *testing.T) {
	if err := faultStatus(FAULT_OK); err != nil {
		t.Errorf("faultStatus(FAULT_OK) = %v, want nil", err)
	}
}
