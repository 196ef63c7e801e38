//go:build unix

package faultinject

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

func TestDivisorValueAlwaysZero(t *testing.T) {
	// The divisor must be zero on every call, independent of call count or
	// prior state; only the compiler is supposed to be unsure about it.
	for i := 0; i < 1000; i++ {
		if v := divisorValue(); v != 0 {
			t.Fatalf("divisorValue() = %d on call %d, want 0", v, i)
		}
	}
}

func TestNumeratorValueAlwaysOne(t *testing.T) {
	// Both division operands are opaque runtime values; a literal numerator
	// would let the compiler strength-reduce the division into a compare
	// and drop the trapping divide instruction.
	for i := 0; i < 1000; i++ {
		if v := numeratorValue(); v != 1 {
			t.Fatalf("numeratorValue() = %d on call %d, want 1", v, i)
		}
	}
}

func TestSupportedMatchesArch(t *testing.T) {
	ok, err := Supported()

	switch runtime.GOARCH {
	case "amd64", "386", "arm64", "arm":
		if !ok || err != nil {
			t.Errorf("Supported() = %v, %v on %s, want true, nil", ok, err, runtime.GOARCH)
		}
	default:
		if ok {
			t.Errorf("Supported() = true on %s, want false", runtime.GOARCH)
		}
		if !errors.Is(err, ErrUnsupportedISA) {
			t.Errorf("Supported() error = %v on %s, want ErrUnsupportedISA", err, runtime.GOARCH)
		}
	}
}

func TestKindSignals(t *testing.T) {
	tests := []struct {
		kind Kind
		want unix.Signal
	}{
		{KindArithmetic, unix.SIGFPE},
		{KindMemory, unix.SIGSEGV},
		{KindIllegalInstruction, unix.SIGILL},
		{KindAlignment, unix.SIGBUS},
		{KindBreakpoint, unix.SIGTRAP},
		{KindAbort, unix.SIGABRT},
		{KindStackOverflow, unix.SIGSEGV},
	}

	for _, tt := range tests {
		if got := tt.kind.Signal(); got != tt.want {
			t.Errorf("%v.Signal() = %v, want %v", tt.kind, got, tt.want)
		}
	}
	if got := Kind(99).Signal(); got != 0 {
		t.Errorf("Kind(99).Signal() = %v, want 0", got)
	}
}

// RaiseAlignment's setup failures must come back as errors, not as a crash
// and not as "the fault didn't happen".
func TestRaiseAlignmentSetupFailure(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing parent directory", filepath.Join(t.TempDir(), "no", "such", "dir", "backing")},
		{"path is a directory", t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RaiseAlignment(tt.path)
			if err == nil {
				t.Fatal("RaiseAlignment returned without error (and without crashing)")
			}
			if !errors.Is(err, ErrSetup) {
				t.Errorf("RaiseAlignment(%q) = %v, want a setup error", tt.path, err)
			}
			if errors.Is(err, ErrNoFault) {
				t.Errorf("setup failure must not be reported as a missing fault: %v", err)
			}
		})
	}
}

func TestRaiseAlignmentTruncatesExisting(t *testing.T) {
	// An oversized preexisting file would put the probed page inside the
	// backing store and defeat the fault; setup must cut it back down. The
	// only way to observe the truncation without crashing is to fail setup
	// after it, so this checks the invariant indirectly: open a file we can
	// write but make the size deterministic first.
	path := filepath.Join(t.TempDir(), "backing")
	if err := os.WriteFile(path, make([]byte, 1<<20), 0o600); err != nil {
		t.Fatal(err)
	}

	// Raising here would kill the test process, so replicate only the setup
	// sequence and verify the resulting size.
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := f.Truncate(busFileSize); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() != busFileSize {
		t.Errorf("backing file size = %d, want %d", fi.Size(), busFileSize)
	}
	if busFileSize >= int64(pageSize()) {
		t.Errorf("busFileSize %d must stay below the page size %d", busFileSize, pageSize())
	}
}

func TestPageSizeCached(t *testing.T) {
	if pageSize() != pageSize() {
		t.Error("pageSize() is not stable")
	}
	if pageSize() != os.Getpagesize() {
		t.Errorf("pageSize() = %d, want %d", pageSize(), os.Getpagesize())
	}
}
