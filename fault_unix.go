//go:build unix

package faultinject

/*
#include <signal.h>
#include <stdint.h>
#include <stdlib.h>
#include <sys/mman.h>

// Status codes reported back to Go on the non-crashing paths. They mirror
// the FAULT_* constants on the Go side.
#define GO_FAULT_RETURNED        1
#define GO_FAULT_UNSUPPORTED_ISA 2
#define GO_FAULT_MAP_FAILED      4

// Faults must happen here, in non-Go code, and every body restores the
// default disposition of its own signal immediately before triggering it.
// The Go runtime otherwise intercepts the signal: synchronous faults in Go
// code become run-time panics, and a signal arriving in cgo code with no
// pre-Go handler installed becomes a runtime throw (exit status 2) rather
// than signal death. With SIG_DFL restored the kernel delivers the fault
// straight to the default action and the process dies from the raw signal.

// Discards loads and stores that must not be eliminated as dead code.
static volatile uint32_t go_fault_sink;

// Division operand storage. Volatile plus the noinline accessors below keep
// the compiler from proving either operand and folding or rejecting the
// division at compile time; the fault has to happen at run time. The
// numerator is opaque too: dividing a literal 1 gets strength-reduced into
// a compare, with no divide instruction left to trap.
static volatile uint32_t go_fault_zero_storage = 0;
static volatile uint32_t go_fault_one_storage = 1;

__attribute__((noinline)) static uint32_t go_fault_zero(void) {
	return go_fault_zero_storage;
}

__attribute__((noinline)) static uint32_t go_fault_one(void) {
	return go_fault_one_storage;
}

static uint32_t go_fault_fpe(void) {
	signal(SIGFPE, SIG_DFL);
	go_fault_sink = go_fault_one() / go_fault_zero();
	// Instruction sets where integer division by zero is defined rather
	// than trapped (ARM returns zero) reach this point. Deliver the trap
	// explicitly so the termination signal matches the hardware-trap case.
	raise(SIGFPE);
	return GO_FAULT_RETURNED;
}

static uint32_t go_fault_segv(void) {
	// Intentional invalid access: address zero is never mapped. The read
	// lands in the sink so it cannot be eliminated.
	const volatile uint32_t *oops = NULL;
	signal(SIGSEGV, SIG_DFL);
	go_fault_sink = *oops;
	return GO_FAULT_RETURNED;
}

static int go_fault_isa_known(void) {
#if defined(__x86_64__) || defined(__i386__) || defined(__aarch64__) || defined(__arm__)
	return 1;
#else
	return 0;
#endif
}

static uint32_t go_fault_ill(void) {
	signal(SIGILL, SIG_DFL);
#if defined(__x86_64__) || defined(__i386__)
	__asm__ volatile("ud2");
#elif defined(__aarch64__)
	__asm__ volatile("udf #0");
#elif defined(__arm__)
	__asm__ volatile(".inst 0xe7f000f0"); // permanently undefined encoding
#else
	return GO_FAULT_UNSUPPORTED_ISA;
#endif
	return GO_FAULT_RETURNED;
}

static uint32_t go_fault_trap(void) {
	signal(SIGTRAP, SIG_DFL);
#if defined(__x86_64__) || defined(__i386__)
	__asm__ volatile("int3");
#elif defined(__aarch64__)
	__asm__ volatile("brk #0");
#elif defined(__arm__)
	__asm__ volatile("bkpt #0");
#else
	return GO_FAULT_UNSUPPORTED_ISA;
#endif
	return GO_FAULT_RETURNED;
}

// go_fault_bus maps maplen bytes of an already-opened, already-truncated
// backing file and reads at off, chosen by the caller to lie one page past
// the file-backed region. The access cannot be satisfied by the backing
// store. The mapping is never unmapped on the crashing path; the OS reclaims
// it at termination.
static uint32_t go_fault_bus(int fd, size_t maplen, size_t off) {
	volatile uint8_t *m = mmap(NULL, maplen, PROT_READ | PROT_WRITE, MAP_SHARED, fd, 0);
	if (m == MAP_FAILED) {
		return GO_FAULT_MAP_FAILED;
	}
	signal(SIGBUS, SIG_DFL);
	go_fault_sink = m[off];
	return GO_FAULT_RETURNED;
}

static uint32_t go_fault_abort(void) {
	signal(SIGABRT, SIG_DFL);
	abort();
	return GO_FAULT_RETURNED;
}

// Self-recursion with a per-frame volatile buffer. The post-recursion use of
// the frame defeats tail-call optimization, so every call pushes a real
// frame until the stack guard page is hit.
static uint32_t go_fault_descend(uint32_t depth) {
	volatile uint8_t frame[4096];
	frame[0] = (uint8_t)depth;
	if (depth == UINT32_MAX) {
		return depth;
	}
	return go_fault_descend(depth + 1) + frame[0];
}

static uint32_t go_fault_overflow(void) {
	signal(SIGSEGV, SIG_DFL);
	go_fault_sink = go_fault_descend(0);
	return GO_FAULT_RETURNED;
}
*/
import "C"

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// busFileSize is the size the bus fault's backing file is fixed at. It is
// smaller than any page, so the second mapped page has no backing storage.
const busFileSize = 128

var (
	cachedPageSize int
	pageSizeOnce   sync.Once
)

// pageSize returns the system page size, cached for reuse
func pageSize() int {
	pageSizeOnce.Do(func() {
		cachedPageSize = unix.Getpagesize()
	})
	return cachedPageSize
}

// isaKnown reports whether the build target has known fault instruction
// sequences. It consults the same compile-time dispatch the C fault bodies
// use, so the probe and the bodies cannot disagree.
func isaKnown() bool {
	return C.go_fault_isa_known() != 0
}

// divisorValue returns the runtime-computed divisor used by
// RaiseArithmetic. It is always zero; the indirection exists so the
// compiler cannot prove that.
func divisorValue() uint32 {
	return uint32(C.go_fault_zero())
}

// numeratorValue returns the runtime-computed numerator used by
// RaiseArithmetic. It is always one; keeping it opaque forces a real
// divide instruction instead of a strength-reduced compare.
func numeratorValue() uint32 {
	return uint32(C.go_fault_one())
}

// RaiseArithmetic divides by a runtime value the compiler cannot prove is
// zero. On success the process terminates with SIGFPE and this function
// does not return.
func RaiseArithmetic() error {
	recordRaise(KindArithmetic)
	return recordOutcome(faultStatus(uint32(C.go_fault_fpe())))
}

// RaiseMemory reads through a null pointer. On success the process
// terminates with SIGSEGV and this function does not return.
func RaiseMemory() error {
	recordRaise(KindMemory)
	return recordOutcome(faultStatus(uint32(C.go_fault_segv())))
}

// RaiseIllegalInstruction executes the opcode the target instruction set
// reserves as guaranteed-invalid. On success the process terminates with
// SIGILL and this function does not return. Targets without a known
// sequence get ErrUnsupportedISA instead of a different fault.
func RaiseIllegalInstruction() error {
	recordRaise(KindIllegalInstruction)
	return recordOutcome(faultStatus(uint32(C.go_fault_ill())))
}

// RaiseBreakpoint executes the debugger breakpoint instruction. With no
// debugger attached the process terminates with SIGTRAP and this function
// does not return.
func RaiseBreakpoint() error {
	recordRaise(KindBreakpoint)
	return recordOutcome(faultStatus(uint32(C.go_fault_trap())))
}

// RaiseAbort calls abort(3). On success the process terminates with
// SIGABRT and this function does not return.
func RaiseAbort() error {
	recordRaise(KindAbort)
	return recordOutcome(faultStatus(uint32(C.go_fault_abort())))
}

// RaiseStackOverflow recurses until the stack guard page is hit. On success
// the process terminates with SIGSEGV and this function does not return.
func RaiseStackOverflow() error {
	recordRaise(KindStackOverflow)
	return recordOutcome(faultStatus(uint32(C.go_fault_overflow())))
}

// RaiseAlignment creates or truncates a file at path, fixes it at
// busFileSize bytes, maps two pages of it shared, and reads one page past
// the file-backed region. On success the process terminates with SIGBUS and
// this function does not return; the backing file is left on disk and the
// descriptor and mapping are reclaimed by the OS.
//
// A failure to open, truncate or map the file is reported as a setup error,
// distinct from the fault failing to occur.
func RaiseAlignment(path string) error {
	recordRaise(KindAlignment)

	if path == "" {
		return recordOutcome(setupError("bus backing file path is empty", nil))
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return recordOutcome(setupError("open bus backing file", err))
	}
	if err := f.Truncate(busFileSize); err != nil {
		f.Close()
		return recordOutcome(setupError("truncate bus backing file", err))
	}

	// Descriptor deliberately stays open across the faulting access.
	ret, errno := C.go_fault_bus(C.int(f.Fd()), C.size_t(2*pageSize()), C.size_t(pageSize()))
	code := uint32(ret)
	f.Close()
	if code == FAULT_MAP_FAILED {
		return recordOutcome(&FaultError{Code: FAULT_MAP_FAILED, err: errno})
	}
	return recordOutcome(faultStatus(code))
}
