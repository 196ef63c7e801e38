// Package faultinject deliberately drives the calling process into specific
// abnormal-termination conditions, for use by crash-handling and
// signal-handler test harnesses that need an on-demand, known fault class.
//
// Every Raise function is expected to terminate the process with its
// documented signal. None of them return on success; a normal return always
// carries an error describing why the fault did not occur (unsupported
// platform or instruction set, setup failure, or the fault simply failing to
// trigger on a hardened environment).
//
// # Fault surface
//
//	RaiseArithmetic          SIGFPE   integer division by a runtime zero
//	RaiseMemory              SIGSEGV  read through a null pointer
//	RaiseIllegalInstruction  SIGILL   architecture-reserved invalid opcode
//	RaiseAlignment           SIGBUS   access past the end of a mapped file
//	RaiseBreakpoint          SIGTRAP  debugger breakpoint instruction
//	RaiseAbort               SIGABRT  abort(3)
//	RaiseStackOverflow       SIGSEGV  unbounded recursion into the guard page
//
// # Basic Usage
//
// Check whether the current platform has known fault sequences:
//
//	ok, err := faultinject.Supported()
//	if err != nil || !ok {
//		log.Fatal("fault injection not supported on this system")
//	}
//
// Trigger a fault (this call does not return on success):
//
//	err := faultinject.RaiseMemory()
//	// Reaching this line means the fault failed to occur.
//	log.Fatal("still alive:", err)
//
// # Harness Integration
//
// A harness driving these operations must isolate each invocation in its own
// process and inspect the child's wait status: the expected outcome is
// termination by exactly the documented signal, never a normal exit and never
// a different signal. Repeated invocation inside one process is never safe;
// the operations share no state but each one is expected to kill the process.
//
//	cmd := exec.Command("fi", "raise", "memory")
//	err := cmd.Run()
//	ws := cmd.ProcessState.Sys().(syscall.WaitStatus)
//	if !ws.Signaled() || ws.Signal() != unix.SIGSEGV {
//		// test failure
//	}
//
// # Mechanism
//
// Synchronous faults raised from Go code are converted into run-time panics
// by the Go runtime, and a signal arriving in cgo code with no pre-Go
// handler installed becomes a runtime throw (exit status 2) rather than
// signal death. The fault bodies therefore execute in C via cgo and restore
// the default disposition of their own signal immediately before triggering
// it, so the kernel delivers the fault straight to the default action and
// the process dies from the raw signal. The instruction-level faults
// (illegal opcode, breakpoint) dispatch over the target instruction set at
// compile time and surface an explicit unsupported error rather than
// falling back to a different fault.
//
// # Resource Management
//
// RaiseAlignment creates (or truncates) a file at a caller-supplied path and
// maps it into memory. On the crashing path neither the descriptor nor the
// mapping is released; the operating system reclaims both at process
// termination. The backing file is left on disk. Setup failures before the
// fault is attempted are reported distinctly, wrapped around the underlying
// OS error.
//
// # Error Handling
//
// All errors implement the standard Go error interface. Fault-specific
// errors are FaultError values; ErrNoFault, ErrUnsupportedISA and
// ErrUnsupportedPlatform are usable with errors.Is.
//
// # Platform Support
//
// Unix with cgo, on x86-64, x86, arm64 and arm. Other platforms return
// "not supported" errors from every operation.
package faultinject
