package faultinject

import "sync/atomic"

// Counters for fault attempts and their degraded outcomes. Raise counters
// are bumped before the fault is triggered, so they are observable from a
// parent process inspecting a child that died as intended; the outcome
// counters are only reachable on the non-crashing paths.
var (
	// Raise attempts per kind
	arithmeticRaises  uint64
	memoryRaises      uint64
	illegalRaises     uint64
	alignmentRaises   uint64
	breakpointRaises  uint64
	abortRaises       uint64
	stackOverflRaises uint64

	// Degraded outcomes
	setupErrors       uint64
	unsupportedErrors uint64
	noFaultReturns    uint64
)

// Metrics provides access to fault injection counters
type Metrics struct {
	ArithmeticRaises    uint64 `json:"arithmetic_raises"`
	MemoryRaises        uint64 `json:"memory_raises"`
	IllegalRaises       uint64 `json:"illegal_instruction_raises"`
	AlignmentRaises     uint64 `json:"alignment_raises"`
	BreakpointRaises    uint64 `json:"breakpoint_raises"`
	AbortRaises         uint64 `json:"abort_raises"`
	StackOverflowRaises uint64 `json:"stack_overflow_raises"`
	SetupErrors         uint64 `json:"setup_errors"`
	UnsupportedErrors   uint64 `json:"unsupported_errors"`
	NoFaultReturns      uint64 `json:"no_fault_returns"`
}

// GetMetrics returns current fault injection counters
func GetMetrics() Metrics {
	return Metrics{
		ArithmeticRaises:    atomic.LoadUint64(&arithmeticRaises),
		MemoryRaises:        atomic.LoadUint64(&memoryRaises),
		IllegalRaises:       atomic.LoadUint64(&illegalRaises),
		AlignmentRaises:     atomic.LoadUint64(&alignmentRaises),
		BreakpointRaises:    atomic.LoadUint64(&breakpointRaises),
		AbortRaises:         atomic.LoadUint64(&abortRaises),
		StackOverflowRaises: atomic.LoadUint64(&stackOverflRaises),
		SetupErrors:         atomic.LoadUint64(&setupErrors),
		UnsupportedErrors:   atomic.LoadUint64(&unsupportedErrors),
		NoFaultReturns:      atomic.LoadUint64(&noFaultReturns),
	}
}

// ResetMetrics clears all fault injection counters
func ResetMetrics() {
	atomic.StoreUint64(&arithmeticRaises, 0)
	atomic.StoreUint64(&memoryRaises, 0)
	atomic.StoreUint64(&illegalRaises, 0)
	atomic.StoreUint64(&alignmentRaises, 0)
	atomic.StoreUint64(&breakpointRaises, 0)
	atomic.StoreUint64(&abortRaises, 0)
	atomic.StoreUint64(&stackOverflRaises, 0)
	atomic.StoreUint64(&setupErrors, 0)
	atomic.StoreUint64(&unsupportedErrors, 0)
	atomic.StoreUint64(&noFaultReturns, 0)
}

// Internal metric recording functions
func recordRaise(k Kind) {
	switch k {
	case KindArithmetic:
		atomic.AddUint64(&arithmeticRaises, 1)
	case KindMemory:
		atomic.AddUint64(&memoryRaises, 1)
	case KindIllegalInstruction:
		atomic.AddUint64(&illegalRaises, 1)
	case KindAlignment:
		atomic.AddUint64(&alignmentRaises, 1)
	case KindBreakpoint:
		atomic.AddUint64(&breakpointRaises, 1)
	case KindAbort:
		atomic.AddUint64(&abortRaises, 1)
	case KindStackOverflow:
		atomic.AddUint64(&stackOverflRaises, 1)
	}
}

func recordSetupError() {
	atomic.AddUint64(&setupErrors, 1)
}

func recordUnsupported() {
	atomic.AddUint64(&unsupportedErrors, 1)
}

func recordNoFault() {
	atomic.AddUint64(&noFaultReturns, 1)
}

// recordOutcome classifies the error a raise operation is about to return.
func recordOutcome(err error) error {
	var fe *FaultError
	if e, ok := err.(*FaultError); ok {
		fe = e
	}
	switch {
	case fe == nil:
		recordSetupError()
	case fe.Code == FAULT_RETURNED:
		recordNoFault()
	case fe.Code == FAULT_UNSUPPORTED_ISA || fe.Code == FAULT_UNSUPPORTED_PLATFORM:
		recordUnsupported()
	default:
		recordSetupError()
	}
	return err
}
