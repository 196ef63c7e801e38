package faultinject

import "fmt"

// Kind identifies one fault class.
type Kind int

const (
	KindArithmetic         Kind = iota // integer division by zero
	KindMemory                         // null pointer dereference
	KindIllegalInstruction             // reserved invalid opcode
	KindAlignment                      // mapped-file bus fault
	KindBreakpoint                     // debugger trap instruction
	KindAbort                          // abort(3)
	KindStackOverflow                  // recursion into the stack guard page
)

var kindNames = map[Kind]string{
	KindArithmetic:         "arithmetic",
	KindMemory:             "memory",
	KindIllegalInstruction: "illegal-instruction",
	KindAlignment:          "alignment",
	KindBreakpoint:         "breakpoint",
	KindAbort:              "abort",
	KindStackOverflow:      "stack-overflow",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns all fault kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindArithmetic,
		KindMemory,
		KindIllegalInstruction,
		KindAlignment,
		KindBreakpoint,
		KindAbort,
		KindStackOverflow,
	}
}

// ParseKind maps a kind name (as printed by String) back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("fault: unknown fault kind %q", s)
}
