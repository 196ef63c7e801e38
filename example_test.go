package faultinject_test

import (
	"fmt"

	faultinject "github.com/blacktop/go-faultinject"
)

func ExampleParseKind() {
	kind, err := faultinject.ParseKind("alignment")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(kind)
	// Output: alignment
}

func ExampleKinds() {
	for _, k := range faultinject.Kinds() {
		fmt.Println(k)
	}
	// Output:
	// arithmetic
	// memory
	// illegal-instruction
	// alignment
	// breakpoint
	// abort
	// stack-overflow
}
