/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	faultinject "github.com/blacktop/go-faultinject"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

// Exit codes for the raise command's degraded paths, so a supervising
// harness can tell why the process is still alive. Signal death is the
// successful outcome and never produces an exit code.
const (
	exitNoFault     = 10 // operation returned without faulting
	exitSetup       = 11 // fault was never attempted
	exitUnsupported = 12 // no fault sequence for this platform/ISA
)

var busPath string

func init() {
	rootCmd.AddCommand(raiseCmd)
	raiseCmd.Flags().StringVarP(&busPath, "path", "p", "/tmp/fi_bus_backing", "Backing file for the alignment fault")
}

var raiseCmd = &cobra.Command{
	Use:   "raise <kind>",
	Short: "Raise one fault and die from its signal",
	Long: `Raise one fault class in this process. On success the process terminates
with the fault's signal and nothing is printed. If the operation returns,
the reason is reported on stderr and the exit code states which degraded
path was taken: 10 the fault failed to occur, 11 setup failed before the
fault was attempted, 12 the platform has no sequence for this fault.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE:      runRaise,
}

func kindNames() []string {
	kinds := faultinject.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func runRaise(cmd *cobra.Command, args []string) error {
	kind, err := faultinject.ParseKind(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "raising %s, expecting %s\n", kind, unix.SignalName(syscall.Signal(kind.Signal())))

	switch kind {
	case faultinject.KindArithmetic:
		err = faultinject.RaiseArithmetic()
	case faultinject.KindMemory:
		err = faultinject.RaiseMemory()
	case faultinject.KindIllegalInstruction:
		err = faultinject.RaiseIllegalInstruction()
	case faultinject.KindAlignment:
		err = faultinject.RaiseAlignment(busPath)
	case faultinject.KindBreakpoint:
		err = faultinject.RaiseBreakpoint()
	case faultinject.KindAbort:
		err = faultinject.RaiseAbort()
	case faultinject.KindStackOverflow:
		err = faultinject.RaiseStackOverflow()
	}

	// Reaching this point is the defect the harness is looking for.
	fmt.Fprintf(os.Stderr, "still alive: %v\n", err)
	switch {
	case errors.Is(err, faultinject.ErrUnsupportedISA),
		errors.Is(err, faultinject.ErrUnsupportedPlatform):
		os.Exit(exitUnsupported)
	case errors.Is(err, faultinject.ErrNoFault):
		os.Exit(exitNoFault)
	default:
		os.Exit(exitSetup)
	}
	return nil
}
