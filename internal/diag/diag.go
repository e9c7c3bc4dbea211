// Package diag implements the diagnostics and error-handling policy from
// spec.md §7: invalid-input and internal-invariant errors are fatal for
// the enclosing method, inference failures are recoverable and
// accumulate on a per-method list, and a package-level logger is gated by
// a verbosity flag exactly the way the teacher's wasm/log.go and
// validate/log.go gate theirs.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Verbose controls whether internal diagnostic logging reaches stderr.
// Mirrors the teacher's package-level PrintDebugInfo flag.
var Verbose = false

var logger *log.Logger

func init() {
	resetLogger()
}

func resetLogger() {
	w := io.Discard
	if Verbose {
		w = os.Stderr
	}
	logger = log.New(w, "jdgo: ", log.Lshortfile)
}

// SetVerbose toggles Verbose and rebuilds the logger, so tests and the CLI
// can flip verbosity at runtime without restarting the process.
func SetVerbose(v bool) {
	Verbose = v
	resetLogger()
}

// Printf logs a diagnostic line when Verbose is set; a no-op otherwise.
func Printf(format string, args ...interface{}) {
	logger.Printf(format, args...)
}

// InvalidInputError reports malformed input that is fatal for the
// enclosing method: a bad descriptor, a disallowed class-name character,
// or a branch target outside the instruction stream (spec.md §7).
type InvalidInputError struct {
	Method string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input in %s: %s", e.Method, e.Reason)
}

// InvariantError reports an internal bug indicator: a scope closed twice,
// a block registered twice, or any other state the decompiler itself
// should never reach (spec.md §7, "fatal bug indicator; logged with
// context").
type InvariantError struct {
	Where  string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated in %s: %s", e.Where, e.Reason)
}

// Wrap attaches file/line-free context to an error at a method boundary,
// the way the teacher's CLI surfaces propagate bare errors up through
// log.Fatalf — except here the context rides with the error value instead
// of being printed immediately, so callers can choose to suppress it
// (FailOnError false) or propagate it (FailOnError true).
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, context)
}

// Warning is a single recoverable inference failure: a stack-effect
// mismatch, an empty stack at a consumer, or an impossible type
// intersection (spec.md §7). Warnings never abort decompilation; they are
// recorded and the affected operation keeps its own type.
type Warning struct {
	Index   int // instruction index the warning occurred at, -1 if n/a
	Message string
}

func (w Warning) String() string {
	if w.Index < 0 {
		return w.Message
	}
	return fmt.Sprintf("[%d] %s", w.Index, w.Message)
}

// Diagnostics accumulates warnings for a single method's decompilation,
// surfaced to the caller regardless of whether the method itself
// succeeded (spec.md §7's "per-method diagnostics list").
type Diagnostics struct {
	Warnings []Warning
}

// Warn appends a warning at the given instruction index. Use index -1 for
// warnings not tied to a specific instruction.
func (d *Diagnostics) Warn(index int, format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, Warning{Index: index, Message: fmt.Sprintf(format, args...)})
	Printf("warning %s", d.Warnings[len(d.Warnings)-1])
}

// HasWarnings reports whether any warning was recorded.
func (d *Diagnostics) HasWarnings() bool { return len(d.Warnings) > 0 }
