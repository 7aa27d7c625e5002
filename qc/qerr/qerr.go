// Package qerr defines the error taxonomy for the simulation core (spec
// §7). Programmer errors (bad indices, shape mismatches) panic at the
// call site instead of being wrapped here — these sentinels cover the
// conditions callers are expected to check for and recover from.
package qerr

import "fmt"

// Sentinel errors, matched with errors.Is.
var (
	// ErrNotAStabilizer is returned by Gate.Conjugate when the gate has
	// no Clifford conjugation rule.
	ErrNotAStabilizer = fmt.Errorf("qerr: gate is not a stabilizer (Clifford) gate")
	// ErrNotExecuted is returned by Circuit.Reexecute / Histogram when
	// Execute has not been called yet.
	ErrNotExecuted = fmt.Errorf("qerr: circuit has not been executed")
	// ErrExportUnsupported is returned by exporters for operations they
	// cannot represent (e.g. Peek in OpenQasm, a measurement into a
	// classical bit other than its own qubit index in c-Qasm).
	ErrExportUnsupported = fmt.Errorf("qerr: operation unsupported by export format")
	// ErrInvalidBitCount is returned when a gate receives a bits slice
	// whose length does not match its affected-bit count.
	ErrInvalidBitCount = fmt.Errorf("qerr: wrong number of bit indices for gate")
	// ErrReferenceArithmetic is returned when symbolic-parameter
	// arithmetic is attempted on a gate that only supports scalar
	// parameters.
	ErrReferenceArithmetic = fmt.Errorf("qerr: symbolic parameter arithmetic not supported")
	// ErrOpNotImplemented is returned for operations with no closed-form
	// implementation for a given gate (e.g. Square on a Controlled or Kron
	// composite whose inner gate has no closed-form square).
	ErrOpNotImplemented = fmt.Errorf("qerr: operation not implemented for this gate")
)

// NotAStabilizer wraps ErrNotAStabilizer with the offending gate's
// description.
func NotAStabilizer(gate string) error {
	return fmt.Errorf("%w: %s", ErrNotAStabilizer, gate)
}

// ExportUnsupported wraps ErrExportUnsupported with the operation and
// target format.
func ExportUnsupported(op, format string) error {
	return fmt.Errorf("%w: %s in %s", ErrExportUnsupported, op, format)
}

// InvalidBitCount wraps ErrInvalidBitCount with the expected/actual
// counts.
func InvalidBitCount(gate string, want, got int) error {
	return fmt.Errorf("%w: %s wants %d bits, got %d", ErrInvalidBitCount, gate, want, got)
}

// OpNotImplemented wraps ErrOpNotImplemented with the operation and gate
// description.
func OpNotImplemented(op, gate string) error {
	return fmt.Errorf("%w: %s for %s", ErrOpNotImplemented, op, gate)
}

// ReferenceArithmetic wraps ErrReferenceArithmetic with the gate
// description.
func ReferenceArithmetic(gate string) error {
	return fmt.Errorf("%w: %s", ErrReferenceArithmetic, gate)
}
