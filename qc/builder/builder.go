// Package builder provides a fluent declarative DSL over qc/circuit,
// the convenience façade SPEC_FULL.md's circuit-building collaborator
// is expected to offer. Grounded on the teacher's own qc/builder
// fluent-chaining pattern, re-pointed at circuit.Circuit directly: the
// teacher's DAG-validation stage existed to support a parallel-hardware
// layout concern (see qc/circuit's package doc) that this builder has
// no need for, since Circuit applies gates in append order.
package builder

import (
	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/qustate"
)

// Builder implements a *fluent* declarative DSL for building quantum circuits.
type Builder interface {
	// Single-qubit gates
	H(q int) Builder
	X(q int) Builder
	S(q int) Builder

	// Multi-qubit gates
	CNOT(ctrl, tgt int) Builder
	CZ(ctrl, tgt int) Builder
	Toffoli(c1, c2, tgt int) Builder

	// Measurement (Z basis)
	Measure(q, cbit int) Builder
	MeasureAll(cbits []int) Builder

	// Reset
	Reset(q int) Builder

	// Build returns the underlying circuit, ready for Execute.
	Build() *circuit.Circuit
}

// New returns a fresh Builder with the requested qubits/classical bits.
func New(opts ...Option) Builder { return newBuilder(opts...) }

// ---------------------------- implementation -------------------------

type b struct {
	c *circuit.Circuit
}

func newBuilder(opts ...Option) *b {
	cfg := config{qubits: 1}
	for _, o := range opts {
		o(&cfg)
	}
	return &b{c: circuit.New(cfg.qubits, cfg.clbits)}
}

func (b *b) H(q int) Builder              { b.c.AddGate(gate.H(), q); return b }
func (b *b) X(q int) Builder              { b.c.AddGate(gate.X(), q); return b }
func (b *b) S(q int) Builder              { b.c.AddGate(gate.S(), q); return b }
func (b *b) CNOT(c, t int) Builder        { b.c.AddGate(gate.CX(), c, t); return b }
func (b *b) CZ(c, t int) Builder          { b.c.AddGate(gate.CZ(), c, t); return b }
func (b *b) Toffoli(a, bq, t int) Builder { b.c.AddGate(gate.CCX(), a, bq, t); return b }

func (b *b) Measure(q, cbit int) Builder    { b.c.AddMeasure(q, cbit, qustate.BasisZ); return b }
func (b *b) MeasureAll(cbits []int) Builder { b.c.AddMeasureAll(cbits, qustate.BasisZ); return b }
func (b *b) Reset(q int) Builder            { b.c.AddReset(q); return b }

// Build returns the underlying circuit, ready for Execute.
func (b *b) Build() *circuit.Circuit { return b.c }

// ------------------------- options -----------------------------------

type config struct {
	qubits int
	clbits int
}
type Option func(*config)

func Q(n int) Option { return func(c *config) { c.qubits = n } }
func C(n int) Option { return func(c *config) { c.clbits = n } }
