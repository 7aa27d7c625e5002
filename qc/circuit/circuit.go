// Package circuit implements the operation-list executor (spec §4.6):
// a Circuit owns an ordered list of operations over nrBits qubits and
// nrCbits classical bits, and Execute runs them against a dense
// qc/qustate.QuState for a given shot count, producing a classical
// register per shot that the histogram helpers summarize. Grounded on
// original_source/src/circuit.rs (a simpler, measurement-only
// predecessor); the teacher's DAG-scheduled three-layer design
// (qc/dag + qc/dag/builder + qc/circuit.FromDAG) existed to compute a
// parallel-hardware layout, a concern the spec's flat per-shot
// operation list has no use for, so Circuit folds construction and
// execution into one type instead of keeping a separate builder/DAG
// stage (see DESIGN.md).
package circuit

import (
	"github.com/kegliz/qplay/internal/logger"
	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/qerr"
	"github.com/kegliz/qplay/qc/qustate"
)

// OpKind discriminates the operation variants a Circuit can hold.
type OpKind int

const (
	OpGate OpKind = iota
	OpConditionalGate
	OpMeasure
	OpMeasureAll
	OpPeekAll
	OpReset
	OpResetAll
	OpBarrier
)

// Op is one entry in a Circuit's op list. Only the fields relevant to
// Kind are populated. Exporters (qc/export) walk a Circuit's Op list
// via Operations to render each variant in their target format.
type Op struct {
	Kind    OpKind
	G       gate.Gate
	Bits    []int
	Cbit    int
	Cbits   []int
	Qbit    int
	Basis   qustate.Basis
	Control []int
	Target  uint64
}

// conditionalMatches reconstructs the control word from row (a shot's
// classical register) per spec §6's "Conditional-gate word assembly":
// control[idst] names the classical bit whose value becomes bit idst of
// the reconstructed word, so the first control entry is the
// least-significant bit. An empty control list always matches
// (unconditional).
func conditionalMatches(row []bool, control []int, target uint64) bool {
	if len(control) == 0 {
		return true
	}
	var word uint64
	for idst, cbit := range control {
		if row[cbit] {
			word |= 1 << uint(idst)
		}
	}
	return word == target
}

// Circuit owns an ordered operation list plus the QuState and classical
// register from the last Execute call. Execute allocates both fresh,
// sized to the requested shot count; Reexecute replays the op list onto
// that same state and register without reallocating, so a measurement's
// collapse (or a Reset) made during Execute is still in effect when
// Reexecute runs, matching original_source/src/circuit.rs's execute():
// "this does not reset the state before execution".
type Circuit struct {
	nrBits  int
	nrCbits int
	ops     []Op
	log     *logger.Logger

	executed bool
	nrShots  int
	state    *qustate.QuState
	creg     [][]bool
}

// Option configures a Circuit at construction time.
type Option func(*Circuit)

// WithLogger attaches a logger that Execute uses to emit structured
// debug events around gate application and measurement.
func WithLogger(l *logger.Logger) Option {
	return func(c *Circuit) { c.log = l }
}

// New returns an empty circuit over nrBits qubits and nrCbits classical
// bits.
func New(nrBits, nrCbits int, opts ...Option) *Circuit {
	if nrBits <= 0 || nrCbits < 0 {
		panic("circuit: invalid qubit/classical-bit count")
	}
	c := &Circuit{nrBits: nrBits, nrCbits: nrCbits}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NrBits and NrCbits report the circuit's register sizes.
func (c *Circuit) NrBits() int  { return c.nrBits }
func (c *Circuit) NrCbits() int { return c.nrCbits }

// AddGate appends an unconditional gate application on the given qubits.
func (c *Circuit) AddGate(g gate.Gate, bits ...int) *Circuit {
	c.invalidate()
	c.ops = append(c.ops, Op{Kind: OpGate, G: g, Bits: append([]int(nil), bits...)})
	return c
}

// AddConditionalGate appends a gate that is only applied, per shot, when
// the classical bits named by control, reassembled least-significant
// control entry first, equal target (spec §6's conditional-gate word
// assembly). An empty control list makes the gate unconditional.
func (c *Circuit) AddConditionalGate(g gate.Gate, bits []int, control []int, target uint64) *Circuit {
	c.invalidate()
	c.ops = append(c.ops, Op{
		Kind: OpConditionalGate, G: g, Bits: append([]int(nil), bits...),
		Control: append([]int(nil), control...), Target: target,
	})
	return c
}

// AddMeasure appends a destructive measurement of qbit, in the given
// basis, into cbit.
func (c *Circuit) AddMeasure(qbit, cbit int, basis qustate.Basis) *Circuit {
	c.invalidate()
	c.ops = append(c.ops, Op{Kind: OpMeasure, Qbit: qbit, Cbit: cbit, Basis: basis})
	return c
}

// AddMeasureAll appends a destructive measurement, in the given basis,
// of every qubit q into cbits[q].
func (c *Circuit) AddMeasureAll(cbits []int, basis qustate.Basis) *Circuit {
	c.invalidate()
	c.ops = append(c.ops, Op{Kind: OpMeasureAll, Cbits: append([]int(nil), cbits...), Basis: basis})
	return c
}

// AddPeekAll appends a non-destructive probe of every qubit q into
// cbits[q], leaving the quantum state untouched.
func (c *Circuit) AddPeekAll(cbits []int) *Circuit {
	c.invalidate()
	c.ops = append(c.ops, Op{Kind: OpPeekAll, Cbits: append([]int(nil), cbits...)})
	return c
}

// AddReset appends a reset of a single qubit to |0>.
func (c *Circuit) AddReset(qbit int) *Circuit {
	c.invalidate()
	c.ops = append(c.ops, Op{Kind: OpReset, Qbit: qbit})
	return c
}

// AddResetAll appends a reset of every qubit to |0>.
func (c *Circuit) AddResetAll() *Circuit {
	c.invalidate()
	c.ops = append(c.ops, Op{Kind: OpResetAll})
	return c
}

// AddBarrier appends a no-op ordering barrier (preserved for exporters
// that need to render a visual separator; it has no effect on Execute).
func (c *Circuit) AddBarrier() *Circuit {
	c.invalidate()
	c.ops = append(c.ops, Op{Kind: OpBarrier})
	return c
}

// Ops reports the recorded operation count.
func (c *Circuit) Ops() int { return len(c.ops) }

// Operations returns a defensive copy of the circuit's op list, for
// exporters (qc/export) that need to walk it to render another format.
func (c *Circuit) Operations() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

func (c *Circuit) invalidate() { c.executed = false }

// Execute allocates a fresh nrShots-shot QuState and classical register,
// then runs every operation against them. Call it again to start over
// from |0...0> with a (possibly different) shot count; call Reexecute
// instead to replay onto the state Execute already built.
func (c *Circuit) Execute(nrShots int) error {
	if nrShots <= 0 {
		panic("circuit: nrShots must be positive")
	}
	q := qustate.New(c.nrBits, nrShots, nil)
	creg := make([][]bool, nrShots)
	for i := range creg {
		creg[i] = make([]bool, c.nrCbits)
	}

	c.state = q
	c.creg = creg
	c.nrShots = nrShots
	if err := c.run(); err != nil {
		return err
	}
	c.executed = true
	return nil
}

// Reexecute replays the operation list once more against the QuState and
// classical register Execute already built, without reallocating either.
// It returns qerr.ErrNotExecuted if Execute has never been called.
func (c *Circuit) Reexecute() error {
	if !c.executed {
		return qerr.ErrNotExecuted
	}
	return c.run()
}

// run walks the op list, applying each operation to c.state and
// recording outcomes into c.creg. Shared by Execute (against a freshly
// allocated state) and Reexecute (against the state from the prior run).
func (c *Circuit) run() error {
	q, creg := c.state, c.creg
	for _, op := range c.ops {
		if c.log != nil {
			c.log.Debug().Int("kind", int(op.Kind)).Msg("executing operation")
		}
		switch op.Kind {
		case OpGate:
			if err := q.ApplyGate(op.G, op.Bits); err != nil {
				return err
			}
		case OpConditionalGate:
			control := op.Control
			target := op.Target
			if err := q.ApplyConditionalGate(op.G, op.Bits, func(s int) bool {
				return conditionalMatches(creg[s], control, target)
			}); err != nil {
				return err
			}
		case OpMeasure:
			q.MeasureInto(op.Qbit, op.Cbit, creg, op.Basis)
		case OpMeasureAll:
			q.MeasureAllInto(op.Cbits, creg, op.Basis)
		case OpPeekAll:
			q.PeekAllInto(op.Cbits, creg)
		case OpReset:
			q.Reset(op.Qbit)
		case OpResetAll:
			q.ResetAll()
		case OpBarrier:
			// no-op
		}
	}
	if c.log != nil {
		c.log.Info().Int("shots", c.nrShots).Msg("circuit executed")
	}
	return nil
}

// Cstate returns the classical register produced by the last Execute
// call: creg[shot][cbit]. Returns qerr.ErrNotExecuted if not yet run.
func (c *Circuit) Cstate() ([][]bool, error) {
	if !c.executed {
		return nil, qerr.ErrNotExecuted
	}
	return c.creg, nil
}
