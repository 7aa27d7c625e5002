// Package crossval cross-validates qc/circuit's own engines against an
// independent third-party state-vector simulator
// (github.com/itsubaki/q), for the subset of operations both can
// express, per spec §8's "testable properties" intent extended beyond
// the repo's own two engines. Grounded on qc/simulator/itsu/itsu.go's
// runOnce gate dispatch, rewritten against circuit.Op/Gate.Description()
// instead of the teacher's old Gate.Name()/op.Qubits fields.
package crossval

import (
	"fmt"
	"math"

	"github.com/itsubaki/q"

	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/qerr"
)

// RunItsu replays c shots times against a fresh github.com/itsubaki/q
// simulator instance per shot (itsubaki/q has no native batched-shot
// concept), returning a histogram keyed the same way as
// circuit.Circuit.HistogramString: one character per classical bit,
// cbit 0 first.
//
// Only Gate, ConditionalGate (single control bit), Measure, MeasureAll,
// Reset, ResetAll and Barrier are supported, over the gate set H, X, Y,
// Z, S, CX, CZ, CCX — the Clifford-heavy subset relevant to
// cross-checking the stabilizer/dense engines against an outside
// implementation. Unsupported gates or multi-bit conditionals fail with
// qerr.ErrOpNotImplemented.
func RunItsu(c *circuit.Circuit, shots int) (map[string]int, error) {
	ops := c.Operations()
	hist := make(map[string]int)
	for i := 0; i < shots; i++ {
		key, err := runItsuOnce(c.NrBits(), c.NrCbits(), ops)
		if err != nil {
			return nil, err
		}
		hist[key]++
	}
	return hist, nil
}

func runItsuOnce(nrBits, nrCbits int, ops []circuit.Op) (string, error) {
	sim := q.New()
	qs := sim.ZeroWith(nrBits)
	creg := make([]bool, nrCbits)

	for _, op := range ops {
		switch op.Kind {
		case circuit.OpGate:
			if err := applyItsuGate(sim, qs, op.G.Description(), op.Bits); err != nil {
				return "", err
			}
		case circuit.OpConditionalGate:
			if len(op.Control) != 1 {
				return "", qerr.OpNotImplemented("multi-bit conditional", op.G.Description())
			}
			if creg[op.Control[0]] == (op.Target&1 == 1) {
				if err := applyItsuGate(sim, qs, op.G.Description(), op.Bits); err != nil {
					return "", err
				}
			}

		case circuit.OpMeasure:
			creg[op.Cbit] = sim.Measure(qs[op.Qbit]).IsOne()
		case circuit.OpMeasureAll:
			for qbit, cbit := range op.Cbits {
				creg[cbit] = sim.Measure(qs[qbit]).IsOne()
			}
		case circuit.OpReset:
			if sim.Measure(qs[op.Qbit]).IsOne() {
				sim.X(qs[op.Qbit])
			}
		case circuit.OpResetAll:
			for _, qbit := range qs {
				if sim.Measure(qbit).IsOne() {
					sim.X(qbit)
				}
			}
		case circuit.OpPeekAll, circuit.OpBarrier:
			// Peek has no itsubaki/q analog without collapsing; barriers
			// are a no-op for simulation either way.
		}
	}

	key := make([]byte, nrCbits)
	for i, bit := range creg {
		if bit {
			key[i] = '1'
		} else {
			key[i] = '0'
		}
	}
	return string(key), nil
}

func applyItsuGate(sim *q.Q, qs []q.Qubit, desc string, bits []int) error {
	switch desc {
	case "H":
		sim.H(qs[bits[0]])
	case "X":
		sim.X(qs[bits[0]])
	case "Y":
		sim.Y(qs[bits[0]])
	case "Z":
		sim.Z(qs[bits[0]])
	case "S":
		sim.S(qs[bits[0]])
	case "C-X":
		sim.CNOT(qs[bits[0]], qs[bits[1]])
	case "C-Z":
		sim.CZ(qs[bits[0]], qs[bits[1]])
	case "CCX":
		sim.Toffoli(qs[bits[0]], qs[bits[1]], qs[bits[2]])
	default:
		return qerr.OpNotImplemented("crossval", desc)
	}
	return nil
}

// Compare executes c on its own engine for shots repetitions and
// independently replays it against itsubaki/q for the same shot count,
// and fails if any outcome's observed frequency differs by more than
// tolerance (a fraction of shots), per spec §8's cross-engine agreement
// property.
func Compare(c *circuit.Circuit, shots int, tolerance float64) error {
	if err := c.Execute(shots); err != nil {
		return err
	}
	ours, err := c.HistogramString()
	if err != nil {
		return err
	}
	theirs, err := RunItsu(c, shots)
	if err != nil {
		return err
	}

	keys := make(map[string]struct{}, len(ours)+len(theirs))
	for k := range ours {
		keys[k] = struct{}{}
	}
	for k := range theirs {
		keys[k] = struct{}{}
	}
	for k := range keys {
		diff := math.Abs(float64(ours[k]-theirs[k])) / float64(shots)
		if diff > tolerance {
			return fmt.Errorf("crossval: outcome %q diverges: ours=%d theirs=%d shots=%d tolerance=%g",
				k, ours[k], theirs[k], shots, tolerance)
		}
	}
	return nil
}
