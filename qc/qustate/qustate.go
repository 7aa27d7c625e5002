// Package qustate implements the dense batched state-vector engine
// (spec §3-§4.4): QuState tracks nrShots independent nrBits-qubit state
// vectors ("shots") and applies gates, measurements, resets and peeks
// across all of them. Grounded on qc/simulator/qsim/state.go's bitmask
// techniques, re-architected here for batched (multi-shot) rather than
// single-shot operation, with gate application routed through
// qc/gate.Gate.ApplySlice and qc/permutation rather than hand-unrolled
// per-gate-name switches.
package qustate

import (
	"math/cmplx"
	"math/rand"

	"github.com/kegliz/qplay/qc/cmatrix"
	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/permutation"
	"github.com/kegliz/qplay/qc/qerr"
)

// QuState holds nrShots independent state vectors over nrBits qubits,
// each initialized to |0...0>.
type QuState struct {
	nrBits  int
	nrShots int
	// amps[s] is shot s's amplitude vector, length 2^nrBits.
	amps [][]complex128
	rng  *rand.Rand
}

// New allocates a batch of nrShots copies of the |0...0> state over
// nrBits qubits. rng may be nil, in which case a new source seeded with 1
// is used, so every QuState built without an explicit *rand.Rand draws
// the same reproducible sequence.
func New(nrBits, nrShots int, rng *rand.Rand) *QuState {
	if nrBits <= 0 || nrShots <= 0 {
		panic("qustate: nrBits and nrShots must be positive")
	}
	dim := 1 << uint(nrBits)
	amps := make([][]complex128, nrShots)
	for s := range amps {
		v := make([]complex128, dim)
		v[0] = cmatrix.One
		amps[s] = v
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &QuState{nrBits: nrBits, nrShots: nrShots, amps: amps, rng: rng}
}

// NrBits returns the number of qubits per shot.
func (q *QuState) NrBits() int { return q.nrBits }

// NrShots returns the number of independent shots tracked.
func (q *QuState) NrShots() int { return q.nrShots }

// Amplitudes returns shot s's amplitude vector directly (not a copy);
// callers must not retain it across further mutating calls.
func (q *QuState) Amplitudes(s int) []complex128 { return q.amps[s] }

// applyToShot permutes the affected bits to the front, applies g, and
// permutes back, for a single shot's vector.
func applyToShot(v []complex128, g gate.Gate, bits []int, nrBits int) {
	perm := permutation.New(nrBits, bits)
	permuted := permutation.PermuteVec(perm, v)
	g.ApplySlice(permuted)
	back := permutation.UnpermuteVec(perm, permuted)
	copy(v, back)
}

// ApplyGate applies g to the given qubit indices of every shot (spec's
// embarrassingly-parallel per-shot application).
func (q *QuState) ApplyGate(g gate.Gate, bits []int) error {
	if len(bits) != g.NrAffectedBits() {
		return qerr.InvalidBitCount(g.Description(), g.NrAffectedBits(), len(bits))
	}
	for s := 0; s < q.nrShots; s++ {
		applyToShot(q.amps[s], g, bits, q.nrBits)
	}
	return nil
}

// ApplyConditionalGate applies g only to the shots s for which apply(s)
// returns true: the circuit executor supplies a per-shot predicate over
// that shot's classical bits rather than a single global condition,
// since each shot's classical history is independent.
func (q *QuState) ApplyConditionalGate(g gate.Gate, bits []int, apply func(shot int) bool) error {
	if len(bits) != g.NrAffectedBits() {
		return qerr.InvalidBitCount(g.Description(), g.NrAffectedBits(), len(bits))
	}
	for s := 0; s < q.nrShots; s++ {
		if apply(s) {
			applyToShot(q.amps[s], g, bits, q.nrBits)
		}
	}
	return nil
}

// probabilityOne returns, for shot s, the probability that qubit qbit
// measures |1>.
func (q *QuState) probabilityOne(s, qbit int) float64 {
	v := q.amps[s]
	mask := 1 << uint(q.nrBits-qbit-1)
	var p float64
	for i, amp := range v {
		if i&mask != 0 {
			p += real(amp)*real(amp) + imag(amp)*imag(amp)
		}
	}
	return p
}

// collapse projects shot s's state onto the outcome (0 or 1) of qbit and
// renormalizes.
func collapse(v []complex128, nrBits, qbit int, outcome int) {
	mask := 1 << uint(nrBits-qbit-1)
	var norm float64
	for i := range v {
		bit := 0
		if i&mask != 0 {
			bit = 1
		}
		if bit != outcome {
			v[i] = 0
		} else {
			norm += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
	}
	if norm == 0 {
		return
	}
	scale := complex(1/cmplxSqrt(norm), 0)
	for i := range v {
		v[i] *= scale
	}
}

func cmplxSqrt(x float64) float64 { return real(cmplx.Sqrt(complex(x, 0))) }

// Basis selects the measurement basis for Measure/MeasureAll: X-basis
// rotates with H before a Z-measure, Y-basis rotates with S† then H,
// Z-basis measures directly (spec's "Measurement basis change" rule).
type Basis int

const (
	BasisZ Basis = iota
	BasisX
	BasisY
)

// applyBasisChange rotates qbit into the Z basis ahead of a destructive
// measurement; the rotation is not undone afterward; per spec this is a
// literal "apply H, then Z-measure" / "apply S†, then H, then Z-measure"
// transform, not a measure-then-restore round trip.
func (q *QuState) applyBasisChange(qbit int, basis Basis) {
	switch basis {
	case BasisX:
		_ = q.ApplyGate(gate.H(), []int{qbit})
	case BasisY:
		_ = q.ApplyGate(gate.Sdg(), []int{qbit})
		_ = q.ApplyGate(gate.H(), []int{qbit})
	}
}

// measureZInto is the basis-agnostic Z-measurement core shared by
// MeasureInto and MeasureAllInto.
func (q *QuState) measureZInto(qbit, cbit int, creg [][]bool) {
	for s := 0; s < q.nrShots; s++ {
		p1 := q.probabilityOne(s, qbit)
		outcome := 0
		if q.rng.Float64() < p1 {
			outcome = 1
		}
		collapse(q.amps[s], q.nrBits, qbit, outcome)
		creg[s][cbit] = outcome == 1
	}
}

// MeasureInto samples qbit on every shot via the Born rule in the given
// basis, collapses each shot's state accordingly, and writes the
// outcome into creg[s] at position cbit.
func (q *QuState) MeasureInto(qbit, cbit int, creg [][]bool, basis Basis) {
	q.applyBasisChange(qbit, basis)
	q.measureZInto(qbit, cbit, creg)
}

// MeasureAllInto measures every qubit (in index order) of every shot
// into the corresponding positions of cbits within creg. The basis
// change for every qubit is applied as one unary sweep before any
// qubit is measured, per spec §4.4.
func (q *QuState) MeasureAllInto(cbits []int, creg [][]bool, basis Basis) {
	for qbit := range cbits {
		q.applyBasisChange(qbit, basis)
	}
	for qbit, cbit := range cbits {
		q.measureZInto(qbit, cbit, creg)
	}
}

// PeekAllInto samples the Born-rule outcome of every qubit for every
// shot into creg, without collapsing the state — a non-destructive
// probe (spec's Peek operation).
func (q *QuState) PeekAllInto(cbits []int, creg [][]bool) {
	for qbit, cbit := range cbits {
		for s := 0; s < q.nrShots; s++ {
			p1 := q.probabilityOne(s, qbit)
			outcome := q.rng.Float64() < p1
			creg[s][cbit] = outcome
		}
	}
}

// Reset measures qbit (discarding the outcome) and then applies X to any
// shot that collapsed to |1>, leaving every shot with qbit in |0>.
func (q *QuState) Reset(qbit int) {
	for s := 0; s < q.nrShots; s++ {
		p1 := q.probabilityOne(s, qbit)
		outcome := 0
		if q.rng.Float64() < p1 {
			outcome = 1
		}
		collapse(q.amps[s], q.nrBits, qbit, outcome)
		if outcome == 1 {
			applyToShot(q.amps[s], gate.X(), []int{qbit}, q.nrBits)
		}
	}
}

// ResetAll resets every qubit.
func (q *QuState) ResetAll() {
	for qbit := 0; qbit < q.nrBits; qbit++ {
		q.Reset(qbit)
	}
}

// Clone returns a deep copy of the state, for callers that want a
// mid-circuit checkpoint to branch from without disturbing the original
// (qc/circuit.Circuit.Reexecute replays onto the same QuState in place
// rather than cloning, since it wants the prior run's collapse to stick).
func (q *QuState) Clone() *QuState {
	amps := make([][]complex128, q.nrShots)
	for i, v := range q.amps {
		amps[i] = append([]complex128(nil), v...)
	}
	return &QuState{nrBits: q.nrBits, nrShots: q.nrShots, amps: amps, rng: q.rng}
}
