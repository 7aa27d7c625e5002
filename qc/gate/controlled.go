package gate

import (
	"fmt"

	"github.com/kegliz/qplay/qc/cmatrix"
	"github.com/kegliz/qplay/qc/qerr"
)

// Controlled wraps a gate G into a (k+1)-qubit gate that applies G to the
// last NrAffectedBits(G) qubits when the first (control) qubit is |1>,
// and leaves the state untouched when it is |0>. Its matrix is
// block-diag(I, G.Matrix()).
type Controlled struct {
	G Gate
}

// NewControlled returns the Controlled(g) composite gate.
func NewControlled(g Gate) Gate { return Controlled{G: g} }

func (c Controlled) Description() string { return fmt.Sprintf("C-%s", c.G.Description()) }
func (c Controlled) NrAffectedBits() int { return c.G.NrAffectedBits() + 1 }
func (c Controlled) Cost() float64       { return c.G.Cost() + 1 }

func (c Controlled) Matrix() *cmatrix.Matrix {
	inner := c.G.Matrix()
	n := inner.Rows
	m := cmatrix.NewMatrix(2*n, 2*n)
	for i := 0; i < n; i++ {
		m.Set(i, i, cmatrix.One)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(n+i, n+j, inner.At(i, j))
		}
	}
	return m
}

// ApplySlice leaves the first half (control = 0) untouched and applies G
// to the second half (control = 1).
func (c Controlled) ApplySlice(state []complex128) {
	n := len(state) / 2
	c.G.ApplySlice(state[n:])
}

// pauliConjugateUnderPauli reports how single-qubit Pauli gate t (t in
// {PauliX, PauliY, PauliZ}) conjugates Pauli p: the result always equals
// p itself, with a sign flip exactly when p and t anticommute (p is
// neither I nor t).
func pauliConjugateUnderPauli(t, p PauliOp) (flip bool) {
	return p != PauliI && p != t
}

// Conjugate implements the controlled-Pauli propagation rules (standard
// stabilizer-formalism "CNOT/CY/CZ propagation"), derived by case
// analysis on the control qubit's Pauli and the conjugated target
// operator, exactly as the design note describes. It only has a closed
// form when the wrapped gate is itself a single-qubit Pauli (X, Y or Z):
// CX, CY and CZ. Any other wrapped gate (H, T, a rotation, or a
// multi-qubit gate, as in CCX/CCZ) yields a non-Clifford composite and
// returns qerr.ErrNotAStabilizer.
func (c Controlled) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, c.NrAffectedBits())
	var t PauliOp
	switch c.G.(type) {
	case pauliXGate:
		t = PauliX
	case pauliYGate:
		t = PauliY
	case pauliZGate:
		t = PauliZ
	default:
		return false, qerr.NotAStabilizer(c.Description())
	}
	if len(ops) != 2 {
		return false, qerr.NotAStabilizer(c.Description())
	}
	pc, pt := ops[0], ops[1]

	// Part B: conjugation of (Pc (x) I).
	var ctrlB, targB PauliOp
	switch pc {
	case PauliI:
		ctrlB, targB = PauliI, PauliI
	case PauliZ:
		ctrlB, targB = PauliZ, PauliI
	default: // X or Y
		ctrlB, targB = pc, t
	}

	// Part A: conjugation of (I (x) Pt).
	var ctrlA PauliOp = PauliI
	if pauliConjugateUnderPauli(t, pt) {
		ctrlA = PauliZ
	}
	targA := pt

	ctrlResult, ctrlPow := MulPauli(ctrlB, ctrlA)
	targResult, targPow := MulPauli(targB, targA)
	totalPow := (ctrlPow + targPow) % 4
	if totalPow != 0 && totalPow != 2 {
		panic("gate: controlled-Pauli conjugation produced an imaginary phase")
	}

	ops[0], ops[1] = ctrlResult, targResult
	return totalPow == 2, nil
}

// Square returns the closed-form square when known: Controlled(X),
// Controlled(Y) and Controlled(Z) all square to identity since their
// inner gate is an involution.
func (c Controlled) Square() (Gate, error) {
	switch c.G.(type) {
	case pauliXGate, pauliYGate, pauliZGate:
		return NewControlled(identity), nil
	}
	return nil, qerr.OpNotImplemented("square", c.Description())
}

// CX, CY, CZ, CH are Controlled(X/Y/Z/H), exposed as named constructors
// matching the spec's explicit two-qubit gate list.
func CX() Gate { return NewControlled(X()) }
func CY() Gate { return NewControlled(Y()) }
func CZ() Gate { return NewControlled(Z()) }
func CH() Gate { return NewControlled(H()) }
