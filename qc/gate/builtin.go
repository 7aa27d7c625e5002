package gate

import (
	"github.com/kegliz/qplay/qc/cmatrix"
	"github.com/kegliz/qplay/qc/qerr"
)

// Fixed-matrix single-qubit gates. Each is an immutable singleton value,
// the same construction the teacher uses for its builtin gate set:
// public accessors return a shared instance to avoid allocation and
// support pointer-equality comparisons.

type identityGate struct{}

func (identityGate) Description() string   { return "I" }
func (identityGate) NrAffectedBits() int   { return 1 }
func (identityGate) Cost() float64         { return 0 }
func (identityGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	m.Set(0, 0, cmatrix.One)
	m.Set(1, 1, cmatrix.One)
	return m
}
func (identityGate) ApplySlice([]complex128) {}
func (identityGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	return false, nil
}
func (identityGate) Square() (Gate, error) { return I(), nil }

type pauliXGate struct{}

func (pauliXGate) Description() string { return "X" }
func (pauliXGate) NrAffectedBits() int { return 1 }
func (pauliXGate) Cost() float64       { return 1 }
func (pauliXGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	m.Set(0, 1, cmatrix.One)
	m.Set(1, 0, cmatrix.One)
	return m
}

// ApplySlice swaps the upper and lower halves of the slice: X maps
// |0>|psi> <-> |1>|psi>, grounded on original_source's gates/x.rs.
func (pauliXGate) ApplySlice(state []complex128) {
	n := len(state) / 2
	for i := 0; i < n; i++ {
		state[i], state[n+i] = state[n+i], state[i]
	}
}
func (pauliXGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	p := ops[0]
	flip := p == PauliY || p == PauliZ
	return flip, nil
}
func (pauliXGate) Square() (Gate, error) { return I(), nil }

type pauliYGate struct{}

func (pauliYGate) Description() string { return "Y" }
func (pauliYGate) NrAffectedBits() int { return 1 }
func (pauliYGate) Cost() float64       { return 1 }
func (pauliYGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	m.Set(0, 1, -cmatrix.I)
	m.Set(1, 0, cmatrix.I)
	return m
}
func (pauliYGate) ApplySlice(state []complex128) {
	n := len(state) / 2
	for i := 0; i < n; i++ {
		a, b := state[i], state[n+i]
		state[i] = -cmatrix.I * b
		state[n+i] = cmatrix.I * a
	}
}
func (pauliYGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	p := ops[0]
	flip := p == PauliX || p == PauliZ
	return flip, nil
}
func (pauliYGate) Square() (Gate, error) { return I(), nil }

type pauliZGate struct{}

func (pauliZGate) Description() string { return "Z" }
func (pauliZGate) NrAffectedBits() int { return 1 }
func (pauliZGate) Cost() float64       { return 1 }
func (pauliZGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	m.Set(0, 0, cmatrix.One)
	m.Set(1, 1, -cmatrix.One)
	return m
}
func (pauliZGate) ApplySlice(state []complex128) {
	n := len(state) / 2
	for i := 0; i < n; i++ {
		state[n+i] = -state[n+i]
	}
}
func (pauliZGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	p := ops[0]
	flip := p == PauliX || p == PauliY
	return flip, nil
}
func (pauliZGate) Square() (Gate, error) { return I(), nil }

type hadamardGate struct{}

func (hadamardGate) Description() string { return "H" }
func (hadamardGate) NrAffectedBits() int { return 1 }
func (hadamardGate) Cost() float64       { return 1 }
func (hadamardGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	h := cmatrix.HalfSqrt2
	m.Set(0, 0, h)
	m.Set(0, 1, h)
	m.Set(1, 0, h)
	m.Set(1, 1, -h)
	return m
}
func (hadamardGate) ApplySlice(state []complex128) {
	n := len(state) / 2
	h := cmatrix.HalfSqrt2
	for i := 0; i < n; i++ {
		a, b := state[i], state[n+i]
		state[i] = h * (a + b)
		state[n+i] = h * (a - b)
	}
}

// Conjugate implements H's well-known action: it swaps X and Z, and
// flips the sign of Y.
func (hadamardGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	switch ops[0] {
	case PauliI:
		return false, nil
	case PauliX:
		ops[0] = PauliZ
		return false, nil
	case PauliZ:
		ops[0] = PauliX
		return false, nil
	case PauliY:
		return true, nil
	}
	panic("gate: invalid PauliOp")
}
func (hadamardGate) Square() (Gate, error) { return I(), nil }

type sGate struct{}

func (sGate) Description() string { return "S" }
func (sGate) NrAffectedBits() int { return 1 }
func (sGate) Cost() float64       { return 1 }
func (sGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	m.Set(0, 0, cmatrix.One)
	m.Set(1, 1, cmatrix.I)
	return m
}
func (sGate) ApplySlice(state []complex128) {
	n := len(state) / 2
	for i := 0; i < n; i++ {
		state[n+i] *= cmatrix.I
	}
}

// Conjugate implements S's action: X -> Y, Y -> -X, Z fixed.
func (sGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	switch ops[0] {
	case PauliI, PauliZ:
		return false, nil
	case PauliX:
		ops[0] = PauliY
		return false, nil
	case PauliY:
		ops[0] = PauliX
		return true, nil
	}
	panic("gate: invalid PauliOp")
}
func (sGate) Square() (Gate, error) { return Z(), nil }

type sdgGate struct{}

func (sdgGate) Description() string { return "S†" }
func (sdgGate) NrAffectedBits() int { return 1 }
func (sdgGate) Cost() float64       { return 1 }
func (sdgGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	m.Set(0, 0, cmatrix.One)
	m.Set(1, 1, -cmatrix.I)
	return m
}
func (sdgGate) ApplySlice(state []complex128) {
	n := len(state) / 2
	for i := 0; i < n; i++ {
		state[n+i] *= -cmatrix.I
	}
}

// Conjugate implements S†'s action: X -> -Y, Y -> X, Z fixed.
func (sdgGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	switch ops[0] {
	case PauliI, PauliZ:
		return false, nil
	case PauliX:
		ops[0] = PauliY
		return true, nil
	case PauliY:
		ops[0] = PauliX
		return false, nil
	}
	panic("gate: invalid PauliOp")
}
func (sdgGate) Square() (Gate, error) { return Z(), nil }

type vGate struct{}

func (vGate) Description() string { return "V" }
func (vGate) NrAffectedBits() int { return 1 }
func (vGate) Cost() float64       { return 1 }
func (vGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	half := complex(0.5, 0.5)
	halfC := complex(0.5, -0.5)
	m.Set(0, 0, half)
	m.Set(0, 1, halfC)
	m.Set(1, 0, halfC)
	m.Set(1, 1, half)
	return m
}
func (g vGate) ApplySlice(state []complex128) { applyViaMatrix(g.Matrix(), state) }

// Conjugate implements V = sqrt(X): X fixed, Y -> Z, Z -> -Y. Derived
// from V = H.S.H via the corresponding Clifford table composition, and
// cross-checked against the "H then V" scenario of stabilizer.rs.
func (vGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	switch ops[0] {
	case PauliI, PauliX:
		return false, nil
	case PauliY:
		ops[0] = PauliZ
		return false, nil
	case PauliZ:
		ops[0] = PauliY
		return true, nil
	}
	panic("gate: invalid PauliOp")
}
func (vGate) Square() (Gate, error) { return X(), nil }

type vdgGate struct{}

func (vdgGate) Description() string { return "V†" }
func (vdgGate) NrAffectedBits() int { return 1 }
func (vdgGate) Cost() float64       { return 1 }
func (vdgGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	half := complex(0.5, -0.5)
	halfC := complex(0.5, 0.5)
	m.Set(0, 0, half)
	m.Set(0, 1, halfC)
	m.Set(1, 0, halfC)
	m.Set(1, 1, half)
	return m
}
func (g vdgGate) ApplySlice(state []complex128) { applyViaMatrix(g.Matrix(), state) }

// Conjugate implements V† = sqrt(X)†: X fixed, Y -> -Z, Z -> Y.
func (vdgGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	switch ops[0] {
	case PauliI, PauliX:
		return false, nil
	case PauliY:
		ops[0] = PauliZ
		return true, nil
	case PauliZ:
		ops[0] = PauliY
		return false, nil
	}
	panic("gate: invalid PauliOp")
}
func (vdgGate) Square() (Gate, error) { return X(), nil }

type tGate struct{}

func (tGate) Description() string { return "T" }
func (tGate) NrAffectedBits() int { return 1 }
func (tGate) Cost() float64       { return 1 }
func (tGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	s := 1 / cmatrix.Sqrt2
	m.Set(0, 0, cmatrix.One)
	m.Set(1, 1, complex(s, s))
	return m
}

// ApplySlice multiplies the lower half by exp(i*pi/4), grounded on
// original_source's gates/t.rs.
func (tGate) ApplySlice(state []complex128) {
	n := len(state) / 2
	s := 1 / cmatrix.Sqrt2
	phase := complex(s, s)
	for i := 0; i < n; i++ {
		state[n+i] *= phase
	}
}

// Conjugate: T is not Clifford, so it has no conjugation rule.
func (tGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	return false, qerr.NotAStabilizer("T")
}

type tdgGate struct{}

func (tdgGate) Description() string { return "T†" }
func (tdgGate) NrAffectedBits() int { return 1 }
func (tdgGate) Cost() float64       { return 1 }
func (tdgGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.NewMatrix(2, 2)
	s := 1 / cmatrix.Sqrt2
	m.Set(0, 0, cmatrix.One)
	m.Set(1, 1, complex(s, -s))
	return m
}
func (tdgGate) ApplySlice(state []complex128) {
	n := len(state) / 2
	s := 1 / cmatrix.Sqrt2
	phase := complex(s, -s)
	for i := 0; i < n; i++ {
		state[n+i] *= phase
	}
}
func (tdgGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 1)
	return false, qerr.NotAStabilizer("T†")
}

var (
	identity = identityGate{}
	pauliX   = pauliXGate{}
	pauliY   = pauliYGate{}
	pauliZ   = pauliZGate{}
	hadamard = hadamardGate{}
	sGateV   = sGate{}
	sdgGateV = sdgGate{}
	vGateV   = vGate{}
	vdgGateV = vdgGate{}
	tGateV   = tGate{}
	tdgGateV = tdgGate{}
)

// Public accessors return the shared immutable instance, reducing
// allocations the same way the teacher's builtin.go does.
func I() Gate   { return identity }
func X() Gate   { return pauliX }
func Y() Gate   { return pauliY }
func Z() Gate   { return pauliZ }
func H() Gate   { return hadamard }
func S() Gate   { return sGateV }
func Sdg() Gate { return sdgGateV }
func V() Gate   { return vGateV }
func Vdg() Gate { return vdgGateV }
func T() Gate   { return tGateV }
func Tdg() Gate { return tdgGateV }
