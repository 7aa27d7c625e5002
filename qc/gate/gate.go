// Package gate defines the Gate interface, the PauliOp algebra used by
// the stabilizer engine, and the builtin single- and multi-qubit gate
// catalogue (spec §4.1-§4.3).
package gate

import (
	"strings"

	"github.com/kegliz/qplay/qc/cmatrix"
	"github.com/kegliz/qplay/qc/permutation"
)

// Gate is a unitary operator acting on a fixed number of qubits. All
// builtin gates and the two composite wrappers (Kron, Controlled)
// implement it.
type Gate interface {
	// Description is a short human-readable name, e.g. "H" or "C-X".
	Description() string
	// NrAffectedBits is the number of qubits this gate acts on.
	NrAffectedBits() int
	// Cost is a relative cost estimate; builtin single-qubit gates cost 1
	// (the identity costs 0), Kron sums its children and Controlled adds 1
	// to its inner gate's cost.
	Cost() float64
	// Matrix returns the 2^k x 2^k unitary matrix of this gate, built
	// fresh on every call.
	Matrix() *cmatrix.Matrix
	// ApplySlice applies this gate in place to a state slice whose
	// length is a multiple of 2^NrAffectedBits(), treating the slice as
	// 2^NrAffectedBits() contiguous blocks of equal length, block b
	// holding the amplitudes whose affected qubits (the high-order bits)
	// are in basis state b. Callers are responsible for permuting the full
	// state so the affected qubits occupy those high-order bits first
	// (qc/permutation does this).
	ApplySlice(state []complex128)
	// Conjugate computes G·P·G† for the tensor-product Pauli operator
	// given by ops (one PauliOp per affected qubit, in the same order as
	// the gate's bits), rewriting ops in place with the result and
	// returning whether the sign flipped. It returns qerr.ErrNotAStabilizer
	// if this gate has no Clifford conjugation rule.
	Conjugate(ops []PauliOp) (flip bool, err error)
}

// Squarer is implemented by gates with a closed-form square (the
// supplemented "square()" arithmetic grounded on original_source's
// gates/kron.rs Square trait).
type Squarer interface {
	Square() (Gate, error)
}

// Factory returns an immutable gate by common name aliases. Parametrized
// gates (Rx, Ry, Rz, U1, U2, U3) are not constructible through Factory
// since they require arguments; use their constructors directly.
func Factory(name string) (Gate, error) {
	switch norm(name) {
	case "i", "id", "identity":
		return I(), nil
	case "x":
		return X(), nil
	case "y":
		return Y(), nil
	case "z":
		return Z(), nil
	case "h":
		return H(), nil
	case "s":
		return S(), nil
	case "sdg", "sdag":
		return Sdg(), nil
	case "t":
		return T(), nil
	case "tdg", "tdag":
		return Tdg(), nil
	case "v", "sx", "sqrtx":
		return V(), nil
	case "vdg", "vdag", "sxdg":
		return Vdg(), nil
	case "cx", "cnot":
		return CX(), nil
	case "cy":
		return CY(), nil
	case "cz":
		return CZ(), nil
	case "ch":
		return CH(), nil
	case "ccx", "toffoli", "ccnot":
		return CCX(), nil
	case "ccz":
		return CCZ(), nil
	}
	return nil, ErrUnknownGate{name}
}

// ErrUnknownGate is returned by Factory when the label isn't recognised.
type ErrUnknownGate struct{ Name string }

func (e ErrUnknownGate) Error() string { return "gate: unknown gate " + e.Name }

// ExpandedMatrix builds the dense nrBits-qubit matrix equivalent to
// applying g to the given bits of an nrBits-qubit register, by
// Kronecker-expanding g's own matrix with identities and permuting basis
// states into place. This is the slow reference construction from
// original_source's gates/mod.rs::expanded_matrix, a matrix-building
// counterpart to the fast apply_slice + bit-permutation path (spec §8).
func ExpandedMatrix(g Gate, bits []int, nrBits int) *cmatrix.Matrix {
	k := g.NrAffectedBits()
	rest := nrBits - k
	expanded := cmatrix.KronMat(g.Matrix(), cmatrix.Identity(1<<uint(rest)))

	// expanded acts in the permuted layout, where natural index i sits at
	// slot perm.At(i); read each natural-basis element from there.
	perm := permutation.New(nrBits, bits)
	n := 1 << uint(nrBits)
	res := cmatrix.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.Set(i, j, expanded.At(perm.At(i), perm.At(j)))
		}
	}
	return res
}

// applyViaMatrix is the generic fallback ApplySlice for gates with no
// faster bitwise implementation: it multiplies each contiguous block of
// 2^k amplitudes by the gate's dense matrix.
func applyViaMatrix(m *cmatrix.Matrix, state []complex128) {
	k := m.Rows
	n := len(state) / k
	buf := make([]complex128, k)
	for blk := 0; blk < n; blk++ {
		for i := 0; i < k; i++ {
			var sum complex128
			for j := 0; j < k; j++ {
				sum += m.At(i, j) * state[j*n+blk]
			}
			buf[i] = sum
		}
		for i := 0; i < k; i++ {
			state[i*n+blk] = buf[i]
		}
	}
}

// requireOps panics if ops does not have exactly want entries: a gate
// wired to the wrong number of qubits is a circuit-construction bug that
// is caught earlier, before Conjugate is ever called on mismatched ops.
func requireOps(ops []PauliOp, want int) {
	if len(ops) != want {
		panic("gate: wrong number of pauli operands")
	}
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
