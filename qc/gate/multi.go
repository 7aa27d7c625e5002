package gate

import (
	"github.com/kegliz/qplay/qc/cmatrix"
	"github.com/kegliz/qplay/qc/qerr"
)

// ccxGate and cczGate are the doubly-controlled Toffoli and Z gates.
// Neither is Clifford (Toffoli is the canonical example of a gate that
// takes the stabilizer formalism outside its efficiently-simulable
// regime), so Conjugate always fails.

type ccxGate struct{}

func (ccxGate) Description() string { return "CCX" }
func (ccxGate) NrAffectedBits() int { return 3 }
func (ccxGate) Cost() float64       { return 5 }
func (ccxGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.Identity(8)
	m.Set(6, 6, 0)
	m.Set(7, 7, 0)
	m.Set(6, 7, cmatrix.One)
	m.Set(7, 6, cmatrix.One)
	return m
}

// ApplySlice swaps the two regions where both controls are 1 (target 0
// and target 1), leaving the other six-eighths of the slice untouched.
func (ccxGate) ApplySlice(state []complex128) {
	n := len(state) / 8
	for i := 0; i < n; i++ {
		state[6*n+i], state[7*n+i] = state[7*n+i], state[6*n+i]
	}
}
func (ccxGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 3)
	return false, qerr.NotAStabilizer("CCX")
}

type cczGate struct{}

func (cczGate) Description() string { return "CCZ" }
func (cczGate) NrAffectedBits() int { return 3 }
func (cczGate) Cost() float64       { return 5 }
func (cczGate) Matrix() *cmatrix.Matrix {
	m := cmatrix.Identity(8)
	m.Set(7, 7, -cmatrix.One)
	return m
}

// ApplySlice negates the single region where all three affected qubits
// are 1; CCZ is symmetric in its three inputs, unlike CCX.
func (cczGate) ApplySlice(state []complex128) {
	n := len(state) / 8
	for i := 0; i < n; i++ {
		state[7*n+i] = -state[7*n+i]
	}
}
func (cczGate) Conjugate(ops []PauliOp) (bool, error) {
	requireOps(ops, 3)
	return false, qerr.NotAStabilizer("CCZ")
}

var (
	ccx = ccxGate{}
	ccz = cczGate{}
)

// CCX and CCZ return the shared Toffoli / doubly-controlled-Z instances.
func CCX() Gate { return ccx }
func CCZ() Gate { return ccz }
