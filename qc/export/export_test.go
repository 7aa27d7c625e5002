package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/qustate"
	"github.com/kegliz/qplay/qc/testutil"

	"github.com/kegliz/qplay/qc/circuit"
)

func TestOpenQASMRendersBellCircuit(t *testing.T) {
	out, err := OpenQASM(testutil.NewBellStateCircuit(t))
	require.NoError(t, err)
	assert.Contains(t, out, "qreg q[2];")
	assert.Contains(t, out, "creg b[2];")
	assert.Contains(t, out, "h q[0];")
	assert.Contains(t, out, "cx q[0],q[1];")
	assert.Contains(t, out, "measure q[0] -> b[0];")
}

func TestOpenQASMRejectsPeek(t *testing.T) {
	c := circuit.New(1, 1)
	c.AddPeekAll([]int{0})
	_, err := OpenQASM(c)
	require.Error(t, err)
}

func TestOpenQASMConditionalRequiresFullPermutation(t *testing.T) {
	c := circuit.New(2, 2)
	c.AddConditionalGate(gate.X(), []int{1}, []int{0}, 1)
	_, err := OpenQASM(c)
	require.Error(t, err, "control list [0] is not a permutation of [0,2)")

	full := circuit.New(2, 2)
	full.AddConditionalGate(gate.X(), []int{1}, []int{1, 0}, 0b10)
	out, err := OpenQASM(full)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "if ("))
}

func TestCQASMRendersBellCircuit(t *testing.T) {
	out, err := CQASM(testutil.NewBellStateCircuit(t))
	require.NoError(t, err)
	assert.Contains(t, out, "qubits 2")
	assert.Contains(t, out, "h q[0]")
	assert.Contains(t, out, "cx q[0],q[1]")
	assert.Contains(t, out, "measure q[0]")
}

func TestCQASMRejectsMismatchedMeasure(t *testing.T) {
	c := circuit.New(2, 2)
	c.AddMeasure(0, 1, qustate.BasisZ)
	_, err := CQASM(c)
	require.Error(t, err)
}

func TestLaTeXRendersQcircuitTabular(t *testing.T) {
	out := LaTeX(testutil.NewBellStateCircuit(t))
	assert.True(t, strings.HasPrefix(out, "\\Qcircuit"))
	assert.Contains(t, out, "\\ctrl{")
	assert.Contains(t, out, "\\meter")
}
