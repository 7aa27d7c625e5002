package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/qerr"
	"github.com/kegliz/qplay/qc/qustate"
)

// TestExecuteDeterministic mirrors circuit.rs's test_execute: X, X, CX then
// measure both qubits should produce the same deterministic outcome on
// every shot.
func TestExecuteDeterministic(t *testing.T) {
	c := New(2, 2)
	c.AddGate(gate.X(), 0)
	c.AddGate(gate.X(), 1)
	c.AddGate(gate.CX(), 0, 1)
	c.AddMeasureAll([]int{0, 1}, qustate.BasisZ)

	require.NoError(t, c.Execute(16))
	creg, err := c.Cstate()
	require.NoError(t, err)
	for _, row := range creg {
		assert.Equal(t, []bool{true, false}, row)
	}
}

// TestHistogram mirrors circuit.rs's test_histogram: H on both qubits
// over many shots should produce all four two-bit outcomes roughly
// evenly.
func TestHistogram(t *testing.T) {
	const shots = 4096
	c := New(2, 2)
	c.AddGate(gate.H(), 0)
	c.AddGate(gate.H(), 1)
	c.AddMeasureAll([]int{0, 1}, qustate.BasisZ)

	require.NoError(t, c.Execute(shots))
	h, err := c.Histogram()
	require.NoError(t, err)
	assert.Len(t, h, 4, "all four two-bit outcomes should appear")
	total := 0
	for _, n := range h {
		total += n
		assert.InDelta(t, shots/4, n, float64(shots)*0.15)
	}
	assert.Equal(t, shots, total)
}

func TestHistogramStringKeysMatchBitOrder(t *testing.T) {
	c := New(2, 2)
	c.AddGate(gate.X(), 0)
	c.AddMeasureAll([]int{0, 1}, qustate.BasisZ)
	require.NoError(t, c.Execute(4))

	hs, err := c.HistogramString()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"10": 4}, hs)
}

func TestHistogramVecDenseBuckets(t *testing.T) {
	c := New(1, 1)
	c.AddGate(gate.X(), 0)
	c.AddMeasure(0, 0, qustate.BasisZ)
	require.NoError(t, c.Execute(3))

	vec, err := c.HistogramVec()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, vec)
}

func TestReexecuteWithoutExecuteFails(t *testing.T) {
	c := New(1, 1)
	c.AddMeasure(0, 0, qustate.BasisZ)
	err := c.Reexecute()
	require.ErrorIs(t, err, qerr.ErrNotExecuted)
}

func TestReexecuteRerunsSameShotCount(t *testing.T) {
	c := New(1, 1)
	c.AddGate(gate.X(), 0)
	c.AddMeasure(0, 0, qustate.BasisZ)
	require.NoError(t, c.Execute(5))
	require.NoError(t, c.Reexecute())
	creg, err := c.Cstate()
	require.NoError(t, err)
	assert.Len(t, creg, 5)
}

// TestReexecuteReplaysOntoExistingState pins down the distinction a
// reallocating Reexecute would hide: X;Measure leaves the qubit collapsed
// at |1>, so replaying X;Measure again must flip it back to |0> and
// record false, not rebuild from |0...0> and record true a second time.
func TestReexecuteReplaysOntoExistingState(t *testing.T) {
	c := New(1, 1)
	c.AddGate(gate.X(), 0)
	c.AddMeasure(0, 0, qustate.BasisZ)

	require.NoError(t, c.Execute(5))
	creg, err := c.Cstate()
	require.NoError(t, err)
	for _, row := range creg {
		assert.True(t, row[0], "first execute should collapse to |1>")
	}

	require.NoError(t, c.Reexecute())
	creg, err = c.Cstate()
	require.NoError(t, err)
	for _, row := range creg {
		assert.False(t, row[0], "reexecute replays X onto the already-collapsed |1> state, landing back on |0>")
	}
}

func TestConditionalGateAppliesOnlyWhenConditionMet(t *testing.T) {
	c := New(2, 2)
	c.AddGate(gate.X(), 0)
	c.AddMeasure(0, 0, qustate.BasisZ)
	c.AddConditionalGate(gate.X(), []int{1}, []int{0}, 1)
	c.AddMeasure(1, 1, qustate.BasisZ)

	require.NoError(t, c.Execute(8))
	creg, err := c.Cstate()
	require.NoError(t, err)
	for _, row := range creg {
		assert.True(t, row[0])
		assert.True(t, row[1], "qubit 1 should be flipped since cbit0 was true")
	}
}

// TestConditionalMatchesWordAssembly reproduces spec scenario 4's
// mask logic directly: control=[0,1], target=1 means bit0 of the
// reconstructed word is cbit0 and bit1 is cbit1 (first control entry
// is least-significant), so only the 0b01 row matches.
func TestConditionalMatchesWordAssembly(t *testing.T) {
	control := []int{0, 1}
	rows := [][]bool{
		{true, false},  // 0b01 -> word 1 -> match
		{false, true},  // 0b10 -> word 2 -> no match
		{true, true},   // 0b11 -> word 3 -> no match
		{false, false}, // 0b00 -> word 0 -> no match
	}
	want := []bool{true, false, false, false}
	for i, row := range rows {
		assert.Equal(t, want[i], conditionalMatches(row, control, 1), "row %d", i)
	}
}

func TestConditionalMatchesEmptyControlAlwaysMatches(t *testing.T) {
	assert.True(t, conditionalMatches([]bool{false, false}, nil, 0))
}

func TestResetAllZeroesClassicalOutcome(t *testing.T) {
	c := New(1, 1)
	c.AddGate(gate.X(), 0)
	c.AddResetAll()
	c.AddMeasure(0, 0, qustate.BasisZ)

	require.NoError(t, c.Execute(8))
	creg, err := c.Cstate()
	require.NoError(t, err)
	for _, row := range creg {
		assert.False(t, row[0])
	}
}
