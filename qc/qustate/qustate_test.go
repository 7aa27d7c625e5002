package qustate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qplay/qc/gate"
)

func TestXFlipsDeterministically(t *testing.T) {
	q := New(2, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, q.ApplyGate(gate.X(), []int{0}))
	require.NoError(t, q.ApplyGate(gate.X(), []int{1}))
	require.NoError(t, q.ApplyGate(gate.CX(), []int{0, 1}))

	creg := make([][]bool, 4)
	for i := range creg {
		creg[i] = make([]bool, 2)
	}
	q.MeasureAllInto([]int{0, 1}, creg, BasisZ)
	for _, row := range creg {
		// X on qubit0 -> |1>, X on qubit1 -> |1>, CX(0,1) flips qubit1
		// back to |0>: final state |10>.
		assert.Equal(t, []bool{true, false}, row)
	}
}

func TestBellStateStatistics(t *testing.T) {
	const shots = 4096
	q := New(2, shots, rand.New(rand.NewSource(7)))
	require.NoError(t, q.ApplyGate(gate.H(), []int{0}))
	require.NoError(t, q.ApplyGate(gate.CX(), []int{0, 1}))

	creg := make([][]bool, shots)
	for i := range creg {
		creg[i] = make([]bool, 2)
	}
	q.MeasureAllInto([]int{0, 1}, creg, BasisZ)

	var agree, disagree int
	for _, row := range creg {
		if row[0] == row[1] {
			agree++
		} else {
			disagree++
		}
	}
	assert.Equal(t, shots, agree, "Bell state measurements must always agree")
	assert.Zero(t, disagree)
}

func TestResetForcesZero(t *testing.T) {
	q := New(1, 8, rand.New(rand.NewSource(3)))
	require.NoError(t, q.ApplyGate(gate.X(), []int{0}))
	q.Reset(0)

	creg := make([][]bool, 8)
	for i := range creg {
		creg[i] = make([]bool, 1)
	}
	q.MeasureAllInto([]int{0}, creg, BasisZ)
	for _, row := range creg {
		assert.False(t, row[0])
	}
}

func TestPeekDoesNotCollapse(t *testing.T) {
	const shots = 2048
	q := New(1, shots, rand.New(rand.NewSource(11)))
	require.NoError(t, q.ApplyGate(gate.H(), []int{0}))

	peeked := make([][]bool, shots)
	for i := range peeked {
		peeked[i] = make([]bool, 1)
	}
	q.PeekAllInto([]int{0}, peeked)

	measured := make([][]bool, shots)
	for i := range measured {
		measured[i] = make([]bool, 1)
	}
	q.MeasureAllInto([]int{0}, measured, BasisZ)

	var ones int
	for _, row := range measured {
		if row[0] {
			ones++
		}
	}
	// After the peek the state must still be the uncollapsed H|0>
	// superposition, so a subsequent real measurement is still ~50/50.
	assert.InDelta(t, shots/2, ones, float64(shots)*0.1)
}

// TestMeasureXBasisOfPlusStateIsDeterministic measures H|0> (the |+>
// state) in the X basis, which should always yield 0.
func TestMeasureXBasisOfPlusStateIsDeterministic(t *testing.T) {
	const shots = 256
	q := New(1, shots, rand.New(rand.NewSource(5)))
	require.NoError(t, q.ApplyGate(gate.H(), []int{0}))

	creg := make([][]bool, shots)
	for i := range creg {
		creg[i] = make([]bool, 1)
	}
	q.MeasureInto(0, 0, creg, BasisX)
	for _, row := range creg {
		assert.False(t, row[0])
	}
}
