package png

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/qustate"
)

func TestRenderProducesImageSizedToOpsAndQubits(t *testing.T) {
	c := circuit.New(2, 2)
	c.AddGate(gate.H(), 0)
	c.AddGate(gate.CX(), 0, 1)
	c.AddMeasureAll([]int{0, 1}, qustate.BasisZ)

	r := New(40)
	img, err := r.Render(c)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 3*40, b.Dx())
	assert.Equal(t, 2*40, b.Dy())
}

func TestRenderHandlesEmptyCircuit(t *testing.T) {
	c := circuit.New(1, 1)
	r := New(40)
	img, err := r.Render(c)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}
