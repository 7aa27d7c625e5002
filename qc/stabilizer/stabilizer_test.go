package stabilizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qplay/qc/gate"
)

func TestNewIsAllZStabilizer(t *testing.T) {
	m := New(3)
	assert.Equal(t, "+ZII\n+IZI\n+IIZ", m.String())
}

func TestApplyXFlipsSign(t *testing.T) {
	m := New(1)
	require.NoError(t, m.ApplyGate(gate.X(), []int{0}))
	assert.Equal(t, "-Z", m.String())
}

func TestApplyHSwapsXAndZ(t *testing.T) {
	m := New(1)
	require.NoError(t, m.ApplyGate(gate.H(), []int{0}))
	assert.Equal(t, "+X", m.String())
}

// TestBellStateViaHCX reproduces the worked example from spec §8: H on
// qubit 0 then CX(0,1) on the |00> stabilizer +ZI/+IZ should produce the
// Bell-state stabilizers +XX/+ZZ.
func TestBellStateViaHCX(t *testing.T) {
	m := New(2)
	require.NoError(t, m.ApplyGate(gate.H(), []int{0}))
	require.NoError(t, m.ApplyGate(gate.CX(), []int{0, 1}))
	assert.Equal(t, "+XX\n+ZZ", m.String())
}

func TestApplyVPivotsRows(t *testing.T) {
	// V maps the +Z generator on qubit 1 to -Y; normalize then pivots
	// that row to the front since it is the first row with X/Y content,
	// matching stabilizer.rs's two-pass normalize structure.
	m := New(3)
	require.NoError(t, m.ApplyGate(gate.V(), []int{1}))
	assert.Equal(t, "-IYI\n+ZII\n+IIZ", m.String())
}

func TestApplyTFails(t *testing.T) {
	m := New(1)
	err := m.ApplyGate(gate.T(), []int{0})
	require.Error(t, err)
}
