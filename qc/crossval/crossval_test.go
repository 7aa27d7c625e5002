package crossval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kegliz/qplay/qc/testutil"
)

func TestCompareAgreesOnBellState(t *testing.T) {
	require.NoError(t, Compare(testutil.NewBellStateCircuit(t), 512, 0.2))
}

func TestRunItsuOnlyProducesAgreeingOutcomes(t *testing.T) {
	hist, err := RunItsu(testutil.NewBellStateCircuit(t), 256)
	require.NoError(t, err)
	for outcome := range hist {
		require.Len(t, outcome, 2)
		require.True(t, outcome == "00" || outcome == "11", "Bell outcomes must agree: got %q", outcome)
	}
}
