package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFluentBuildAndExecute(t *testing.T) {
	c := New(Q(2), C(2)).
		H(0).
		CNOT(0, 1).
		MeasureAll([]int{0, 1}).
		Build()

	require.NoError(t, c.Execute(512))
	creg, err := c.Cstate()
	require.NoError(t, err)
	for _, row := range creg {
		assert.Equal(t, row[0], row[1])
	}
}

func TestResetChain(t *testing.T) {
	c := New(Q(1), C(1)).
		X(0).
		Reset(0).
		Measure(0, 0).
		Build()

	require.NoError(t, c.Execute(4))
	creg, err := c.Cstate()
	require.NoError(t, err)
	for _, row := range creg {
		assert.False(t, row[0])
	}
}
