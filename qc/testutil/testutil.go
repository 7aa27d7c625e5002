// Package testutil provides shared fixtures for qc package tests.
package testutil

import (
	"testing"

	"github.com/kegliz/qplay/qc/builder"
	"github.com/kegliz/qplay/qc/circuit"
)

// NewBellStateCircuit creates a standard Bell state circuit for testing.
func NewBellStateCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()

	b := builder.New(builder.Q(2), builder.C(2))
	b.H(0).CNOT(0, 1).Measure(0, 0).Measure(1, 1)
	return b.Build()
}
