package gate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qplay/qc/cmatrix"
	"github.com/kegliz/qplay/qc/qerr"
)

func TestBuiltinGateShapes(t *testing.T) {
	tests := []struct {
		name string
		gate Gate
		bits int
	}{
		{"I", I(), 1},
		{"X", X(), 1},
		{"Y", Y(), 1},
		{"Z", Z(), 1},
		{"H", H(), 1},
		{"S", S(), 1},
		{"Sdg", Sdg(), 1},
		{"T", T(), 1},
		{"Tdg", Tdg(), 1},
		{"V", V(), 1},
		{"Vdg", Vdg(), 1},
		{"CX", CX(), 2},
		{"CY", CY(), 2},
		{"CZ", CZ(), 2},
		{"CH", CH(), 2},
		{"CCX", CCX(), 3},
		{"CCZ", CCZ(), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bits, tt.gate.NrAffectedBits())
			m := tt.gate.Matrix()
			dim := 1 << uint(tt.bits)
			assert.Equal(t, dim, m.Rows)
			assert.Equal(t, dim, m.Cols)
		})
	}
}

// applySliceMatchesMatrix cross-checks a gate's fast ApplySlice path
// against multiplication by its own dense matrix, on a slice exactly the
// size of the gate's own basis (spec §8 testable property).
func applySliceMatchesMatrix(t *testing.T, g Gate, input []complex128) {
	t.Helper()
	dim := 1 << uint(g.NrAffectedBits())
	require.Len(t, input, dim)

	viaSlice := append([]complex128(nil), input...)
	g.ApplySlice(viaSlice)

	m := g.Matrix()
	want := make([]complex128, dim)
	for i := 0; i < dim; i++ {
		var sum complex128
		for j := 0; j < dim; j++ {
			sum += m.At(i, j) * input[j]
		}
		want[i] = sum
	}
	assert.True(t, cmatrix.VecEqualTol(want, viaSlice, 1e-9), "ApplySlice result %v != matrix result %v", viaSlice, want)
}

func TestApplySliceMatchesMatrix(t *testing.T) {
	input1 := []complex128{complex(0.6, 0.1), complex(0.3, -0.4)}
	for _, g := range []Gate{I(), X(), Y(), Z(), H(), S(), Sdg(), T(), Tdg(), V(), Vdg(), Rx(0.7), Ry(1.1), Rz(0.3), U1(0.9), U2(0.2, 0.5), U3(0.3, 0.4, 0.5)} {
		t.Run(g.Description(), func(t *testing.T) {
			applySliceMatchesMatrix(t, g, input1)
		})
	}

	input2 := make([]complex128, 4)
	for i := range input2 {
		input2[i] = complex(float64(i+1)*0.2, float64(3-i)*0.1)
	}
	for _, g := range []Gate{CX(), CY(), CZ(), CH()} {
		t.Run(g.Description(), func(t *testing.T) {
			applySliceMatchesMatrix(t, g, input2)
		})
	}

	input3 := make([]complex128, 8)
	for i := range input3 {
		input3[i] = complex(float64(i+1)*0.1, 0)
	}
	for _, g := range []Gate{CCX(), CCZ()} {
		t.Run(g.Description(), func(t *testing.T) {
			applySliceMatchesMatrix(t, g, input3)
		})
	}
}

func TestCliffordConjugation(t *testing.T) {
	tests := []struct {
		gate     Gate
		in       PauliOp
		wantOp   PauliOp
		wantFlip bool
	}{
		{X(), PauliI, PauliI, false},
		{X(), PauliX, PauliX, false},
		{X(), PauliY, PauliY, true},
		{X(), PauliZ, PauliZ, true},
		{H(), PauliX, PauliZ, false},
		{H(), PauliZ, PauliX, false},
		{H(), PauliY, PauliY, true},
		{S(), PauliX, PauliY, false},
		{S(), PauliY, PauliX, true},
		{S(), PauliZ, PauliZ, false},
		{V(), PauliX, PauliX, false},
		{V(), PauliY, PauliZ, false},
		{V(), PauliZ, PauliY, true},
	}
	for _, tt := range tests {
		t.Run(tt.gate.Description()+"/"+tt.in.String(), func(t *testing.T) {
			ops := []PauliOp{tt.in}
			flip, err := tt.gate.Conjugate(ops)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, ops[0])
			assert.Equal(t, tt.wantFlip, flip)
		})
	}
}

func TestNonCliffordConjugateFails(t *testing.T) {
	for _, g := range []Gate{T(), Tdg(), Rx(math.Pi / 4), Ry(0.1), Rz(0.1), U1(0.1), U2(0.1, 0.2), U3(0.1, 0.2, 0.3), CH(), CCX(), CCZ()} {
		t.Run(g.Description(), func(t *testing.T) {
			ops := make([]PauliOp, g.NrAffectedBits())
			for i := range ops {
				ops[i] = PauliX
			}
			_, err := g.Conjugate(ops)
			require.Error(t, err)
			assert.ErrorIs(t, err, qerr.ErrNotAStabilizer)
		})
	}
}

func TestControlledPauliConjugation(t *testing.T) {
	// XY -> YZ, flip false (spec §4.5 worked example / CNOT propagation).
	ops := []PauliOp{PauliX, PauliY}
	flip, err := CX().Conjugate(ops)
	require.NoError(t, err)
	assert.Equal(t, []PauliOp{PauliY, PauliZ}, ops)
	assert.False(t, flip)

	// XI -> XX for CX.
	ops = []PauliOp{PauliX, PauliI}
	flip, err = CX().Conjugate(ops)
	require.NoError(t, err)
	assert.Equal(t, []PauliOp{PauliX, PauliX}, ops)
	assert.False(t, flip)

	// IZ -> ZZ for CX.
	ops = []PauliOp{PauliI, PauliZ}
	flip, err = CX().Conjugate(ops)
	require.NoError(t, err)
	assert.Equal(t, []PauliOp{PauliZ, PauliZ}, ops)
	assert.False(t, flip)
}

func TestKronConjugate(t *testing.T) {
	k := NewKron(H(), X())
	ops := []PauliOp{PauliX, PauliZ}
	flip, err := k.Conjugate(ops)
	require.NoError(t, err)
	// H: X -> Z (no flip); X: Z -> Z (flip true).
	assert.Equal(t, []PauliOp{PauliZ, PauliZ}, ops)
	assert.True(t, flip)
}

func TestKronFailsWhenChildFails(t *testing.T) {
	k := NewKron(H(), T())
	ops := []PauliOp{PauliX, PauliX}
	_, err := k.Conjugate(ops)
	require.Error(t, err)
	assert.ErrorIs(t, err, qerr.ErrNotAStabilizer)
}

func TestFactory(t *testing.T) {
	g, err := Factory("cx")
	require.NoError(t, err)
	assert.Equal(t, "C-X", g.Description())

	_, err = Factory("not-a-gate")
	require.Error(t, err)
	var unk ErrUnknownGate
	require.ErrorAs(t, err, &unk)
}

func TestSquare(t *testing.T) {
	xsq, ok := X().(Squarer)
	require.True(t, ok)
	sq, err := xsq.Square()
	require.NoError(t, err)
	assert.Equal(t, "I", sq.Description())

	_, ok = T().(Squarer)
	assert.False(t, ok, "T has no closed-form square")
}
