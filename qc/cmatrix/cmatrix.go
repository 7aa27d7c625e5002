// Package cmatrix provides the small complex-linear-algebra kernels the
// dense and stabilizer engines are built on: Kronecker products over flat
// slices, and tolerance-based equality used throughout the test suite.
package cmatrix

import "math/cmplx"

// Tolerance is the default per-element tolerance used when comparing
// dense matrices and vectors in tests.
const Tolerance = 1e-15

// Fixed scalar constants used by the gate catalogue.
var (
	Zero    = complex(0, 0)
	One     = complex(1, 0)
	I       = complex(0, 1)
	HalfSqrt2 = complex(1/Sqrt2, 0)
)

// Sqrt2 avoids importing math just for one constant in callers.
const Sqrt2 = 1.4142135623730951

// KronVec computes the Kronecker product v0 ⊗ v1: a vector of length
// len(v0)*len(v1) with r[i*len(v1)+j] = v0[i]*v1[j].
func KronVec(v0, v1 []complex128) []complex128 {
	n0, n1 := len(v0), len(v1)
	res := make([]complex128, n0*n1)
	for i, x := range v0 {
		base := i * n1
		for j, y := range v1 {
			res[base+j] = x * y
		}
	}
	return res
}

// Matrix is a dense row-major complex matrix.
type Matrix struct {
	Rows, Cols int
	Data       []complex128 // row-major: Data[i*Cols+j]
}

// NewMatrix allocates a zeroed r x c matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{Rows: r, Cols: c, Data: make([]complex128, r*c)}
}

// At returns the element at (i, j).
func (m *Matrix) At(i, j int) complex128 { return m.Data[i*m.Cols+j] }

// Set assigns the element at (i, j).
func (m *Matrix) Set(i, j int, v complex128) { m.Data[i*m.Cols+j] = v }

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, One)
	}
	return m
}

// KronMat computes the Kronecker product a ⊗ b: a block matrix of shape
// (a.Rows*b.Rows, a.Cols*b.Cols) with block (i,j) = a[i,j] * b.
func KronMat(a, b *Matrix) *Matrix {
	res := NewMatrix(a.Rows*b.Rows, a.Cols*b.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for bi := 0; bi < b.Rows; bi++ {
				for bj := 0; bj < b.Cols; bj++ {
					res.Set(i*b.Rows+bi, j*b.Cols+bj, aij*b.At(bi, bj))
				}
			}
		}
	}
	return res
}

// EqualTol reports whether two matrices are element-wise equal within
// the given per-element tolerance.
func EqualTol(a, b *Matrix, tol float64) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.Data {
		if cmplx.Abs(a.Data[i]-b.Data[i]) > tol {
			return false
		}
	}
	return true
}

// EqualUpToPhase reports whether a equals b up to a single global complex
// phase factor of unit modulus. Used when comparing gates whose matrices
// are defined up to a global phase (e.g. Rz vs U1, per spec open question).
func EqualUpToPhase(a, b *Matrix, tol float64) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	var phase complex128
	found := false
	for i := range a.Data {
		if cmplx.Abs(b.Data[i]) > tol {
			phase = a.Data[i] / b.Data[i]
			found = true
			break
		}
	}
	if !found {
		// Both (numerically) all-zero.
		return EqualTol(a, b, tol)
	}
	if cmplx.Abs(complex(cmplx.Abs(phase)-1, 0)) > 1e-9 {
		return false
	}
	for i := range a.Data {
		if cmplx.Abs(a.Data[i]-phase*b.Data[i]) > tol {
			return false
		}
	}
	return true
}

// VecEqualTol reports element-wise equality of two complex vectors within
// tol.
func VecEqualTol(a, b []complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmplx.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// Norm2 returns the squared 2-norm of a complex vector.
func Norm2(v []complex128) float64 {
	var s float64
	for _, x := range v {
		s += real(x)*real(x) + imag(x)*imag(x)
	}
	return s
}
