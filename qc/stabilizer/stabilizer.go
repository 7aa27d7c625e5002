// Package stabilizer implements the Clifford tableau engine (spec §4.5):
// a StabilizerMatrix tracks nrBits stabilizer generators of an nrBits-
// qubit state as a packed array of Pauli operators plus sign bits, and
// supports applying Clifford gates by conjugation. Grounded throughout
// on original_source/src/stabilizer.rs.
package stabilizer

import (
	"strings"

	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/qerr"
)

// StabilizerMatrix holds nrBits generators over nrBits qubits. Row i's
// Pauli operator on qubit j is packed as 2 bits in xz; row i's sign is a
// single bit in phase. The matrix starts, and is always kept, in an
// independent-generator (not necessarily sorted/reduced) form; callers
// needing canonical form call Normalize.
type StabilizerMatrix struct {
	nrBits int
	xz     []uint64 // packed, 2 bits per (row, col), row-major over a 64-bit word stream
	phase  []uint64 // packed, 1 bit per row
}

const bitsPerOp = 2

// New returns the stabilizer tableau of the all-|0> state: generator i
// is +Z on qubit i and +I elsewhere, matching stabilizer.rs::new.
func New(nrBits int) *StabilizerMatrix {
	if nrBits <= 0 {
		panic("stabilizer: nrBits must be positive")
	}
	m := &StabilizerMatrix{
		nrBits: nrBits,
		xz:     make([]uint64, wordsFor(nrBits*nrBits*bitsPerOp)),
		phase:  make([]uint64, wordsFor(nrBits)),
	}
	for i := 0; i < nrBits; i++ {
		m.set(i, i, gate.PauliZ)
	}
	return m
}

func wordsFor(bits int) int { return (bits + 63) / 64 }

// bitIndex returns the (word, shift) location of the 2-bit op at
// (row, col).
func (m *StabilizerMatrix) bitIndex(row, col int) (int, uint) {
	bit := (row*m.nrBits + col) * bitsPerOp
	return bit / 64, uint(bit % 64)
}

func (m *StabilizerMatrix) get(row, col int) gate.PauliOp {
	w, s := m.bitIndex(row, col)
	return gate.PauliFromBits(uint8((m.xz[w] >> s) & 0x3))
}

func (m *StabilizerMatrix) set(row, col int, op gate.PauliOp) {
	w, s := m.bitIndex(row, col)
	m.xz[w] &^= 0x3 << s
	m.xz[w] |= uint64(op.Bits()) << s
}

func (m *StabilizerMatrix) getPhase(row int) bool {
	return (m.phase[row/64]>>uint(row%64))&1 != 0
}

func (m *StabilizerMatrix) setPhase(row int, neg bool) {
	w, s := row/64, uint(row%64)
	if neg {
		m.phase[w] |= 1 << s
	} else {
		m.phase[w] &^= 1 << s
	}
}

func (m *StabilizerMatrix) xorPhase(row int, neg bool) {
	if neg {
		m.phase[row/64] ^= 1 << uint(row%64)
	}
}

// NrBits returns the number of qubits (and generators) tracked.
func (m *StabilizerMatrix) NrBits() int { return m.nrBits }

// Generator returns a copy of row i's Pauli operators (length NrBits)
// and its sign (true = negative).
func (m *StabilizerMatrix) Generator(i int) ([]gate.PauliOp, bool) {
	ops := make([]gate.PauliOp, m.nrBits)
	for j := range ops {
		ops[j] = m.get(i, j)
	}
	return ops, m.getPhase(i)
}

// swapRows exchanges two entire generator rows, including sign.
func (m *StabilizerMatrix) swapRows(i0, i1 int) {
	if i0 == i1 {
		return
	}
	for j := 0; j < m.nrBits; j++ {
		a, b := m.get(i0, j), m.get(i1, j)
		m.set(i0, j, b)
		m.set(i1, j, a)
	}
	p0, p1 := m.getPhase(i0), m.getPhase(i1)
	m.setPhase(i0, p1)
	m.setPhase(i1, p0)
}

// multiplyRow overwrites row i0 with the product generator i0 * i1
// (pointwise Pauli multiplication per qubit, phases combined). The
// accumulated power of i across all qubits plus the two input signs
// must reduce to a real sign, since stabilizer generators always
// pairwise commute; a non-real result indicates a tableau that was
// never a valid stabilizer state, and is a programmer error.
func (m *StabilizerMatrix) multiplyRow(i0, i1 int) {
	var pow uint8
	for j := 0; j < m.nrBits; j++ {
		res, p := gate.MulPauli(m.get(i0, j), m.get(i1, j))
		pow = (pow + p) % 4
		m.set(i0, j, res)
	}
	if pow != 0 && pow != 2 {
		panic("stabilizer: row product has non-real global phase; rows do not commute")
	}
	neg := pow == 2
	sign := m.getPhase(i0) != m.getPhase(i1)
	if neg {
		sign = !sign
	}
	m.setPhase(i0, sign)
}

// normalize reduces the tableau to a canonical echelon-like form: for
// each row in turn, it pivots on the X-content of the remaining rows
// (row-reducing all other rows' X/Y component out), then on the
// Z-content, matching stabilizer.rs::normalize's two-pass structure.
func (m *StabilizerMatrix) normalize() {
	n := m.nrBits
	row := 0
	// Pass 1: pivot on X-content (ops with bit pattern X or Y, i.e. the
	// "has an X part" bit set — the high bit, value 2, of the 2-bit
	// PauliOp encoding).
	for col := 0; col < n && row < n; col++ {
		pivot := -1
		for r := row; r < n; r++ {
			op := m.get(r, col)
			if op == gate.PauliX || op == gate.PauliY {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m.swapRows(row, pivot)
		for r := 0; r < n; r++ {
			if r == row {
				continue
			}
			op := m.get(r, col)
			if op == gate.PauliX || op == gate.PauliY {
				m.multiplyRow(r, row)
			}
		}
		row++
	}
	// Pass 2: pivot on Z-content among the remaining rows.
	for col := 0; col < n && row < n; col++ {
		pivot := -1
		for r := row; r < n; r++ {
			op := m.get(r, col)
			if op == gate.PauliZ || op == gate.PauliY {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m.swapRows(row, pivot)
		for r := 0; r < n; r++ {
			if r == row {
				continue
			}
			op := m.get(r, col)
			if op == gate.PauliZ || op == gate.PauliY {
				m.multiplyRow(r, row)
			}
		}
		row++
	}
}

// Normalize exposes normalize for callers that want a canonical
// tableau, e.g. before comparing two tableaus for equality.
func (m *StabilizerMatrix) Normalize() { m.normalize() }

// ApplyGate conjugates every generator row by g, applied to the given
// qubit indices (bits), then re-normalizes. Returns qerr.ErrNotAStabilizer
// if g has no Clifford conjugation rule.
func (m *StabilizerMatrix) ApplyGate(g gate.Gate, bits []int) error {
	if len(bits) != g.NrAffectedBits() {
		return qerr.InvalidBitCount(g.Description(), g.NrAffectedBits(), len(bits))
	}
	ops := make([]gate.PauliOp, len(bits))
	for row := 0; row < m.nrBits; row++ {
		for k, b := range bits {
			ops[k] = m.get(row, b)
		}
		flip, err := g.Conjugate(ops)
		if err != nil {
			return err
		}
		for k, b := range bits {
			m.set(row, b, ops[k])
		}
		m.xorPhase(row, flip)
	}
	m.normalize()
	return nil
}

// String renders the tableau in the sign + IZXY grid format from
// stabilizer.rs's Display impl: one line per generator, '+' or '-'
// followed by one letter per qubit.
func (m *StabilizerMatrix) String() string {
	var b strings.Builder
	for i := 0; i < m.nrBits; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if m.getPhase(i) {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		for j := 0; j < m.nrBits; j++ {
			b.WriteString(m.get(i, j).String())
		}
	}
	return b.String()
}
