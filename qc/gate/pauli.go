package gate

// PauliOp is one of the four single-qubit Pauli operators, canonically
// encoded as a 2-bit value (spec §3): I=0, Z=1, X=2, Y=3. The encoding is
// shared with the stabilizer tableau, which packs two bits per
// (generator, qubit) pair using exactly this numbering.
type PauliOp uint8

const (
	PauliI PauliOp = 0
	PauliZ PauliOp = 1
	PauliX PauliOp = 2
	PauliY PauliOp = 3
)

// String renders the canonical single-character label.
func (p PauliOp) String() string {
	switch p {
	case PauliI:
		return "I"
	case PauliZ:
		return "Z"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	default:
		return "?"
	}
}

// Bits returns the 2-bit encoding of this operator.
func (p PauliOp) Bits() uint8 { return uint8(p) & 0x03 }

// PauliFromBits decodes a 2-bit value into a PauliOp.
func PauliFromBits(bits uint8) PauliOp { return PauliOp(bits & 0x03) }

// pauliMulPow is the phase table from spec §4.5: the power of i such
// that a*b = i^pow * (a XOR b), for a, b in the canonical 2-bit encoding.
// I multiplied by anything is trivial (pow 0); a Pauli multiplied by
// itself is trivial; the three off-diagonal pairs {Z,X}, {Z,Y}, {X,Y}
// each contribute a pow-1/pow-3 pair depending on order, matching the
// standard (anticommuting) Pauli algebra X·Z=-iY, Z·X=+iY, etc.
var pauliMulPow = [4][4]uint8{
	{0, 0, 0, 0}, // I * {I,Z,X,Y}
	{0, 0, 1, 3}, // Z * {I,Z,X,Y}: Z*X=+i, Z*Y=-i
	{0, 3, 0, 1}, // X * {I,Z,X,Y}: X*Z=-i, X*Y=+i
	{0, 1, 3, 0}, // Y * {I,Z,X,Y}: Y*Z=+i, Y*X=-i
}

// MulPauli multiplies a*b, returning the resulting Pauli label (the XOR
// of the two encodings) and the power of i (0..3) such that
// a*b = i^pow * label. The combined power across a full generator row
// must always reduce to 0 or 2 mod 4, since stabilizer rows commute.
func MulPauli(a, b PauliOp) (PauliOp, uint8) {
	label := PauliFromBits(a.Bits() ^ b.Bits())
	pow := pauliMulPow[a.Bits()][b.Bits()]
	return label, pow
}
