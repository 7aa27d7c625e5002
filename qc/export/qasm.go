package export

import (
	"fmt"
	"strings"

	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/qerr"
	"github.com/kegliz/qplay/qc/qustate"
)

// OpenQASM renders c as an OpenQASM 2.0 program. Peek and any gate with
// no QASM mnemonic fail with qerr.ErrExportUnsupported; a conditional
// gate whose control list is not a permutation of [0, nr_cbits) also
// fails, per spec §6's OpenQasm export constraint.
func OpenQASM(c *circuit.Circuit) (string, error) {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString(`include "qelib1.inc";` + "\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.NrBits())
	fmt.Fprintf(&b, "creg b[%d];\n", c.NrCbits())

	for _, op := range c.Operations() {
		switch op.Kind {
		case circuit.OpGate:
			name, params, ok := gateName(op.G)
			if !ok {
				return "", qerr.ExportUnsupported(op.G.Description(), "OpenQASM")
			}
			fmt.Fprintf(&b, "%s;\n", qasmCall(name, params, op.Bits))
		case circuit.OpConditionalGate:
			name, params, ok := gateName(op.G)
			if !ok {
				return "", qerr.ExportUnsupported(op.G.Description(), "OpenQASM")
			}
			target, err := rewriteControlWord(op.Control, op.Target, c.NrCbits())
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "if (b==%d) %s;\n", target, qasmCall(name, params, op.Bits))
		case circuit.OpMeasure:
			basisPrefix(&b, op.Qbit, op.Basis)
			fmt.Fprintf(&b, "measure q[%d] -> b[%d];\n", op.Qbit, op.Cbit)
		case circuit.OpMeasureAll:
			for qbit, cbit := range op.Cbits {
				basisPrefix(&b, qbit, op.Basis)
				fmt.Fprintf(&b, "measure q[%d] -> b[%d];\n", qbit, cbit)
			}
		case circuit.OpPeekAll:
			return "", qerr.ExportUnsupported("Peek", "OpenQASM")
		case circuit.OpReset:
			fmt.Fprintf(&b, "reset q[%d];\n", op.Qbit)
		case circuit.OpResetAll:
			for qbit := 0; qbit < c.NrBits(); qbit++ {
				fmt.Fprintf(&b, "reset q[%d];\n", qbit)
			}
		case circuit.OpBarrier:
			b.WriteString("barrier ")
			for qbit := 0; qbit < c.NrBits(); qbit++ {
				if qbit > 0 {
					b.WriteByte(',')
				}
				fmt.Fprintf(&b, "q[%d]", qbit)
			}
			b.WriteString(";\n")
		}
	}
	return b.String(), nil
}

// basisPrefix emits the unary rotation that brings qbit into the Z
// basis ahead of a measure line, mirroring qustate's applyBasisChange:
// X-basis is "h", Y-basis is "sdg" then "h", Z-basis emits nothing.
func basisPrefix(b *strings.Builder, qbit int, basis qustate.Basis) {
	switch basis {
	case qustate.BasisX:
		fmt.Fprintf(b, "h q[%d];\n", qbit)
	case qustate.BasisY:
		fmt.Fprintf(b, "sdg q[%d];\n", qbit)
		fmt.Fprintf(b, "h q[%d];\n", qbit)
	}
}

// rewriteControlWord bit-rewrites target from control order into
// natural classical-register order: T' has bit control[idst] set to
// bit idst of T. Fails unless control is a permutation of
// [0, nrCbits), per spec §6.
func rewriteControlWord(control []int, target uint64, nrCbits int) (uint64, error) {
	if len(control) != nrCbits {
		return 0, qerr.ExportUnsupported("conditional control list (not a permutation of classical bits)", "OpenQASM")
	}
	seen := make([]bool, nrCbits)
	for _, cbit := range control {
		if cbit < 0 || cbit >= nrCbits || seen[cbit] {
			return 0, qerr.ExportUnsupported("conditional control list (not a permutation of classical bits)", "OpenQASM")
		}
		seen[cbit] = true
	}
	var rewritten uint64
	for idst, cbit := range control {
		if target&(1<<uint(idst)) != 0 {
			rewritten |= 1 << uint(cbit)
		}
	}
	return rewritten, nil
}
