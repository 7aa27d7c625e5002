package export

import (
	"fmt"
	"strings"

	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/qerr"
	"github.com/kegliz/qplay/qc/qustate"
)

// CQASM renders c as a c-Qasm 1.0 program. Measure requires q == c (no
// classical-register indirection), Peek is unsupported, and conditional
// gates use c-Qasm's "c-and" (bit-AND) guard syntax per the dialect's
// own conditional form rather than OpenQasm's register comparison.
func CQASM(c *circuit.Circuit) (string, error) {
	var b strings.Builder
	b.WriteString("version 1.0\n")
	fmt.Fprintf(&b, "qubits %d\n", c.NrBits())

	for _, op := range c.Operations() {
		switch op.Kind {
		case circuit.OpGate:
			name, params, ok := gateName(op.G)
			if !ok {
				return "", qerr.ExportUnsupported(op.G.Description(), "c-Qasm")
			}
			fmt.Fprintf(&b, "%s\n", cqasmCall(name, params, op.Bits))
		case circuit.OpConditionalGate:
			name, params, ok := gateName(op.G)
			if !ok {
				return "", qerr.ExportUnsupported(op.G.Description(), "c-Qasm")
			}
			guard := cqasmGuard(op.Control, op.Target)
			fmt.Fprintf(&b, "c-%s %s, %s\n", guard, strings.TrimSpace(name), cqasmArgs(params, op.Bits))
		case circuit.OpMeasure:
			if op.Qbit != op.Cbit {
				return "", qerr.ExportUnsupported("Measure(q!=c)", "c-Qasm")
			}
			cqasmBasisPrefix(&b, op.Qbit, op.Basis)
			fmt.Fprintf(&b, "measure q[%d]\n", op.Qbit)
		case circuit.OpMeasureAll:
			for qbit, cbit := range op.Cbits {
				if qbit != cbit {
					return "", qerr.ExportUnsupported("MeasureAll(q!=c)", "c-Qasm")
				}
				cqasmBasisPrefix(&b, qbit, op.Basis)
				fmt.Fprintf(&b, "measure q[%d]\n", qbit)
			}
		case circuit.OpPeekAll:
			return "", qerr.ExportUnsupported("Peek", "c-Qasm")
		case circuit.OpReset:
			fmt.Fprintf(&b, "prep_z q[%d]\n", op.Qbit)
		case circuit.OpResetAll:
			for qbit := 0; qbit < c.NrBits(); qbit++ {
				fmt.Fprintf(&b, "prep_z q[%d]\n", qbit)
			}
		case circuit.OpBarrier:
			b.WriteString("wait 0\n")
		}
	}
	return b.String(), nil
}

func cqasmCall(name string, params []float64, bits []int) string {
	return strings.TrimSpace(name) + " " + cqasmArgs(params, bits)
}

func cqasmArgs(params []float64, bits []int) string {
	var b strings.Builder
	for i, bit := range bits {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "q[%d]", bit)
	}
	for _, p := range params {
		fmt.Fprintf(&b, ",%g", p)
	}
	return b.String()
}

// cqasmGuard reports c-Qasm's single-bit guard mnemonic: since c-Qasm
// conditionals gate on one bit at a time, a single-control condition
// maps directly; multi-bit control lists are flattened into the
// leading control bit, which is the closest c-Qasm analog to the
// multi-bit target-word condition OpenQasm expresses natively.
func cqasmGuard(control []int, target uint64) string {
	if len(control) == 0 {
		return "nop"
	}
	bit := target&1 == 1
	if bit {
		return fmt.Sprintf("c%d", control[0])
	}
	return fmt.Sprintf("!c%d", control[0])
}

func cqasmBasisPrefix(b *strings.Builder, qbit int, basis qustate.Basis) {
	switch basis {
	case qustate.BasisX:
		fmt.Fprintf(b, "h q[%d]\n", qbit)
	case qustate.BasisY:
		fmt.Fprintf(b, "sdag q[%d]\n", qbit)
		fmt.Fprintf(b, "h q[%d]\n", qbit)
	}
}
