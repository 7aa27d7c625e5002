package export

import (
	"fmt"
	"strings"

	"github.com/kegliz/qplay/qc/circuit"
)

// LaTeX renders c as a Qcircuit (the standard LaTeX quantum-circuit
// package) tabular: one row per qubit, one column per operation. Gates
// with no QASM mnemonic still render (LaTeX has no equivalent dialect
// restriction), using the gate's own Description() as a fallback label.
func LaTeX(c *circuit.Circuit) string {
	nr := c.NrBits()
	rows := make([][]string, nr)
	for i := range rows {
		rows[i] = []string{"\\lstick{q_{" + fmt.Sprint(i) + "}}"}
	}

	col := func() {
		for i := range rows {
			rows[i] = append(rows[i], "\\qw")
		}
	}

	for _, op := range c.Operations() {
		switch op.Kind {
		case circuit.OpGate, circuit.OpConditionalGate:
			label := op.G.Description()
			if name, _, ok := gateName(op.G); ok {
				label = name
			}
			emitBoxedGate(rows, op.Bits, label)
		case circuit.OpMeasure:
			col()
			rows[op.Qbit][len(rows[op.Qbit])-1] = "\\meter"
		case circuit.OpMeasureAll:
			col()
			for qbit, cbit := range op.Cbits {
				_ = cbit
				rows[qbit][len(rows[qbit])-1] = "\\meter"
			}
		case circuit.OpPeekAll:
			col()
			for qbit := range op.Cbits {
				rows[qbit][len(rows[qbit])-1] = "\\meter"
			}
		case circuit.OpReset:
			col()
			rows[op.Qbit][len(rows[op.Qbit])-1] = "\\gate{\\ket{0}}"
		case circuit.OpResetAll:
			col()
			for qbit := 0; qbit < nr; qbit++ {
				rows[qbit][len(rows[qbit])-1] = "\\gate{\\ket{0}}"
			}
		case circuit.OpBarrier:
			col()
		}
	}

	var b strings.Builder
	b.WriteString("\\Qcircuit @C=1em @R=.7em {\n")
	for i, row := range rows {
		b.WriteString(strings.Join(row, " & "))
		if i < len(rows)-1 {
			b.WriteString(" \\\\\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// emitBoxedGate appends one new column to every qubit row: a labeled
// box on the gate's bit for single-qubit gates; for multi-qubit gates,
// a \ctrl entry on every bit but the last and a labeled box on the last.
// Rows the gate does not touch get a plain wire.
func emitBoxedGate(rows [][]string, bits []int, label string) {
	for i := range rows {
		rows[i] = append(rows[i], "\\qw")
	}
	last := len(rows[0]) - 1
	if len(bits) == 1 {
		rows[bits[0]][last] = "\\gate{" + label + "}"
		return
	}
	target := bits[len(bits)-1]
	for _, ctrl := range bits[:len(bits)-1] {
		rows[ctrl][last] = "\\ctrl{" + fmt.Sprint(target-ctrl) + "}"
	}
	rows[target][last] = "\\gate{" + label + "}"
}
