// Package export implements the OpenQasm, c-Qasm, and LaTeX exporters
// plus PNG circuit diagrams specified as external collaborators in
// spec §6: all three consume a circuit.Circuit's recorded operation
// list (circuit.Op via Operations()) rather than reaching into the
// simulation engines. Grounded on original_source's gates/mod.rs
// open_qasm/c_qasm/latex method family, re-expressed here as a single
// name-mapping table keyed by Gate.Description() instead of new methods
// on the Gate interface, so the existing gate catalogue needs no
// changes to support export.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kegliz/qplay/qc/gate"
)

// gateName resolves g's QASM mnemonic and any numeric parameters, for
// gates the OpenQasm/c-Qasm dialects both recognise by the same name,
// including the Rx/Ry/Rz/U1/U2/U3 rotations with their parameters.
// Kron composites and Controlled wrappers around gates other than
// X, Y, Z and H are not part of either dialect's standard gate set and
// are reported via the returned ok=false.
func gateName(g gate.Gate) (name string, params []float64, ok bool) {
	switch d := g.Description(); d {
	case "I":
		return "id", nil, true
	case "X":
		return "x", nil, true
	case "Y":
		return "y", nil, true
	case "Z":
		return "z", nil, true
	case "H":
		return "h", nil, true
	case "S":
		return "s", nil, true
	case "S†":
		return "sdg", nil, true
	case "T":
		return "t", nil, true
	case "T†":
		return "tdg", nil, true
	case "V":
		return "sx", nil, true
	case "V†":
		return "sxdg", nil, true
	case "C-X":
		return "cx", nil, true
	case "C-Y":
		return "cy", nil, true
	case "C-Z":
		return "cz", nil, true
	case "C-H":
		return "ch", nil, true
	case "CCX":
		return "ccx", nil, true
	case "CCZ":
		return "ccz", nil, true
	default:
		if p, ok := parseParamGate(d, "Rx(", 1); ok {
			return "rx", p, true
		}
		if p, ok := parseParamGate(d, "Ry(", 1); ok {
			return "ry", p, true
		}
		if p, ok := parseParamGate(d, "Rz(", 1); ok {
			return "rz", p, true
		}
		if p, ok := parseParamGate(d, "U1(", 1); ok {
			return "u1", p, true
		}
		if p, ok := parseParamGate(d, "U2(", 2); ok {
			return "u2", p, true
		}
		if p, ok := parseParamGate(d, "U3(", 3); ok {
			return "u3", p, true
		}
		return "", nil, false
	}
}

// parseParamGate extracts n comma-separated float64 parameters out of a
// Description of the form "Rx(1.5707963267948966)", matching how the
// rotation gates format themselves via fmt.Sprintf("%g", ...).
func parseParamGate(desc, prefix string, n int) ([]float64, bool) {
	if !strings.HasPrefix(desc, prefix) || !strings.HasSuffix(desc, ")") {
		return nil, false
	}
	inner := desc[len(prefix) : len(desc)-1]
	fields := strings.Split(inner, ",")
	if len(fields) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// qasmCall renders "name q[b0],q[b1],..." with parenthesized params
// when present, e.g. "rx(1.5707963267948966) q[0]".
func qasmCall(name string, params []float64, bits []int) string {
	var b strings.Builder
	b.WriteString(name)
	if len(params) > 0 {
		b.WriteByte('(')
		for i, p := range params {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
		}
		b.WriteByte(')')
	}
	b.WriteByte(' ')
	for i, bit := range bits {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "q[%d]", bit)
	}
	return b.String()
}
