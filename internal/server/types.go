package server

import (
	"fmt"

	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/qustate"
)

// OpSpec is one entry of a CircuitRequest's op list, a JSON-friendly
// stand-in for circuit.Op. Kind selects which fields are read; unused
// fields are ignored.
type OpSpec struct {
	Kind  string `json:"kind" binding:"required,oneof=gate measure measure_all reset reset_all barrier"`
	Gate  string `json:"gate,omitempty"`
	Bits  []int  `json:"bits,omitempty"`
	Qbit  int    `json:"qbit,omitempty"`
	Cbit  int    `json:"cbit,omitempty"`
	Cbits []int  `json:"cbits,omitempty"`
	Basis string `json:"basis,omitempty"`
}

// CircuitRequest is the JSON body POSTed to submit a circuit for
// execution: a register size, a shot count, and an ordered op list.
type CircuitRequest struct {
	Qubits int      `json:"qubits" binding:"required,min=1"`
	Cbits  int      `json:"cbits" binding:"min=0"`
	Shots  int      `json:"shots" binding:"min=0"`
	Ops    []OpSpec `json:"ops" binding:"required,min=1,dive"`
}

// SubmitResponse is returned by a successful submission: the job ID the
// histogram can later be fetched with.
type SubmitResponse struct {
	ID string `json:"id"`
}

// HistogramResponse is returned by a successful histogram fetch.
type HistogramResponse struct {
	ID        string         `json:"id"`
	Shots     int            `json:"shots"`
	Histogram map[string]int `json:"histogram"`
}

func basisFromString(s string) (qustate.Basis, error) {
	switch s {
	case "", "Z", "z":
		return qustate.BasisZ, nil
	case "X", "x":
		return qustate.BasisX, nil
	case "Y", "y":
		return qustate.BasisY, nil
	default:
		return 0, fmt.Errorf("server: unknown measurement basis %q", s)
	}
}

// buildCircuit translates a CircuitRequest into a circuit.Circuit,
// resolving each op's gate name via gate.Factory the same way the
// teacher's own demo CLI built gates from name strings.
func buildCircuit(req CircuitRequest) (*circuit.Circuit, error) {
	c := circuit.New(req.Qubits, req.Cbits)
	for i, op := range req.Ops {
		basis, err := basisFromString(op.Basis)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		switch op.Kind {
		case "gate":
			g, err := gate.Factory(op.Gate)
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			c.AddGate(g, op.Bits...)
		case "measure":
			c.AddMeasure(op.Qbit, op.Cbit, basis)
		case "measure_all":
			c.AddMeasureAll(op.Cbits, basis)
		case "reset":
			c.AddReset(op.Qbit)
		case "reset_all":
			c.AddResetAll()
		case "barrier":
			c.AddBarrier()
		default:
			return nil, fmt.Errorf("op %d: unknown kind %q", i, op.Kind)
		}
	}
	return c, nil
}
