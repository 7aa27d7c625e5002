// Command qsim runs a handful of canned demo circuits — a Bell pair, a
// GHZ state, quantum teleportation, and a stabilizer-tableau walk —
// against the library's two engines and prints their results, or
// starts the HTTP front-end when given -serve. Grounded on the
// teacher's own cmd/cli demo structure, rewritten against
// circuit.Circuit/builder.Builder directly instead of the deleted
// simulator registry/runner.
package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/kegliz/qplay/internal/config"
	"github.com/kegliz/qplay/internal/logger"
	"github.com/kegliz/qplay/internal/server"
	"github.com/kegliz/qplay/qc/builder"
	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/qustate"
	"github.com/kegliz/qplay/qc/stabilizer"
)

func main() {
	addr := flag.String("serve", "", "if set, start the HTTP front-end on this address (e.g. :8080) instead of running the demos")
	shots := flag.Int("shots", config.Default().Simulator.DefaultShots, "shot count for the demo circuits")
	ghzQubits := flag.Int("ghz-qubits", 3, "qubit count for the GHZ demo")
	flag.Parse()

	if *addr != "" {
		log := logger.NewLogger(logger.LoggerOptions{})
		if err := server.New(config.Default(), log).ListenAndServe(*addr); err != nil {
			log.Error().Err(err).Msg("server exited")
		}
		return
	}

	fmt.Println("--- Bell State Simulation ---")
	runDemo(bellStateCircuit(), *shots)

	fmt.Printf("\n--- %d-Qubit GHZ Simulation ---\n", *ghzQubits)
	runDemo(ghzCircuit(*ghzQubits), *shots)

	fmt.Println("\n--- Teleportation Simulation ---")
	runDemo(teleportationCircuit(), *shots)

	fmt.Println("\n--- Stabilizer Tableau Walk ---")
	stabilizerDemo()
}

func runDemo(c *circuit.Circuit, shots int) {
	if err := c.Execute(shots); err != nil {
		fmt.Printf("error executing circuit: %v\n", err)
		return
	}
	hist, err := c.HistogramString()
	if err != nil {
		fmt.Printf("error collecting histogram: %v\n", err)
		return
	}
	pretty(hist, shots)
}

// bellStateCircuit prepares the |Φ+⟩ Bell state and measures both qubits;
// outcomes land on 00 or 11.
func bellStateCircuit() *circuit.Circuit {
	b := builder.New(builder.Q(2), builder.C(2))
	b.H(0).CNOT(0, 1).Measure(0, 0).Measure(1, 1)
	return b.Build()
}

// ghzCircuit prepares the n-qubit GHZ state (H on qubit 0, then a chain
// of CNOTs fanning out from it) and measures every qubit; outcomes
// should land on all-0 or all-1 only.
func ghzCircuit(n int) *circuit.Circuit {
	b := builder.New(builder.Q(n), builder.C(n))
	b.H(0)
	cbits := make([]int, n)
	for i := 1; i < n; i++ {
		b.CNOT(0, i)
	}
	for i := range cbits {
		cbits[i] = i
	}
	b.MeasureAll(cbits)
	return b.Build()
}

// teleportationCircuit teleports the |+⟩ state prepared on qubit 0 onto
// qubit 2 via an EPR pair held on qubits 1 and 2, using the
// conditional-gate corrections a classical Bell measurement drives.
// Built directly against circuit.Circuit since builder.Builder's DSL
// has no conditional-gate method.
func teleportationCircuit() *circuit.Circuit {
	c := circuit.New(3, 3)

	// Entangle the carrier pair (qubits 1, 2).
	c.AddGate(gate.H(), 1)
	c.AddGate(gate.CX(), 1, 2)

	// Prepare the message state |+⟩ on qubit 0.
	c.AddGate(gate.H(), 0)

	// Bell-basis measurement of qubits 0 and 1 into classical bits 0, 1.
	c.AddGate(gate.CX(), 0, 1)
	c.AddGate(gate.H(), 0)
	c.AddMeasure(0, 0, qustate.BasisZ)
	c.AddMeasure(1, 1, qustate.BasisZ)

	// Bob's corrections on qubit 2, each conditioned on one classical bit.
	c.AddConditionalGate(gate.X(), []int{2}, []int{1}, 1)
	c.AddConditionalGate(gate.Z(), []int{2}, []int{0}, 1)

	c.AddMeasure(2, 2, qustate.BasisZ)
	return c
}

// stabilizerDemo walks a 2-qubit tableau through H(0), CX(0,1) and
// prints the resulting generators, which should read +XX / +ZZ — the
// Bell pair's stabilizer group.
func stabilizerDemo() {
	m := stabilizer.New(2)
	if err := m.ApplyGate(gate.H(), []int{0}); err != nil {
		fmt.Printf("error applying H: %v\n", err)
		return
	}
	if err := m.ApplyGate(gate.CX(), []int{0, 1}); err != nil {
		fmt.Printf("error applying CX: %v\n", err)
		return
	}
	fmt.Println(m.String())
}

// pretty prints a histogram sorted alphabetically by outcome.
func pretty(hist map[string]int, shots int) {
	keys := make([]string, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, state := range keys {
		count := hist[state]
		probability := float64(count) / float64(shots)
		fmt.Printf("State |%s>: %d counts (%.2f%%)\n", state, count, probability*100)
	}
}
