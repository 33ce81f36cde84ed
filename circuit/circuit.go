// Package circuit provides the quantum circuit built from a Q|Cards>
// game: an ordered list of gates over a fixed number of qubits, an
// executor backed by the quantum package, and OpenQASM 2.0 export so
// a finished game can be re-run on real hardware elsewhere.
package circuit

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/matteoacrossi/QuantumCards/quantum"
)

// GateType enumerates the gates a card can place on the circuit.
type GateType uint8

const (
	Identity GateType = iota
	Hadamard
	PauliX
	PauliY
	PauliZ
	CNOT
	Swap
)

var gateStr = [...]string{
	"Identity",
	"Hadamard",
	"PauliX",
	"PauliY",
	"PauliZ",
	"CNOT",
	"Swap",
}

// QASM instruction names from qelib1.inc.
var gateQASM = [...]string{
	"id", "h", "x", "y", "z", "cx", "swap",
}

// String implements Stringer.
func (g GateType) String() string {
	return gateStr[g]
}

// Arity returns the number of qubits the gate acts on.
func (g GateType) Arity() int {
	if g == CNOT || g == Swap {
		return 2
	}
	return 1
}

// Gate is one gate placed on the circuit. Qubits[1] is unused for
// single-qubit gates. For CNOT, Qubits[0] is the control.
type Gate struct {
	Type   GateType
	Qubits [2]int
}

// String implements Stringer.
func (g Gate) String() string {
	if g.Type.Arity() == 2 {
		return fmt.Sprintf("%v(%d, %d)", g.Type, g.Qubits[0], g.Qubits[1])
	}
	return fmt.Sprintf("%v(%d)", g.Type, g.Qubits[0])
}

// Circuit is an ordered sequence of gates over numQubits qubits,
// measured in the computational basis at the end.
type Circuit struct {
	numQubits int
	gates     []Gate
}

// New creates an empty circuit over the given number of qubits.
func New(numQubits int) *Circuit {
	return &Circuit{numQubits: numQubits}
}

func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// Gates returns the gates in application order.
func (c *Circuit) Gates() []Gate {
	return c.gates
}

// Append adds a gate acting on the given qubits to the end of the
// circuit. The number of qubits must match the gate's arity, all
// qubits must be on the register, and a two-qubit gate's qubits must
// be distinct.
func (c *Circuit) Append(g GateType, qubits ...int) error {
	if len(qubits) != g.Arity() {
		return errors.Errorf("%v gate needs %d qubits, got %d", g, g.Arity(), len(qubits))
	}

	for _, q := range qubits {
		if q < 0 || q >= c.numQubits {
			return errors.Errorf("qubit %d out of range for %d-qubit circuit", q, c.numQubits)
		}
	}

	gate := Gate{Type: g}
	copy(gate.Qubits[:], qubits)
	if g.Arity() == 2 && gate.Qubits[0] == gate.Qubits[1] {
		return errors.Errorf("%v gate needs two distinct qubits, got %d twice", g, gate.Qubits[0])
	}

	c.gates = append(c.gates, gate)
	return nil
}

func applyGate(r *quantum.Register, g Gate) {
	switch g.Type {
	case Identity:
		// No-op on the state vector.
	case Hadamard:
		r.ApplyH(g.Qubits[0])
	case PauliX:
		r.ApplyX(g.Qubits[0])
	case PauliY:
		r.ApplyY(g.Qubits[0])
	case PauliZ:
		r.ApplyZ(g.Qubits[0])
	case CNOT:
		r.ApplyCX(g.Qubits[0], g.Qubits[1])
	case Swap:
		r.ApplySwap(g.Qubits[0], g.Qubits[1])
	}
}

// Run executes the circuit without noise and returns the final register.
func (c *Circuit) Run() *quantum.Register {
	r := quantum.NewRegister(c.numQubits)
	for _, g := range c.gates {
		applyGate(r, g)
	}
	return r
}

// Counts maps measured basis states to the number of shots that
// produced them.
type Counts map[int]int

// Sample measures the circuit shots times and returns the counts.
//
// Without a noise model the circuit is executed once and the final
// distribution is sampled. With a noise model each shot is an
// independent trajectory: depolarizing errors are injected after
// every gate and the readout bits may flip.
func (c *Circuit) Sample(shots int, rng *rand.Rand, nm *quantum.NoiseModel) Counts {
	counts := make(Counts)
	if nm == nil {
		r := c.Run()
		for i := 0; i < shots; i++ {
			counts[r.Measure(rng)]++
		}
		return counts
	}

	for i := 0; i < shots; i++ {
		r := quantum.NewRegister(c.numQubits)
		for _, g := range c.gates {
			applyGate(r, g)
			if g.Type.Arity() == 2 {
				nm.Corrupt(r, rng, g.Qubits[0], g.Qubits[1])
			} else {
				nm.Corrupt(r, rng, g.Qubits[0])
			}
		}

		outcome := nm.FlipReadout(r.Measure(rng), c.numQubits, rng)
		counts[outcome]++
	}

	return counts
}

// ToQASM renders the circuit as OpenQASM 2.0, with every qubit
// measured into the classical register at the end.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.numQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", c.numQubits)

	for _, g := range c.gates {
		if g.Type.Arity() == 2 {
			fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", gateQASM[g.Type], g.Qubits[0], g.Qubits[1])
		} else {
			fmt.Fprintf(&sb, "%s q[%d];\n", gateQASM[g.Type], g.Qubits[0])
		}
	}

	sb.WriteString("measure q -> c;\n")
	return sb.String()
}
