// Package quantum implements a small state-vector simulator for the
// gate set used by Q|Cards>: H, I, X, Y, Z, CNOT and SWAP.
package quantum

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// Register is an n-qubit quantum register tracked as a dense state
// vector of 2^n complex amplitudes. Qubit q corresponds to bit q of
// the basis state index. A new Register starts in |0...0>.
type Register struct {
	amps      []complex128
	numQubits int
}

// NewRegister creates a register of numQubits qubits in the |0...0> state.
func NewRegister(numQubits int) *Register {
	amps := make([]complex128, 1<<uint(numQubits))
	amps[0] = 1
	return &Register{amps: amps, numQubits: numQubits}
}

func (r *Register) NumQubits() int {
	return r.numQubits
}

// Clone returns an independent copy of the register.
func (r *Register) Clone() *Register {
	amps := make([]complex128, len(r.amps))
	copy(amps, r.amps)
	return &Register{amps: amps, numQubits: r.numQubits}
}

// ApplyH applies the Hadamard gate to qubit q.
func (r *Register) ApplyH(q int) {
	h := complex(1.0/math.Sqrt2, 0)
	bit := 1 << uint(q)
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := r.amps[i], r.amps[j]
			r.amps[i] = h * (a0 + a1)
			r.amps[j] = h * (a0 - a1)
		}
	}
}

// ApplyX applies the Pauli-X (NOT) gate to qubit q.
func (r *Register) ApplyX(q int) {
	bit := 1 << uint(q)
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}

// ApplyY applies the Pauli-Y gate to qubit q.
func (r *Register) ApplyY(q int) {
	bit := 1 << uint(q)
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			r.amps[i], r.amps[j] = -1i*r.amps[j], 1i*r.amps[i]
		}
	}
}

// ApplyZ applies the Pauli-Z gate to qubit q.
func (r *Register) ApplyZ(q int) {
	bit := 1 << uint(q)
	for i := range r.amps {
		if i&bit != 0 {
			r.amps[i] = -r.amps[i]
		}
	}
}

// ApplyCX applies a CNOT gate with the given control and target qubits.
func (r *Register) ApplyCX(control, target int) {
	cBit := 1 << uint(control)
	tBit := 1 << uint(target)
	for i := range r.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}

// ApplySwap exchanges the states of qubits a and b.
func (r *Register) ApplySwap(a, b int) {
	aBit := 1 << uint(a)
	bBit := 1 << uint(b)
	for i := range r.amps {
		if i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}

// Probabilities returns the measurement probability of each basis state.
func (r *Register) Probabilities() []float64 {
	probs := make([]float64, len(r.amps))
	for i, amp := range r.amps {
		probs[i] = real(amp * cmplx.Conj(amp))
	}
	return probs
}

// QubitProbability returns the marginal probability that qubit q
// measures 1.
func (r *Register) QubitProbability(q int) float64 {
	bit := 1 << uint(q)
	p := 0.0
	for i, amp := range r.amps {
		if i&bit != 0 {
			p += real(amp * cmplx.Conj(amp))
		}
	}
	return p
}

// Norm returns the total probability mass of the register.
// It should always be 1 up to floating point error.
func (r *Register) Norm() float64 {
	p := 0.0
	for _, amp := range r.amps {
		p += real(amp * cmplx.Conj(amp))
	}
	return p
}

// Measure samples one basis state from the register's probability
// distribution. The register itself is not collapsed.
func (r *Register) Measure(rng *rand.Rand) int {
	x := rng.Float64()
	cum := 0.0
	for i, amp := range r.amps {
		cum += real(amp * cmplx.Conj(amp))
		if x < cum {
			return i
		}
	}
	// Rounding may leave a sliver of probability unassigned.
	return len(r.amps) - 1
}
