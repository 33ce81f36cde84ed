package circuit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteoacrossi/QuantumCards/quantum"
)

func TestAppendArityMismatch(t *testing.T) {
	c := New(2)
	require.Error(t, c.Append(Hadamard, 0, 1))
	require.Error(t, c.Append(CNOT, 0))
}

func TestAppendOutOfRange(t *testing.T) {
	c := New(2)
	require.Error(t, c.Append(PauliX, 2))
	require.Error(t, c.Append(PauliX, -1))
	require.Error(t, c.Append(Swap, 0, 5))
}

func TestAppendSameQubitTwice(t *testing.T) {
	c := New(3)
	require.Error(t, c.Append(CNOT, 1, 1))
	require.Error(t, c.Append(Swap, 2, 2))
}

func TestRun(t *testing.T) {
	c := New(2)
	require.NoError(t, c.Append(Hadamard, 0))
	require.NoError(t, c.Append(CNOT, 0, 1))

	probs := c.Run().Probabilities()
	assert.InDelta(t, 0.5, probs[0b00], 1e-9)
	assert.InDelta(t, 0.5, probs[0b11], 1e-9)
}

func TestSampleNoiseless(t *testing.T) {
	c := New(2)
	require.NoError(t, c.Append(PauliX, 0))
	require.NoError(t, c.Append(PauliX, 1))

	rng := rand.New(rand.NewSource(5))
	counts := c.Sample(100, rng, nil)
	require.Len(t, counts, 1)
	assert.Equal(t, 100, counts[0b11])
}

func TestSampleShotsConserved(t *testing.T) {
	c := New(3)
	require.NoError(t, c.Append(Hadamard, 0))
	require.NoError(t, c.Append(Hadamard, 1))
	require.NoError(t, c.Append(CNOT, 1, 2))

	rng := rand.New(rand.NewSource(5))
	for _, nm := range []*quantum.NoiseModel{nil, quantum.DefaultNoiseModel()} {
		counts := c.Sample(500, rng, nm)
		total := 0
		for _, n := range counts {
			total += n
		}
		assert.Equal(t, 500, total)
	}
}

func TestSampleNoisyFlipsReadout(t *testing.T) {
	// With certain readout error and no gate noise, |00> reads |11>.
	c := New(2)
	require.NoError(t, c.Append(Identity, 0))

	nm := &quantum.NoiseModel{ReadoutError: 1.0}
	rng := rand.New(rand.NewSource(5))
	counts := c.Sample(50, rng, nm)
	require.Len(t, counts, 1)
	assert.Equal(t, 50, counts[0b11])
}

func TestToQASM(t *testing.T) {
	c := New(3)
	require.NoError(t, c.Append(Hadamard, 0))
	require.NoError(t, c.Append(Identity, 1))
	require.NoError(t, c.Append(CNOT, 0, 2))
	require.NoError(t, c.Append(Swap, 1, 2))

	expected := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[3];
creg c[3];

h q[0];
id q[1];
cx q[0], q[2];
swap q[1], q[2];
measure q -> c;
`
	assert.Equal(t, expected, c.ToQASM())
}

func TestGateString(t *testing.T) {
	assert.Equal(t, "Hadamard(1)", Gate{Type: Hadamard, Qubits: [2]int{1, 0}}.String())
	assert.Equal(t, "CNOT(0, 2)", Gate{Type: CNOT, Qubits: [2]int{0, 2}}.String())
}
