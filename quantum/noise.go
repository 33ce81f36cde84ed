package quantum

import (
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// NoiseModel describes a simple device noise model: a depolarizing
// error after every gate and a symmetric readout flip at measurement.
// Noisy runs sample one Pauli error trajectory per shot.
type NoiseModel struct {
	// Probability of a depolarizing error after a single-qubit gate.
	Depolarizing1Q float64 `yaml:"depolarizing_1q"`
	// Probability of a depolarizing error on each qubit of a two-qubit gate.
	Depolarizing2Q float64 `yaml:"depolarizing_2q"`
	// Probability that a measured bit is reported flipped.
	ReadoutError float64 `yaml:"readout_error"`
}

// DefaultNoiseModel returns error rates in the ballpark of the small
// superconducting devices the original game was played on.
func DefaultNoiseModel() *NoiseModel {
	return &NoiseModel{
		Depolarizing1Q: 0.001,
		Depolarizing2Q: 0.02,
		ReadoutError:   0.03,
	}
}

// LoadNoiseModel reads a NoiseModel from a YAML file.
func LoadNoiseModel(path string) (*NoiseModel, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read noise model")
	}

	nm := &NoiseModel{}
	if err := yaml.Unmarshal(buf, nm); err != nil {
		return nil, errors.Wrapf(err, "failed to parse noise model %v", path)
	}

	if err := nm.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid noise model %v", path)
	}

	return nm, nil
}

// Validate checks that all error rates are probabilities.
func (nm *NoiseModel) Validate() error {
	for _, p := range []float64{nm.Depolarizing1Q, nm.Depolarizing2Q, nm.ReadoutError} {
		if p < 0 || p > 1 {
			return errors.Errorf("error rate %v out of range [0, 1]", p)
		}
	}
	return nil
}

// applyPauliError applies X, Y or Z with equal probability to qubit q.
func applyPauliError(r *Register, q int, rng *rand.Rand) {
	switch rng.Intn(3) {
	case 0:
		r.ApplyX(q)
	case 1:
		r.ApplyY(q)
	default:
		r.ApplyZ(q)
	}
}

// Corrupt possibly injects a depolarizing error on each of the given
// qubits, using the 1- or 2-qubit rate depending on how many qubits
// the preceding gate acted on.
func (nm *NoiseModel) Corrupt(r *Register, rng *rand.Rand, qubits ...int) {
	p := nm.Depolarizing1Q
	if len(qubits) > 1 {
		p = nm.Depolarizing2Q
	}

	for _, q := range qubits {
		if rng.Float64() < p {
			applyPauliError(r, q, rng)
		}
	}
}

// FlipReadout flips each of the low numQubits bits of outcome
// independently with probability ReadoutError.
func (nm *NoiseModel) FlipReadout(outcome, numQubits int, rng *rand.Rand) int {
	for q := 0; q < numQubits; q++ {
		if rng.Float64() < nm.ReadoutError {
			outcome ^= 1 << uint(q)
		}
	}
	return outcome
}
