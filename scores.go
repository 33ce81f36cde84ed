package qcards

import (
	"math/rand"
	"time"

	"github.com/golang/glog"

	"github.com/matteoacrossi/QuantumCards/quantum"
)

// DefaultShots is the number of measurement shots used when the
// caller does not specify one.
const DefaultShots = 1024

// ScoreOptions control how a game is simulated.
type ScoreOptions struct {
	// Shots is the number of times the circuit is measured.
	// Zero means DefaultShots.
	Shots int
	// Noisy enables the noisy simulation.
	Noisy bool
	// Noise is the noise model used when Noisy is set.
	// Nil means DefaultNoiseModel.
	Noise *quantum.NoiseModel
	// Rng is the randomness source for the qubit shuffle and the
	// measurement sampling. Nil means a time-seeded source.
	Rng *rand.Rand
}

func (opts *ScoreOptions) shots() int {
	if opts.Shots > 0 {
		return opts.Shots
	}
	return DefaultShots
}

func (opts *ScoreOptions) rng() *rand.Rand {
	if opts.Rng != nil {
		return opts.Rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (opts *ScoreOptions) noise() *quantum.NoiseModel {
	if !opts.Noisy {
		return nil
	}
	if opts.Noise != nil {
		return opts.Noise
	}
	return quantum.DefaultNoiseModel()
}

// GetScores runs the game's quantum circuit and returns the number of
// shots in which each player's qubit measured 1. The result always
// has MaxPlayers entries; entries past numPlayers stay zero, as do
// all entries for an empty or invalid game.
//
// Players are assigned to qubits by a fresh random permutation each
// run, so a game string cannot be tuned to a known register layout.
func GetScores(gameStr string, numPlayers int, opts *ScoreOptions) []int {
	if opts == nil {
		opts = &ScoreOptions{}
	}

	score := make([]int, MaxPlayers)
	if gameStr == "" {
		return score
	}

	game, err := ParseGame(gameStr, numPlayers)
	if err != nil {
		glog.Warningf("Invalid game %q for %d players: %v", gameStr, numPlayers, err)
		return score
	}

	rng := opts.rng()
	assign := rng.Perm(numPlayers)
	c, err := game.Circuit(assign)
	if err != nil {
		glog.Errorf("Cannot build circuit for %q: %v", gameStr, err)
		return score
	}

	counts := c.Sample(opts.shots(), rng, opts.noise())
	for outcome, n := range counts {
		for p := 0; p < numPlayers; p++ {
			if outcome&(1<<uint(assign[p])) != 0 {
				score[p] += n
			}
		}
	}

	return score
}

// ExpectedScores returns each player's exact probability of scoring
// on a single shot of the noiseless circuit. The qubit shuffle does
// not change marginals, so players are assigned to qubits in order.
func ExpectedScores(g *Game) ([]float64, error) {
	c, err := g.Circuit(nil)
	if err != nil {
		return nil, err
	}

	r := c.Run()
	probs := make([]float64, g.NumPlayers)
	for p := range probs {
		probs[p] = r.QubitProbability(p)
	}
	return probs, nil
}
