package qcards

import (
	"math"
	"math/rand"
	"testing"

	"github.com/matteoacrossi/QuantumCards/quantum"
)

func newTestOptions(shots int) *ScoreOptions {
	return &ScoreOptions{
		Shots: shots,
		Rng:   rand.New(rand.NewSource(42)),
	}
}

func allZero(score []int) bool {
	for _, s := range score {
		if s != 0 {
			return false
		}
	}
	return true
}

func TestGetScoresEmptyGame(t *testing.T) {
	score := GetScores("", 3, newTestOptions(100))
	if len(score) != MaxPlayers {
		t.Fatalf("score has %d entries, expected %d", len(score), MaxPlayers)
	}
	if !allZero(score) {
		t.Errorf("empty game scored %v, expected all zeros", score)
	}
}

func TestGetScoresInvalidGame(t *testing.T) {
	for _, tc := range []struct {
		game       string
		numPlayers int
	}{
		{"Q1", 2},
		{"H9", 2},
		{"C11", 2},
		{"H1", 0},
		{"H1", 6},
	} {
		if score := GetScores(tc.game, tc.numPlayers, newTestOptions(100)); !allZero(score) {
			t.Errorf("GetScores(%q, %d) = %v, expected all zeros",
				tc.game, tc.numPlayers, score)
		}
	}
}

func TestGetScoresDeterministicWins(t *testing.T) {
	// X on every player's qubit: everyone measures 1 on every shot.
	score := GetScores("X1X2X3", 3, newTestOptions(200))
	for p := 0; p < 3; p++ {
		if score[p] != 200 {
			t.Errorf("player %d scored %d, expected 200", p+1, score[p])
		}
	}
	for p := 3; p < MaxPlayers; p++ {
		if score[p] != 0 {
			t.Errorf("absent player %d scored %d, expected 0", p+1, score[p])
		}
	}
}

func TestGetScoresUntouchedQubitsNeverScore(t *testing.T) {
	score := GetScores("X1", 4, newTestOptions(100))
	if score[0] != 100 {
		t.Errorf("player 1 scored %d, expected 100", score[0])
	}
	for p := 1; p < 4; p++ {
		if score[p] != 0 {
			t.Errorf("player %d scored %d, expected 0", p+1, score[p])
		}
	}
}

func TestGetScoresHadamardIsFair(t *testing.T) {
	score := GetScores("H1", 1, newTestOptions(10000))
	got := float64(score[0]) / 10000
	if math.Abs(got-0.5) > 0.05 {
		t.Errorf("Hadamard win rate %.3f, expected ~0.5", got)
	}
}

func TestGetScoresEntangledPlayers(t *testing.T) {
	// H1 C12 entangles the two players: shots where player 1 scores
	// are exactly the shots where player 2 scores.
	score := GetScores("H1C12", 2, newTestOptions(5000))
	if score[0] != score[1] {
		t.Errorf("entangled players scored %d and %d, expected equal", score[0], score[1])
	}
}

func TestGetScoresDefaultShots(t *testing.T) {
	score := GetScores("X1", 1, &ScoreOptions{Rng: rand.New(rand.NewSource(1))})
	if score[0] != DefaultShots {
		t.Errorf("player 1 scored %d, expected %d", score[0], DefaultShots)
	}
}

func TestGetScoresNoisy(t *testing.T) {
	opts := newTestOptions(2000)
	opts.Noisy = true
	opts.Noise = &quantum.NoiseModel{ReadoutError: 0.1}

	// Noise should leak some counts away from the deterministic outcome.
	score := GetScores("X1", 1, opts)
	if score[0] == 0 || score[0] == 2000 {
		t.Errorf("noisy run scored %d out of 2000, expected something in between", score[0])
	}
	got := float64(score[0]) / 2000
	if math.Abs(got-0.9) > 0.05 {
		t.Errorf("noisy win rate %.3f, expected ~0.9", got)
	}
}

func TestScoreOptionsShotsFallback(t *testing.T) {
	// Non-positive shot counts fall back to DefaultShots, so callers
	// reporting "score / shots" must normalize the same way.
	for _, shots := range []int{0, -5} {
		opts := &ScoreOptions{Shots: shots}
		if got := opts.shots(); got != DefaultShots {
			t.Errorf("shots() with Shots=%d = %d, expected %d", shots, got, DefaultShots)
		}
	}

	opts := &ScoreOptions{Shots: 7}
	if got := opts.shots(); got != 7 {
		t.Errorf("shots() with Shots=7 = %d, expected 7", got)
	}
}

func TestExpectedScores(t *testing.T) {
	game, err := ParseGame("X1H2", 2)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	probs, err := ExpectedScores(game)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(probs) != 2 {
		t.Fatalf("got %d probabilities, expected 2", len(probs))
	}
	if math.Abs(probs[0]-1.0) > 1e-9 {
		t.Errorf("player 1 expectation %v, expected 1", probs[0])
	}
	if math.Abs(probs[1]-0.5) > 1e-9 {
		t.Errorf("player 2 expectation %v, expected 0.5", probs[1])
	}
}
