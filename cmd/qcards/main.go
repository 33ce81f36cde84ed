// Play a Q|Cards> game given in notation form and print the scores.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/glog"

	qcards "github.com/matteoacrossi/QuantumCards"
	"github.com/matteoacrossi/QuantumCards/quantum"
)

func main() {
	game := flag.String("game", "", "Game notation string, e.g. H1C12")
	players := flag.Int("players", 2, "Number of players (1-5)")
	shots := flag.Int("shots", qcards.DefaultShots, "Number of measurement shots")
	noisy := flag.Bool("noisy", false, "Simulate with the noise model")
	noiseConfig := flag.String("noise_config", "",
		"YAML file with noise model error rates (implies -noisy)")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	qasm := flag.Bool("qasm", false, "Also print the circuit as OpenQASM 2.0")
	flag.Parse()

	if !qcards.IsValidGame(*game, *players) {
		glog.Exitf("Invalid game %q for %d players", *game, *players)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *shots <= 0 {
		*shots = qcards.DefaultShots
	}

	opts := &qcards.ScoreOptions{
		Shots: *shots,
		Noisy: *noisy,
		Rng:   rand.New(rand.NewSource(*seed)),
	}
	if *noiseConfig != "" {
		nm, err := quantum.LoadNoiseModel(*noiseConfig)
		if err != nil {
			glog.Exitf("Cannot load noise model: %v", err)
		}
		opts.Noisy = true
		opts.Noise = nm
	}

	score := qcards.GetScores(*game, *players, opts)
	for p := 0; p < *players; p++ {
		fmt.Printf("Player %d: %d / %d\n", p+1, score[p], *shots)
	}

	if *qasm {
		g, err := qcards.ParseGame(*game, *players)
		if err != nil {
			glog.Exitf("%v", err)
		}
		c, err := g.Circuit(nil)
		if err != nil {
			glog.Exitf("%v", err)
		}
		fmt.Print(c.ToQASM())
	}
}
