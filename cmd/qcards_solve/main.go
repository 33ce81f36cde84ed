// Solve a dealt two-player duel with vanilla CFR.
package main

import (
	"flag"
	"math/rand"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	qcards "github.com/matteoacrossi/QuantumCards"
)

func main() {
	seed := flag.Int64("seed", 123, "Random seed")
	cardsPerPlayer := flag.Int("cards_per_player", 3, "Number of cards dealt to each player")
	iter := flag.Int("iter", 100, "Number of CFR iterations")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	duel := qcards.NewRandomDuel(*cardsPerPlayer, rng)
	glog.Infof("Dealt duel: %v", duel)

	total := 0
	tree.Visit(duel, func(node cfr.GameTreeNode) {
		total++
	})
	glog.Infof("Game tree has %d nodes", total)

	policy := cfr.NewPolicyTable(cfr.DiscountParams{})
	vanillaCFR := cfr.New(policy)
	expectedValue := float32(0.0)
	for i := 1; i <= *iter; i++ {
		expectedValue += vanillaCFR.Run(duel)
		if i%10 == 0 {
			glog.Infof("[iter %d] Expected value for %v: %.4f",
				i, qcards.Player0, expectedValue/float32(i))
		}

		policy.Update()
	}

	glog.Infof("Expected value is: %v", expectedValue/float32(*iter))
}
