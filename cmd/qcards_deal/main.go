// Deal hands from the core deck, play the cards out at random, and
// score the resulting game.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/glog"

	qcards "github.com/matteoacrossi/QuantumCards"
	"github.com/matteoacrossi/QuantumCards/cards"
)

func main() {
	players := flag.Int("players", 3, "Number of players (1-5)")
	cardsPerPlayer := flag.Int("cards_per_player", 4, "Number of cards dealt to each player")
	shots := flag.Int("shots", qcards.DefaultShots, "Number of measurement shots")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	flag.Parse()

	if *players < qcards.MinPlayers || *players > qcards.MaxPlayers {
		glog.Exitf("Number of players must be in [%d, %d], got %d",
			qcards.MinPlayers, qcards.MaxPlayers, *players)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	deck := cards.CoreDeck
	if *players == 1 {
		deck = cards.SoloDeck
	}
	hands := cards.Deal(deck, *players, *cardsPerPlayer, rng)
	for p, hand := range hands {
		glog.Infof("Player %d dealt %v", p+1, hand)
	}

	game := playOut(hands, *players, rng)
	fmt.Printf("Game: %s\n", game)

	score := qcards.GetScores(game.String(), *players, &qcards.ScoreOptions{
		Shots: *shots,
		Rng:   rng,
	})
	for p := 0; p < *players; p++ {
		fmt.Printf("Player %d: %d / %d\n", p+1, score[p], *shots)
	}
}

// playOut has each player in turn play a random card from their hand
// on random target players until all hands are empty.
func playOut(hands []cards.Set, numPlayers int, rng *rand.Rand) *qcards.Game {
	game := &qcards.Game{NumPlayers: numPlayers}
	remaining := true
	for remaining {
		remaining = false
		for p := range hands {
			if hands[p].IsEmpty() {
				continue
			}
			remaining = true

			held := hands[p].AsSlice()
			card := held[rng.Intn(len(held))]
			hands[p].Remove(card)
			game.Moves = append(game.Moves, randomMove(card, numPlayers, rng))
		}
	}
	return game
}

func randomMove(card cards.Card, numPlayers int, rng *rand.Rand) qcards.Move {
	move := qcards.Move{Card: card}
	move.Players[0] = rng.Intn(numPlayers) + 1
	if card.Arity() == 2 {
		// Two-qubit cards only appear in decks for 2+ players.
		other := rng.Intn(numPlayers-1) + 1
		if other >= move.Players[0] {
			other++
		}
		move.Players[1] = other
	}
	return move
}
