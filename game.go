// Package qcards implements the Q|Cards> card game: players' cards are
// quantum gates, a finished game is a quantum circuit over one qubit
// per player, and each player's score is the number of shots in which
// their qubit measured 1.
package qcards

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/matteoacrossi/QuantumCards/cards"
	"github.com/matteoacrossi/QuantumCards/circuit"
)

const (
	MinPlayers = 1
	MaxPlayers = 5
)

// Move is one played card together with the players it targets.
// Player numbers are 1-based, as in the game notation. Players[1] is
// unused for single-qubit cards. For CNOT, Players[0] is the control.
type Move struct {
	Card    cards.Card
	Players [2]int
}

// String renders the move in game notation, e.g. "H2" or "C12".
func (m Move) String() string {
	if m.Card.Arity() == 2 {
		return fmt.Sprintf("%c%d%d", m.Card.Letter(), m.Players[0], m.Players[1])
	}
	return fmt.Sprintf("%c%d", m.Card.Letter(), m.Players[0])
}

// Game is a parsed sequence of moves for a fixed number of players.
type Game struct {
	NumPlayers int
	Moves      []Move
}

// IsValidGame reports whether s is a well-formed game notation string
// for the given number of players: every move names a known gate
// letter followed by its player operands, operands are in range, and
// two-qubit moves target two distinct players. The empty string is a
// valid (empty) game.
func IsValidGame(s string, numPlayers int) bool {
	_, err := parseMoves(s, numPlayers)
	return err == nil
}

// ParseGame parses a game notation string into a Game.
func ParseGame(s string, numPlayers int) (*Game, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, errors.Errorf("number of players must be in [%d, %d], got %d",
			MinPlayers, MaxPlayers, numPlayers)
	}

	moves, err := parseMoves(s, numPlayers)
	if err != nil {
		return nil, err
	}

	return &Game{NumPlayers: numPlayers, Moves: moves}, nil
}

func parseMoves(s string, numPlayers int) ([]Move, error) {
	var moves []Move
	for i := 0; i < len(s); {
		card, ok := cards.FromLetter(s[i])
		if !ok {
			return nil, errors.Errorf("unknown gate %q at offset %d", s[i], i)
		}

		arity := card.Arity()
		if i+arity >= len(s) {
			return nil, errors.Errorf("%v at offset %d is missing player operands", card, i)
		}

		move := Move{Card: card}
		for j := 0; j < arity; j++ {
			d := s[i+1+j]
			if d < '1' || int(d-'0') > numPlayers {
				return nil, errors.Errorf("player %q at offset %d out of range for %d players",
					d, i+1+j, numPlayers)
			}
			move.Players[j] = int(d - '0')
		}

		if arity == 2 && move.Players[0] == move.Players[1] {
			return nil, errors.Errorf("%v at offset %d targets player %d twice",
				card, i, move.Players[0])
		}

		moves = append(moves, move)
		i += arity + 1
	}

	return moves, nil
}

// String renders the game back into notation.
func (g *Game) String() string {
	var sb strings.Builder
	for _, m := range g.Moves {
		sb.WriteString(m.String())
	}
	return sb.String()
}

var cardGate = map[cards.Card]circuit.GateType{
	cards.Identity: circuit.Identity,
	cards.Hadamard: circuit.Hadamard,
	cards.PauliX:   circuit.PauliX,
	cards.PauliY:   circuit.PauliY,
	cards.PauliZ:   circuit.PauliZ,
	cards.CNOT:     circuit.CNOT,
	cards.Swap:     circuit.Swap,
}

// Circuit builds the game's quantum circuit. assign maps 0-based
// player index to the qubit holding that player's state; nil assigns
// player p to qubit p.
func (g *Game) Circuit(assign []int) (*circuit.Circuit, error) {
	if assign == nil {
		assign = make([]int, g.NumPlayers)
		for p := range assign {
			assign[p] = p
		}
	}
	if len(assign) != g.NumPlayers {
		return nil, errors.Errorf("assignment covers %d players, game has %d",
			len(assign), g.NumPlayers)
	}

	c := circuit.New(g.NumPlayers)
	for _, m := range g.Moves {
		var err error
		if m.Card.Arity() == 2 {
			err = c.Append(cardGate[m.Card], assign[m.Players[0]-1], assign[m.Players[1]-1])
		} else {
			err = c.Append(cardGate[m.Card], assign[m.Players[0]-1])
		}
		if err != nil {
			return nil, errors.Wrapf(err, "cannot place move %v", m)
		}
	}

	return c, nil
}
