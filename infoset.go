package qcards

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr"

	"github.com/matteoacrossi/QuantumCards/cards"
)

// InfoSet is the information available to one player of a duel: their
// own hand and the public move history. The opponent's remaining hand
// is hidden.
type InfoSet struct {
	Player  Player
	Hand    cards.Set
	History []Move
}

// Verify that we implement the interface.
var _ cfr.InfoSet = &InfoSet{}

// Key implements cfr.InfoSet.
func (is *InfoSet) Key() []byte {
	buf, _ := is.MarshalBinary()
	return buf
}

// Moves are packed into one byte each: card in the high nibble,
// player operands in the low two 2-bit fields.
func encodeMove(m Move) byte {
	return byte(m.Card)<<4 | byte(m.Players[0])<<2 | byte(m.Players[1])
}

func decodeMove(b byte) Move {
	return Move{
		Card:    cards.Card(b >> 4),
		Players: [2]int{int(b >> 2 & 0x3), int(b & 0x3)},
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (is *InfoSet) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 9+len(is.History))
	buf = append(buf, byte(is.Player))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(is.Hand))
	for _, m := range is.History {
		buf = append(buf, encodeMove(m))
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *InfoSet) UnmarshalBinary(buf []byte) error {
	if len(buf) < 9 {
		return errors.Errorf("buffer too short to hold infoset: %d bytes", len(buf))
	}

	is.Player = Player(buf[0])
	is.Hand = cards.Set(binary.LittleEndian.Uint64(buf[1:9]))

	if len(is.History) > 0 { // Clear
		is.History = is.History[:0]
	}
	for _, b := range buf[9:] {
		is.History = append(is.History, decodeMove(b))
	}

	return nil
}
