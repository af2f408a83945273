package pokemon

import (
	"errors"
	"fmt"

	"github.com/udisondev/gen3pkm/internal/packet"
)

// SubstructureSize is the byte size of every data substructure.
const SubstructureSize = 12

// ErrSubstructureSize is returned when unmarshalling a substructure from a buffer of the wrong length.
var ErrSubstructureSize = errors.New("substructure must be 12 bytes")

// PPBonus packs the number of PP Ups (0-3) applied to each move slot.
// Slot n occupies bits 2n..2n+1.
type PPBonus uint8

// Move returns the PP Up count for move slot 0-3.
func (p PPBonus) Move(slot int) uint8 {
	return uint8(field(uint32(p), uint(slot)*2, 2))
}

// WithMove returns p with slot's count set to n (truncated to 2 bits).
func (p PPBonus) WithMove(slot int, n uint8) PPBonus {
	return PPBonus(setField(uint32(p), uint(slot)*2, 2, uint32(n)))
}

// Growth is the species/experience substructure.
//
// Layout (12 bytes, LE):
//   - species    (uint16)
//   - held item  (uint16)
//   - experience (uint32)
//   - PP bonus   (uint8)
//   - friendship (uint8)
//   - unknown    (uint16)
type Growth struct {
	Species    uint16
	HeldItem   uint16
	Experience uint32
	PPBonus    PPBonus
	Friendship uint8
	Unknown    uint16
}

// Kind implements Substructure.
func (Growth) Kind() Kind { return KindGrowth }

// Bytes returns the 12-byte wire form.
func (g Growth) Bytes() (out [SubstructureSize]byte) {
	w := packet.Get()
	defer w.Put()

	w.WriteShort(g.Species)
	w.WriteShort(g.HeldItem)
	w.WriteInt(g.Experience)
	_ = w.WriteByte(byte(g.PPBonus))
	_ = w.WriteByte(g.Friendship)
	w.WriteShort(g.Unknown)

	copy(out[:], w.Bytes())
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (g Growth) MarshalBinary() ([]byte, error) {
	b := g.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (g *Growth) UnmarshalBinary(data []byte) error {
	if len(data) != SubstructureSize {
		return fmt.Errorf("growth: %w (got %d)", ErrSubstructureSize, len(data))
	}
	r := packet.NewReader(data)

	species, err := r.ReadShort()
	if err != nil {
		return err
	}
	item, err := r.ReadShort()
	if err != nil {
		return err
	}
	exp, err := r.ReadInt()
	if err != nil {
		return err
	}
	bonus, err := r.ReadByte()
	if err != nil {
		return err
	}
	friendship, err := r.ReadByte()
	if err != nil {
		return err
	}
	unknown, err := r.ReadShort()
	if err != nil {
		return err
	}

	*g = Growth{
		Species:    species,
		HeldItem:   item,
		Experience: exp,
		PPBonus:    PPBonus(bonus),
		Friendship: friendship,
		Unknown:    unknown,
	}
	return nil
}
