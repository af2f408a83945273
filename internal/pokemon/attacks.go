package pokemon

import (
	"fmt"

	"github.com/udisondev/gen3pkm/internal/packet"
)

// Attacks is the move-set substructure: four move indices followed by their current PP.
type Attacks struct {
	Moves [4]uint16
	PP    [4]uint8
}

// Kind implements Substructure.
func (Attacks) Kind() Kind { return KindAttacks }

// Bytes returns the 12-byte wire form.
func (a Attacks) Bytes() (out [SubstructureSize]byte) {
	w := packet.Get()
	defer w.Put()

	for _, m := range a.Moves {
		w.WriteShort(m)
	}
	w.WriteBytes(a.PP[:])

	copy(out[:], w.Bytes())
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (a Attacks) MarshalBinary() ([]byte, error) {
	b := a.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Attacks) UnmarshalBinary(data []byte) error {
	if len(data) != SubstructureSize {
		return fmt.Errorf("attacks: %w (got %d)", ErrSubstructureSize, len(data))
	}
	r := packet.NewReader(data)

	var out Attacks
	for i := range out.Moves {
		m, err := r.ReadShort()
		if err != nil {
			return fmt.Errorf("reading move %d: %w", i, err)
		}
		out.Moves[i] = m
	}
	if err := r.ReadInto(out.PP[:]); err != nil {
		return fmt.Errorf("reading pp: %w", err)
	}

	*a = out
	return nil
}
