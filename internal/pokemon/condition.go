package pokemon

import "fmt"

// Condition holds effort values and contest stats, one byte each.
type Condition struct {
	EVs [6]uint8 // indexed by Stat

	Coolness  uint8
	Beauty    uint8
	Cuteness  uint8
	Smartness uint8
	Toughness uint8
	Feel      uint8 // a.k.a. luster
}

// Kind implements Substructure.
func (Condition) Kind() Kind { return KindCondition }

// EV returns the effort value for s.
func (c Condition) EV(s Stat) uint8 {
	return c.EVs[s]
}

// Bytes returns the 12-byte wire form.
func (c Condition) Bytes() (out [SubstructureSize]byte) {
	copy(out[:6], c.EVs[:])
	out[6] = c.Coolness
	out[7] = c.Beauty
	out[8] = c.Cuteness
	out[9] = c.Smartness
	out[10] = c.Toughness
	out[11] = c.Feel
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Condition) MarshalBinary() ([]byte, error) {
	b := c.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Condition) UnmarshalBinary(data []byte) error {
	if len(data) != SubstructureSize {
		return fmt.Errorf("condition: %w (got %d)", ErrSubstructureSize, len(data))
	}
	var out Condition
	copy(out.EVs[:], data[:6])
	out.Coolness = data[6]
	out.Beauty = data[7]
	out.Cuteness = data[8]
	out.Smartness = data[9]
	out.Toughness = data[10]
	out.Feel = data[11]

	*c = out
	return nil
}
