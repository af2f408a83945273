package pokemon

import (
	"errors"
	"fmt"

	"github.com/udisondev/gen3pkm/internal/crypto"
)

// DataSize is the size of the encrypted data block inside a record.
const DataSize = 4 * SubstructureSize

// ErrChecksumMismatch signals that a decrypted data block does not sum to the stored checksum.
var ErrChecksumMismatch = errors.New("data checksum mismatch")

// Data is the 48-byte data block in its stored (encrypted) form.
type Data [DataSize]byte

// Substructure is implemented by Growth, Attacks, Condition and Misc.
type Substructure interface {
	Kind() Kind
	Bytes() [SubstructureSize]byte
}

// Substructures groups the four decoded parts of a data block.
type Substructures struct {
	Growth    Growth
	Attacks   Attacks
	Condition Condition
	Misc      Misc
}

// Get returns the substructure of kind k.
func (s Substructures) Get(k Kind) Substructure {
	switch k {
	case KindGrowth:
		return s.Growth
	case KindAttacks:
		return s.Attacks
	case KindCondition:
		return s.Condition
	default:
		return s.Misc
	}
}

// EncodeData assembles the four substructures in the order selected by
// personality, checksums the plaintext and encrypts it with
// personality ^ trainerID. The checksum belongs in the record header, not in the block.
func EncodeData(personality, trainerID uint32, growth Growth, attacks Attacks, condition Condition, misc Misc) (Data, uint16) {
	parts := Substructures{Growth: growth, Attacks: attacks, Condition: condition, Misc: misc}
	order := OrderOf(personality)

	var buf Data
	for slot, kind := range order.Kinds() {
		b := parts.Get(kind).Bytes()
		copy(buf[slot*SubstructureSize:], b[:])
	}

	checksum := crypto.Checksum16(buf[:])
	crypto.XORPass(buf[:], 0, DataSize, crypto.DataKey(personality, trainerID))
	return buf, checksum
}

// DecodeData reverses EncodeData. The recovered plaintext must sum to checksum;
// otherwise the returned error wraps ErrChecksumMismatch.
func DecodeData(personality, trainerID uint32, data Data, checksum uint16) (Substructures, error) {
	crypto.XORPass(data[:], 0, DataSize, crypto.DataKey(personality, trainerID))

	if got := crypto.Checksum16(data[:]); got != checksum {
		return Substructures{}, fmt.Errorf("decoding data (personality=%#08x): %w: got %#04x, want %#04x",
			personality, ErrChecksumMismatch, got, checksum)
	}

	order := OrderOf(personality)
	slot := func(k Kind) []byte {
		off := order.SlotOf(k) * SubstructureSize
		return data[off : off+SubstructureSize]
	}

	var out Substructures
	if err := out.Growth.UnmarshalBinary(slot(KindGrowth)); err != nil {
		return Substructures{}, err
	}
	if err := out.Attacks.UnmarshalBinary(slot(KindAttacks)); err != nil {
		return Substructures{}, err
	}
	if err := out.Condition.UnmarshalBinary(slot(KindCondition)); err != nil {
		return Substructures{}, err
	}
	if err := out.Misc.UnmarshalBinary(slot(KindMisc)); err != nil {
		return Substructures{}, err
	}
	return out, nil
}
