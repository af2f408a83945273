package pokemon

import (
	"errors"
	"fmt"

	"github.com/udisondev/gen3pkm/internal/charset"
	"github.com/udisondev/gen3pkm/internal/crypto"
	"github.com/udisondev/gen3pkm/internal/packet"
)

// RecordSize is the size of a party Pokémon record.
const RecordSize = 100

// ErrRecordSize is returned when unmarshalling a record from a buffer of the wrong length.
var ErrRecordSize = errors.New("record must be 100 bytes")

// Record is a party Pokémon as stored in memory and in save files.
//
// Layout (100 bytes, LE):
//   - personality      (uint32) @0
//   - trainer id       (uint32) @4
//   - nickname         ([10]byte) @8
//   - language         (uint16) @18
//   - trainer name     ([7]byte) @20
//   - markings         (uint8) @27
//   - checksum         (uint16) @28
//   - unknown          (uint16) @30
//   - data             ([48]byte, encrypted) @32
//   - status           (uint32) @80
//   - level            (uint8) @84
//   - pokérus left     (uint8) @85
//   - current HP, max HP, attack, defense, speed, sp. attack, sp. defense (uint16 each) @86
//
// Level and the stats after it are caches the game recalculates on load.
type Record struct {
	Personality uint32
	TrainerID   uint32
	Nickname    [charset.NicknameLength]byte
	Language    charset.Language
	TrainerName [charset.TrainerNameLength]byte
	Markings    uint8
	Checksum    uint16
	Unknown     uint16
	Data        Data

	Status           Status
	Level            uint8
	PokerusRemaining uint8
	CurrentHP        uint16
	MaxHP            uint16
	Attack           uint16
	Defense          uint16
	Speed            uint16
	SpAttack         uint16
	SpDefense        uint16
}

// Seal encrypts subs into r.Data and stores the checksum, using r's personality and trainer id.
func (r *Record) Seal(subs Substructures) {
	r.Data, r.Checksum = EncodeData(r.Personality, r.TrainerID, subs.Growth, subs.Attacks, subs.Condition, subs.Misc)
}

// Substructures decrypts and verifies r.Data.
func (r *Record) Substructures() (Substructures, error) {
	return DecodeData(r.Personality, r.TrainerID, r.Data, r.Checksum)
}

// Verify reports whether the data block decrypts to the stored checksum.
func (r *Record) Verify() error {
	plain := r.Data
	crypto.XORPass(plain[:], 0, DataSize, crypto.DataKey(r.Personality, r.TrainerID))
	if !crypto.VerifyChecksum16(plain[:], r.Checksum) {
		return fmt.Errorf("record %#08x: %w", r.Personality, ErrChecksumMismatch)
	}
	return nil
}

// HasMarking reports whether marking mk is set.
func (r *Record) HasMarking(mk Marking) bool {
	return r.Markings&(1<<mk) != 0
}

// NicknameString decodes the nickname field. Names are read with the English
// table whatever the language field says, matching how they are written.
func (r *Record) NicknameString() (string, error) {
	return charset.DecodeName(r.Nickname[:], charset.English)
}

// TrainerNameString decodes the original trainer name field.
func (r *Record) TrainerNameString() (string, error) {
	return charset.DecodeName(r.TrainerName[:], charset.English)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r *Record) MarshalBinary() ([]byte, error) {
	w := packet.NewWriter(RecordSize)

	w.WriteInt(r.Personality)
	w.WriteInt(r.TrainerID)
	w.WriteBytes(r.Nickname[:])
	w.WriteShort(uint16(r.Language))
	w.WriteBytes(r.TrainerName[:])
	if err := w.WriteByte(r.Markings); err != nil {
		return nil, fmt.Errorf("writing markings: %w", err)
	}
	w.WriteShort(r.Checksum)
	w.WriteShort(r.Unknown)
	w.WriteBytes(r.Data[:])
	w.WriteInt(uint32(r.Status))
	if err := w.WriteByte(r.Level); err != nil {
		return nil, fmt.Errorf("writing level: %w", err)
	}
	if err := w.WriteByte(r.PokerusRemaining); err != nil {
		return nil, fmt.Errorf("writing pokerus: %w", err)
	}
	for _, v := range r.stats() {
		w.WriteShort(*v)
	}

	if w.Len() != RecordSize {
		return nil, fmt.Errorf("marshal record: wrote %d bytes: %w", w.Len(), ErrRecordSize)
	}
	return w.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The data block is copied as stored; call Substructures to decrypt it.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("unmarshal record: %w (got %d)", ErrRecordSize, len(data))
	}
	rd := packet.NewReader(data)

	var out Record
	var err error
	if out.Personality, err = rd.ReadInt(); err != nil {
		return fmt.Errorf("reading personality: %w", err)
	}
	if out.TrainerID, err = rd.ReadInt(); err != nil {
		return fmt.Errorf("reading trainer id: %w", err)
	}
	if err := rd.ReadInto(out.Nickname[:]); err != nil {
		return fmt.Errorf("reading nickname: %w", err)
	}
	lang, err := rd.ReadShort()
	if err != nil {
		return fmt.Errorf("reading language: %w", err)
	}
	out.Language = charset.Language(lang)
	if err := rd.ReadInto(out.TrainerName[:]); err != nil {
		return fmt.Errorf("reading trainer name: %w", err)
	}
	if out.Markings, err = rd.ReadByte(); err != nil {
		return fmt.Errorf("reading markings: %w", err)
	}
	if out.Checksum, err = rd.ReadShort(); err != nil {
		return fmt.Errorf("reading checksum: %w", err)
	}
	if out.Unknown, err = rd.ReadShort(); err != nil {
		return fmt.Errorf("reading unknown: %w", err)
	}
	if err := rd.ReadInto(out.Data[:]); err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	status, err := rd.ReadInt()
	if err != nil {
		return fmt.Errorf("reading status: %w", err)
	}
	out.Status = Status(status)
	if out.Level, err = rd.ReadByte(); err != nil {
		return fmt.Errorf("reading level: %w", err)
	}
	if out.PokerusRemaining, err = rd.ReadByte(); err != nil {
		return fmt.Errorf("reading pokerus: %w", err)
	}
	for _, v := range out.stats() {
		if *v, err = rd.ReadShort(); err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
	}
	if n := rd.Remaining(); n != 0 {
		return fmt.Errorf("unmarshal record: %d bytes left over: %w", n, ErrRecordSize)
	}

	*r = out
	return nil
}

func (r *Record) stats() [7]*uint16 {
	return [7]*uint16{&r.CurrentHP, &r.MaxHP, &r.Attack, &r.Defense, &r.Speed, &r.SpAttack, &r.SpDefense}
}
