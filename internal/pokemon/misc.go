package pokemon

import (
	"fmt"

	"github.com/udisondev/gen3pkm/internal/packet"
)

// Pokerus packs infection state: days remaining in bits 0-3, strain in bits 4-7.
type Pokerus uint8

// NewPokerus packs days and strain (each truncated to 4 bits).
func NewPokerus(days, strain uint8) Pokerus {
	v := setField(0, 0, 4, uint32(days))
	return Pokerus(setField(v, 4, 4, uint32(strain)))
}

func (p Pokerus) DaysRemaining() uint8 { return uint8(field(uint32(p), 0, 4)) }
func (p Pokerus) Strain() uint8        { return uint8(field(uint32(p), 4, 4)) }

// Origins packs where and how a Pokémon was obtained.
//
// Bits: level met 0-6, game 7-10, ball 11-14, trainer gender 15.
type Origins uint16

func (o Origins) LevelMet() uint8 { return uint8(field(uint32(o), 0, 7)) }
func (o Origins) Game() Game      { return Game(field(uint32(o), 7, 4)) }
func (o Origins) Ball() Ball      { return Ball(field(uint32(o), 11, 4)) }

func (o Origins) TrainerGender() Gender {
	return Gender(field(uint32(o), 15, 1))
}

func (o Origins) WithLevelMet(level uint8) Origins {
	return Origins(setField(uint32(o), 0, 7, uint32(level)))
}

func (o Origins) WithGame(g Game) Origins {
	return Origins(setField(uint32(o), 7, 4, uint32(g)))
}

func (o Origins) WithBall(b Ball) Origins {
	return Origins(setField(uint32(o), 11, 4, uint32(b)))
}

func (o Origins) WithTrainerGender(g Gender) Origins {
	return Origins(setField(uint32(o), 15, 1, uint32(g)))
}

// IVs packs six 5-bit individual values (Stat order, 5 bits each from bit 0),
// the egg flag at bit 30 and the ability bit at 31.
type IVs uint32

const (
	ivWidth   = 5
	ivEggBit  = 30
	ivAbility = 31
)

// Get returns the individual value (0-31) for s.
func (v IVs) Get(s Stat) uint8 {
	return uint8(field(uint32(v), uint(s)*ivWidth, ivWidth))
}

// With returns v with s set to iv (truncated to 5 bits).
func (v IVs) With(s Stat, iv uint8) IVs {
	return IVs(setField(uint32(v), uint(s)*ivWidth, ivWidth, uint32(iv)))
}

func (v IVs) IsEgg() bool { return flag(uint32(v), ivEggBit) }

func (v IVs) WithEgg(egg bool) IVs {
	return IVs(setFlag(uint32(v), ivEggBit, egg))
}

func (v IVs) Ability() Ability { return Ability(field(uint32(v), ivAbility, 1)) }

func (v IVs) WithAbility(a Ability) IVs {
	return IVs(setField(uint32(v), ivAbility, 1, uint32(a)))
}

// Contest names the five contest categories whose ribbon rank (0-4 in game, 3 bits wide) is stored in Ribbons.
type Contest int

const (
	ContestCool Contest = iota
	ContestBeauty
	ContestCute
	ContestSmart
	ContestTough
)

// Ribbon is the bit position of a single-bit ribbon flag.
type Ribbon uint

const (
	RibbonChampion Ribbon = 15
	RibbonWinning  Ribbon = 16
	RibbonVictory  Ribbon = 17
	RibbonArtist   Ribbon = 18
	RibbonEffort   Ribbon = 19
	RibbonSpecial1 Ribbon = 20
	RibbonSpecial2 Ribbon = 21
	RibbonSpecial3 Ribbon = 22
	RibbonSpecial4 Ribbon = 23
	RibbonSpecial5 Ribbon = 24
	RibbonSpecial6 Ribbon = 25
	// Bits 26-30 are padding.
	RibbonObedience Ribbon = 31
)

// Ribbons packs contest ranks (3 bits per Contest from bit 0) and single-bit ribbons.
type Ribbons uint32

func (r Ribbons) Rank(c Contest) uint8 {
	return uint8(field(uint32(r), uint(c)*3, 3))
}

func (r Ribbons) WithRank(c Contest, rank uint8) Ribbons {
	return Ribbons(setField(uint32(r), uint(c)*3, 3, uint32(rank)))
}

func (r Ribbons) Has(rb Ribbon) bool { return flag(uint32(r), uint(rb)) }

func (r Ribbons) With(rb Ribbon, on bool) Ribbons {
	return Ribbons(setFlag(uint32(r), uint(rb), on))
}

// Misc is the pokérus/origins/IV/ribbon substructure.
//
// Layout (12 bytes, LE):
//   - pokérus      (uint8)
//   - met location (uint8)
//   - origins      (uint16)
//   - IVs          (uint32)
//   - ribbons      (uint32)
type Misc struct {
	Pokerus     Pokerus
	MetLocation uint8
	Origins     Origins
	IVs         IVs
	Ribbons     Ribbons
}

// Kind implements Substructure.
func (Misc) Kind() Kind { return KindMisc }

// Bytes returns the 12-byte wire form.
func (m Misc) Bytes() (out [SubstructureSize]byte) {
	w := packet.Get()
	defer w.Put()

	_ = w.WriteByte(byte(m.Pokerus))
	_ = w.WriteByte(m.MetLocation)
	w.WriteShort(uint16(m.Origins))
	w.WriteInt(uint32(m.IVs))
	w.WriteInt(uint32(m.Ribbons))

	copy(out[:], w.Bytes())
	return out
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m Misc) MarshalBinary() ([]byte, error) {
	b := m.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Misc) UnmarshalBinary(data []byte) error {
	if len(data) != SubstructureSize {
		return fmt.Errorf("misc: %w (got %d)", ErrSubstructureSize, len(data))
	}
	r := packet.NewReader(data)

	pokerus, err := r.ReadByte()
	if err != nil {
		return err
	}
	location, err := r.ReadByte()
	if err != nil {
		return err
	}
	origins, err := r.ReadShort()
	if err != nil {
		return err
	}
	ivs, err := r.ReadInt()
	if err != nil {
		return err
	}
	ribbons, err := r.ReadInt()
	if err != nil {
		return err
	}

	*m = Misc{
		Pokerus:     Pokerus(pokerus),
		MetLocation: location,
		Origins:     Origins(origins),
		IVs:         IVs(ivs),
		Ribbons:     Ribbons(ribbons),
	}
	return nil
}
