package config

import (
	"errors"
	"fmt"

	"github.com/udisondev/gen3pkm/internal/charset"
	"github.com/udisondev/gen3pkm/internal/pokemon"
)

// StatValues holds one value per battle stat, in storage order.
type StatValues struct {
	HP        uint8 `yaml:"hp"`
	Attack    uint8 `yaml:"attack"`
	Defense   uint8 `yaml:"defense"`
	Speed     uint8 `yaml:"speed"`
	SpAttack  uint8 `yaml:"special_attack"`
	SpDefense uint8 `yaml:"special_defense"`
}

// Array returns the values indexed by pokemon.Stat.
func (s StatValues) Array() [6]uint8 {
	return [6]uint8{s.HP, s.Attack, s.Defense, s.Speed, s.SpAttack, s.SpDefense}
}

func uniformStats(v uint8) StatValues {
	return StatValues{HP: v, Attack: v, Defense: v, Speed: v, SpAttack: v, SpDefense: v}
}

// Contest holds the contest condition values.
type Contest struct {
	Coolness  uint8 `yaml:"coolness"`
	Beauty    uint8 `yaml:"beauty"`
	Cuteness  uint8 `yaml:"cuteness"`
	Smartness uint8 `yaml:"smartness"`
	Toughness uint8 `yaml:"toughness"`
	Feel      uint8 `yaml:"feel"`
}

// Pokerus is the infection state stored in the Misc substructure.
type Pokerus struct {
	Days   uint8 `yaml:"days"`
	Strain uint8 `yaml:"strain"`
}

// Trainer identifies the original trainer.
type Trainer struct {
	// ID is random when nil.
	ID     *uint32 `yaml:"id"`
	Gender string  `yaml:"gender"`
	Name   string  `yaml:"name"`
}

// BattleStats are the cached party stats after the data block.
type BattleStats struct {
	CurrentHP uint16 `yaml:"current_hp"`
	MaxHP     uint16 `yaml:"max_hp"`
	Attack    uint16 `yaml:"attack"`
	Defense   uint16 `yaml:"defense"`
	Speed     uint16 `yaml:"speed"`
	SpAttack  uint16 `yaml:"special_attack"`
	SpDefense uint16 `yaml:"special_defense"`
}

// Template describes one record to generate.
// Enumerated fields are kept as their CLI names and parsed by Validate and the generator.
type Template struct {
	Nickname string `yaml:"nickname"`

	// Growth
	Species    uint16   `yaml:"species"`
	HeldItem   uint16   `yaml:"held_item"`
	Experience uint32   `yaml:"experience"`
	PPBonus    [4]uint8 `yaml:"pp_bonus"`
	Friendship uint8    `yaml:"friendship"`

	// Attacks
	Moves   [4]uint16 `yaml:"moves"`
	MovesPP [4]uint8  `yaml:"moves_pp"`

	// Condition
	EVs     StatValues `yaml:"evs"`
	Contest Contest    `yaml:"contest"`

	// Misc
	Pokerus     Pokerus    `yaml:"pokerus"`
	MetLocation uint8      `yaml:"met_location"`
	MetLevel    uint8      `yaml:"met_level"`
	MetGame     string     `yaml:"met_game"`
	Pokeball    string     `yaml:"pokeball"`
	IVs         StatValues `yaml:"ivs"`
	Egg         bool       `yaml:"egg"`
	Ability     string     `yaml:"ability"`

	// Record
	Personality *uint32     `yaml:"personality"` // random when nil
	Trainer     Trainer     `yaml:"trainer"`
	Language    string      `yaml:"language"`
	Markings    uint8       `yaml:"markings"`
	Level       uint8       `yaml:"level"`
	PokerusLeft uint8       `yaml:"pokerus_left"`
	Stats       BattleStats `yaml:"stats"`
}

// DefaultTemplate returns the stock record: a level 1 Bulbasaur met by a
// fateful encounter in Sapphire, with maxed EVs, IVs and contest stats.
func DefaultTemplate() Template {
	return Template{
		Species:     1,
		Friendship:  0xFF,
		EVs:         uniformStats(0xFF),
		Contest:     Contest{Coolness: 0xFF, Beauty: 0xFF, Cuteness: 0xFF, Smartness: 0xFF, Toughness: 0xFF},
		MetLocation: 0xFF,
		MetLevel:    1,
		MetGame:     "sapphire",
		Pokeball:    "standard",
		IVs:         uniformStats(0x1F),
		Ability:     "primary",
		Trainer:     Trainer{Gender: "male"},
		Language:    "en",
		Level:       1,
		Stats: BattleStats{
			CurrentHP: 0xFF,
			MaxHP:     0xFF,
			Attack:    0xFF,
			Defense:   0xFF,
			Speed:     0xFF,
			SpAttack:  0xFF,
			SpDefense: 0xFF,
		},
	}
}

// ParseAbility accepts "primary" or "secondary".
func ParseAbility(name string) (pokemon.Ability, error) {
	switch name {
	case "primary":
		return pokemon.AbilityPrimary, nil
	case "secondary":
		return pokemon.AbilitySecondary, nil
	}
	return 0, fmt.Errorf("ability %q: %w (want primary|secondary)", name, pokemon.ErrUnknownName)
}

// Validate checks that every enumerated name parses.
func (t Template) Validate() error {
	var errs []error
	if _, err := pokemon.ParseGame(t.MetGame); err != nil {
		errs = append(errs, err)
	}
	if _, err := pokemon.ParseBall(t.Pokeball); err != nil {
		errs = append(errs, err)
	}
	if _, err := pokemon.ParseGender(t.Trainer.Gender); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseAbility(t.Ability); err != nil {
		errs = append(errs, err)
	}
	if _, err := charset.ParseLanguage(t.Language); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	return nil
}
