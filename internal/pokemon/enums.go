package pokemon

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned by the Parse* helpers for an unrecognised option name.
var ErrUnknownName = errors.New("unknown name")

// Game identifies the cartridge a Pokémon was met in (Origins bits 7-10).
type Game uint8

const (
	GameColosseumBonus Game = 0
	GameSapphire       Game = 1
	GameRuby           Game = 2
	GameEmerald        Game = 3
	GameFireRed        Game = 4
	GameLeafGreen      Game = 5
	GameColosseumXD    Game = 15
)

var gameNames = map[string]Game{
	"colosseum-bonus": GameColosseumBonus,
	"sapphire":        GameSapphire,
	"ruby":            GameRuby,
	"emerald":         GameEmerald,
	"firered":         GameFireRed,
	"leafgreen":       GameLeafGreen,
	"colosseum-xd":    GameColosseumXD,
}

// ParseGame maps a CLI name (sapphire, firered, ...) to a Game.
func ParseGame(name string) (Game, error) {
	g, ok := gameNames[name]
	if !ok {
		return 0, fmt.Errorf("game %q: %w (want colosseum-bonus|sapphire|ruby|emerald|firered|leafgreen|colosseum-xd)", name, ErrUnknownName)
	}
	return g, nil
}

func (g Game) String() string {
	for name, v := range gameNames {
		if v == g {
			return name
		}
	}
	return fmt.Sprintf("game(%d)", uint8(g))
}

// Ball is the Poké Ball a Pokémon was caught in (Origins bits 11-14).
type Ball uint8

const (
	BallMaster   Ball = 1
	BallUltra    Ball = 2
	BallGreat    Ball = 3
	BallStandard Ball = 4
	BallSafari   Ball = 5
	BallDive     Ball = 7
	BallNest     Ball = 8
	BallRepeat   Ball = 9
	BallTimer    Ball = 10
	BallLuxury   Ball = 11
	BallPremier  Ball = 12
)

var ballNames = map[string]Ball{
	"master":   BallMaster,
	"ultra":    BallUltra,
	"great":    BallGreat,
	"standard": BallStandard,
	"safari":   BallSafari,
	"dive":     BallDive,
	"nest":     BallNest,
	"repeat":   BallRepeat,
	"timer":    BallTimer,
	"luxury":   BallLuxury,
	"premier":  BallPremier,
}

// ParseBall maps a CLI name (master, ultra, ...) to a Ball.
func ParseBall(name string) (Ball, error) {
	b, ok := ballNames[name]
	if !ok {
		return 0, fmt.Errorf("pokeball %q: %w (want master|ultra|great|standard|safari|dive|nest|repeat|timer|luxury|premier)", name, ErrUnknownName)
	}
	return b, nil
}

func (b Ball) String() string {
	for name, v := range ballNames {
		if v == b {
			return name
		}
	}
	return fmt.Sprintf("ball(%d)", uint8(b))
}

// Gender of the original trainer (Origins bit 15).
type Gender uint8

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

// ParseGender accepts "male" or "female".
func ParseGender(name string) (Gender, error) {
	switch name {
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	}
	return 0, fmt.Errorf("gender %q: %w (want male|female)", name, ErrUnknownName)
}

func (g Gender) String() string {
	if g == GenderFemale {
		return "female"
	}
	return "male"
}

// Ability selects the species' primary or secondary ability (IVs bit 31).
type Ability uint8

const (
	AbilityPrimary   Ability = 0
	AbilitySecondary Ability = 1
)

// Marking is a bit index in the record's markings byte.
type Marking uint8

const (
	MarkingBullet   Marking = 0
	MarkingSquare   Marking = 1
	MarkingTriangle Marking = 2
	MarkingHeart    Marking = 3
)

// Stat indexes the six battle stats in the order EVs and IVs store them.
type Stat int

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpeed
	StatSpAttack
	StatSpDefense
)

// Stats lists every Stat in storage order.
var Stats = [6]Stat{StatHP, StatAttack, StatDefense, StatSpeed, StatSpAttack, StatSpDefense}

func (s Stat) String() string {
	switch s {
	case StatHP:
		return "hp"
	case StatAttack:
		return "attack"
	case StatDefense:
		return "defense"
	case StatSpeed:
		return "speed"
	case StatSpAttack:
		return "special-attack"
	case StatSpDefense:
		return "special-defense"
	}
	return fmt.Sprintf("stat(%d)", int(s))
}
