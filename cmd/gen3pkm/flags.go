package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/udisondev/gen3pkm/internal/config"
)

// templateFlags registers template overrides on a flag set. Only flags the
// user actually set are applied, so YAML values survive otherwise.
type templateFlags struct {
	fs    *pflag.FlagSet
	def   config.Template
	apply map[string]func(*config.Template) error
}

func newTemplateFlags(fs *pflag.FlagSet) *templateFlags {
	return &templateFlags{
		fs:    fs,
		def:   config.DefaultTemplate(),
		apply: make(map[string]func(*config.Template) error),
	}
}

func (f *templateFlags) uint8(name, short, usage string, field func(*config.Template) *uint8) {
	v := f.fs.Uint8P(name, short, *field(&f.def), usage)
	f.apply[name] = func(t *config.Template) error {
		*field(t) = *v
		return nil
	}
}

func (f *templateFlags) uint16(name, short, usage string, field func(*config.Template) *uint16) {
	v := f.fs.Uint16P(name, short, *field(&f.def), usage)
	f.apply[name] = func(t *config.Template) error {
		*field(t) = *v
		return nil
	}
}

func (f *templateFlags) uint32(name, short, usage string, field func(*config.Template) *uint32) {
	v := f.fs.Uint32P(name, short, *field(&f.def), usage)
	f.apply[name] = func(t *config.Template) error {
		*field(t) = *v
		return nil
	}
}

func (f *templateFlags) str(name, short, usage string, field func(*config.Template) *string) {
	v := f.fs.StringP(name, short, *field(&f.def), usage)
	f.apply[name] = func(t *config.Template) error {
		*field(t) = *v
		return nil
	}
}

// parsed registers a string flag whose value is decoded by parse.
func (f *templateFlags) parsed(name, short, def, usage string, parse func(*config.Template, string) error) {
	v := f.fs.StringP(name, short, def, usage)
	f.apply[name] = func(t *config.Template) error {
		if err := parse(t, *v); err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		return nil
	}
}

// toggle registers a boolean flag that runs set when given as true.
func (f *templateFlags) toggle(name, short, usage string, set func(*config.Template)) {
	v := f.fs.BoolP(name, short, false, usage)
	f.apply[name] = func(t *config.Template) error {
		if *v {
			set(t)
		}
		return nil
	}
}

// Apply copies every changed flag onto tpl.
func (f *templateFlags) Apply(tpl *config.Template) error {
	var err error
	f.fs.Visit(func(fl *pflag.Flag) {
		apply, ok := f.apply[fl.Name]
		if !ok || err != nil {
			return
		}
		err = apply(tpl)
	})
	return err
}

// splitFields parses "a:b:..." into exactly n unsigned values of the given bit size.
func splitFields(s string, n, bits int) ([]uint64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d colon-separated values", s, n)
	}
	out := make([]uint64, n)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseQuad8(s string) ([4]uint8, error) {
	var out [4]uint8
	vals, err := splitFields(s, 4, 8)
	if err != nil {
		return out, err
	}
	for i, v := range vals {
		out[i] = uint8(v)
	}
	return out, nil
}

func parseQuad16(s string) ([4]uint16, error) {
	var out [4]uint16
	vals, err := splitFields(s, 4, 16)
	if err != nil {
		return out, err
	}
	for i, v := range vals {
		out[i] = uint16(v)
	}
	return out, nil
}

// parseTrainer parses "<id>:<male|female>".
func parseTrainer(s string) (uint32, string, error) {
	id, gender, ok := strings.Cut(s, ":")
	if !ok {
		return 0, "", fmt.Errorf("%q: want <id>:<male|female>", s)
	}
	v, err := strconv.ParseUint(id, 0, 32)
	if err != nil {
		return 0, "", fmt.Errorf("trainer id %q: %w", id, err)
	}
	return uint32(v), gender, nil
}

func registerTemplateFlags(fs *pflag.FlagSet) *templateFlags {
	f := newTemplateFlags(fs)

	// Growth
	f.uint16("species", "s", "Species index number", func(t *config.Template) *uint16 { return &t.Species })
	f.uint16("item", "i", "Held item index number", func(t *config.Template) *uint16 { return &t.HeldItem })
	f.uint32("experience", "x", "Experience points", func(t *config.Template) *uint32 { return &t.Experience })
	f.parsed("pp-bonus", "B", "0:0:0:0", "PP bonuses applied per move slot, <a>:<b>:<c>:<d> (0-3 each)",
		func(t *config.Template, s string) (err error) {
			t.PPBonus, err = parseQuad8(s)
			return err
		})
	f.uint8("friendship", "f", "Friendship", func(t *config.Template) *uint8 { return &t.Friendship })

	// Attacks
	f.parsed("moves", "m", "0:0:0:0", "Move index numbers, <a>:<b>:<c>:<d>",
		func(t *config.Template, s string) (err error) {
			t.Moves, err = parseQuad16(s)
			return err
		})
	f.parsed("moves-pp", "P", "0:0:0:0", "Current PP per move slot, <a>:<b>:<c>:<d>",
		func(t *config.Template, s string) (err error) {
			t.MovesPP, err = parseQuad8(s)
			return err
		})

	// Condition
	f.uint8("ev-hp", "j", "HP effort value", func(t *config.Template) *uint8 { return &t.EVs.HP })
	f.uint8("ev-attack", "v", "Attack effort value", func(t *config.Template) *uint8 { return &t.EVs.Attack })
	f.uint8("ev-defense", "e", "Defense effort value", func(t *config.Template) *uint8 { return &t.EVs.Defense })
	f.uint8("ev-speed", "V", "Speed effort value", func(t *config.Template) *uint8 { return &t.EVs.Speed })
	f.uint8("ev-special-attack", "K", "Special attack effort value", func(t *config.Template) *uint8 { return &t.EVs.SpAttack })
	f.uint8("ev-special-defense", "E", "Special defense effort value", func(t *config.Template) *uint8 { return &t.EVs.SpDefense })
	f.uint8("coolness", "c", "Coolness condition", func(t *config.Template) *uint8 { return &t.Contest.Coolness })
	f.uint8("beauty", "y", "Beauty condition", func(t *config.Template) *uint8 { return &t.Contest.Beauty })
	f.uint8("cuteness", "C", "Cuteness condition", func(t *config.Template) *uint8 { return &t.Contest.Cuteness })
	f.uint8("smartness", "r", "Smartness condition", func(t *config.Template) *uint8 { return &t.Contest.Smartness })
	f.uint8("toughness", "T", "Toughness condition", func(t *config.Template) *uint8 { return &t.Contest.Toughness })
	f.uint8("feel", "F", "Feel (luster)", func(t *config.Template) *uint8 { return &t.Contest.Feel })

	// Misc
	f.parsed("pokerus", "R", "0:0", "Pokérus state, <days remaining>:<strain> (0-15 each)",
		func(t *config.Template, s string) error {
			vals, err := splitFields(s, 2, 8)
			if err != nil {
				return err
			}
			t.Pokerus = config.Pokerus{Days: uint8(vals[0]), Strain: uint8(vals[1])}
			return nil
		})
	f.uint8("met-location", "k", "Met location index (255 is a fateful encounter)", func(t *config.Template) *uint8 { return &t.MetLocation })
	f.uint8("met-level", "M", "Level met at", func(t *config.Template) *uint8 { return &t.MetLevel })
	f.str("met-game", "G", "Game met in (colosseum-bonus|sapphire|ruby|emerald|firered|leafgreen|colosseum-xd)",
		func(t *config.Template) *string { return &t.MetGame })
	f.str("pokeball", "b", "Ball caught in (master|ultra|great|standard|safari|dive|nest|repeat|timer|luxury|premier)",
		func(t *config.Template) *string { return &t.Pokeball })
	f.uint8("iv-hp", "H", "HP individual value (0-31)", func(t *config.Template) *uint8 { return &t.IVs.HP })
	f.uint8("iv-attack", "a", "Attack individual value (0-31)", func(t *config.Template) *uint8 { return &t.IVs.Attack })
	f.uint8("iv-defense", "d", "Defense individual value (0-31)", func(t *config.Template) *uint8 { return &t.IVs.Defense })
	f.uint8("iv-speed", "S", "Speed individual value (0-31)", func(t *config.Template) *uint8 { return &t.IVs.Speed })
	f.uint8("iv-special-attack", "A", "Special attack individual value (0-31)", func(t *config.Template) *uint8 { return &t.IVs.SpAttack })
	f.uint8("iv-special-defense", "D", "Special defense individual value (0-31)", func(t *config.Template) *uint8 { return &t.IVs.SpDefense })
	f.toggle("egg", "g", "Generate an egg", func(t *config.Template) { t.Egg = true })
	f.toggle("ability-primary", "1", "Use the species' primary ability", func(t *config.Template) { t.Ability = "primary" })
	f.toggle("ability-secondary", "2", "Use the species' secondary ability", func(t *config.Template) { t.Ability = "secondary" })

	// Record
	f.parsed("personality", "p", "", "Personality value (default random)",
		func(t *config.Template, s string) error {
			v, err := strconv.ParseUint(s, 0, 32)
			if err != nil {
				return err
			}
			p := uint32(v)
			t.Personality = &p
			return nil
		})
	f.parsed("trainer", "t", "", "Original trainer, <id>:<male|female> (default random id, male)",
		func(t *config.Template, s string) error {
			id, gender, err := parseTrainer(s)
			if err != nil {
				return err
			}
			t.Trainer.ID = &id
			t.Trainer.Gender = gender
			return nil
		})
	f.str("met-language", "N", "Language met in (ja|en|fr|it|de|ko|es)", func(t *config.Template) *string { return &t.Language })
	f.uint8("level", "l", "Level", func(t *config.Template) *uint8 { return &t.Level })
	f.uint8("pokerus-left", "Y", "Time remaining in the Pokérus infection", func(t *config.Template) *uint8 { return &t.PokerusLeft })
	f.uint16("hp", "L", "Current HP", func(t *config.Template) *uint16 { return &t.Stats.CurrentHP })
	f.uint16("max-hp", "n", "Maximum HP", func(t *config.Template) *uint16 { return &t.Stats.MaxHP })
	f.uint16("attack", "q", "Attack stat", func(t *config.Template) *uint16 { return &t.Stats.Attack })
	f.uint16("defense", "u", "Defense stat", func(t *config.Template) *uint16 { return &t.Stats.Defense })
	f.uint16("speed", "I", "Speed stat", func(t *config.Template) *uint16 { return &t.Stats.Speed })
	f.uint16("special-attack", "Q", "Special attack stat", func(t *config.Template) *uint16 { return &t.Stats.SpAttack })
	f.uint16("special-defense", "U", "Special defense stat", func(t *config.Template) *uint16 { return &t.Stats.SpDefense })

	return f
}
