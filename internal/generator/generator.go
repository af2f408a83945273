// Package generator turns configuration templates into sealed party records.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gen3pkm/internal/charset"
	"github.com/udisondev/gen3pkm/internal/config"
	"github.com/udisondev/gen3pkm/internal/pokemon"
)

// Generator builds records from templates. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator drawing default personality and trainer id values from rng.
// A nil rng uses a randomly seeded PCG source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

func (g *Generator) uint32() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint32()
}

// Substructures maps the data-block fields of tpl onto the four substructures.
func Substructures(tpl config.Template) (pokemon.Substructures, error) {
	game, err := pokemon.ParseGame(tpl.MetGame)
	if err != nil {
		return pokemon.Substructures{}, err
	}
	ball, err := pokemon.ParseBall(tpl.Pokeball)
	if err != nil {
		return pokemon.Substructures{}, err
	}
	gender, err := pokemon.ParseGender(tpl.Trainer.Gender)
	if err != nil {
		return pokemon.Substructures{}, err
	}
	ability, err := config.ParseAbility(tpl.Ability)
	if err != nil {
		return pokemon.Substructures{}, err
	}

	var bonus pokemon.PPBonus
	for slot, n := range tpl.PPBonus {
		bonus = bonus.WithMove(slot, n)
	}

	var ivs pokemon.IVs
	for s, v := range tpl.IVs.Array() {
		ivs = ivs.With(pokemon.Stat(s), v)
	}
	ivs = ivs.WithEgg(tpl.Egg).WithAbility(ability)

	return pokemon.Substructures{
		Growth: pokemon.Growth{
			Species:    tpl.Species,
			HeldItem:   tpl.HeldItem,
			Experience: tpl.Experience,
			PPBonus:    bonus,
			Friendship: tpl.Friendship,
		},
		Attacks: pokemon.Attacks{
			Moves: tpl.Moves,
			PP:    tpl.MovesPP,
		},
		Condition: pokemon.Condition{
			EVs:       tpl.EVs.Array(),
			Coolness:  tpl.Contest.Coolness,
			Beauty:    tpl.Contest.Beauty,
			Cuteness:  tpl.Contest.Cuteness,
			Smartness: tpl.Contest.Smartness,
			Toughness: tpl.Contest.Toughness,
			Feel:      tpl.Contest.Feel,
		},
		Misc: pokemon.Misc{
			Pokerus:     pokemon.NewPokerus(tpl.Pokerus.Days, tpl.Pokerus.Strain),
			MetLocation: tpl.MetLocation,
			Origins: pokemon.Origins(0).
				WithLevelMet(tpl.MetLevel).
				WithGame(game).
				WithBall(ball).
				WithTrainerGender(gender),
			IVs: ivs,
		},
	}, nil
}

// Build produces a sealed record from tpl.
// Names that cannot be encoded fail the whole record.
func (g *Generator) Build(tpl config.Template) (pokemon.Record, error) {
	subs, err := Substructures(tpl)
	if err != nil {
		return pokemon.Record{}, fmt.Errorf("building substructures: %w", err)
	}

	lang, err := charset.ParseLanguage(tpl.Language)
	if err != nil {
		return pokemon.Record{}, fmt.Errorf("building record: %w", err)
	}

	// Names are always stored in the one supported table; the language
	// field only records where the Pokémon was met.
	nickname, err := charset.EncodeName(tpl.Nickname, charset.NicknameLength, charset.English)
	if err != nil {
		return pokemon.Record{}, fmt.Errorf("nickname: %w", err)
	}
	trainerName, err := charset.EncodeName(tpl.Trainer.Name, charset.TrainerNameLength, charset.English)
	if err != nil {
		return pokemon.Record{}, fmt.Errorf("trainer name: %w", err)
	}

	rec := pokemon.Record{
		Language:         lang,
		Markings:         tpl.Markings,
		Level:            tpl.Level,
		PokerusRemaining: tpl.PokerusLeft,
		CurrentHP:        tpl.Stats.CurrentHP,
		MaxHP:            tpl.Stats.MaxHP,
		Attack:           tpl.Stats.Attack,
		Defense:          tpl.Stats.Defense,
		Speed:            tpl.Stats.Speed,
		SpAttack:         tpl.Stats.SpAttack,
		SpDefense:        tpl.Stats.SpDefense,
	}
	if tpl.Personality != nil {
		rec.Personality = *tpl.Personality
	} else {
		rec.Personality = g.uint32()
	}
	if tpl.Trainer.ID != nil {
		rec.TrainerID = *tpl.Trainer.ID
	} else {
		rec.TrainerID = g.uint32()
	}
	copy(rec.Nickname[:], nickname)
	copy(rec.TrainerName[:], trainerName)

	rec.Seal(subs)

	slog.Debug("record built",
		"nickname", tpl.Nickname,
		"species", tpl.Species,
		"personality", fmt.Sprintf("%#08x", rec.Personality),
		"order", pokemon.OrderOf(rec.Personality),
		"checksum", fmt.Sprintf("%#04x", rec.Checksum))

	return rec, nil
}

// withIdentity returns tpl with random personality and trainer id filled in
// where tpl leaves them unset, drawn in the same order Build draws them.
func (g *Generator) withIdentity(tpl config.Template) config.Template {
	if tpl.Personality == nil {
		p := g.uint32()
		tpl.Personality = &p
	}
	if tpl.Trainer.ID == nil {
		id := g.uint32()
		tpl.Trainer.ID = &id
	}
	return tpl
}

// BuildBatch builds every template with at most workers concurrent builds.
// Results keep template order; the first failure cancels remaining builds.
// Random identities are drawn up front in template order, so a seeded
// Generator yields the same records whatever the worker count.
func (g *Generator) BuildBatch(ctx context.Context, tpls []config.Template, workers int) ([]pokemon.Record, error) {
	out := make([]pokemon.Record, len(tpls))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))

	for i, tpl := range tpls {
		tpl := g.withIdentity(tpl)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := g.Build(tpl)
			if err != nil {
				return fmt.Errorf("template %d: %w", i, err)
			}
			out[i] = rec
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
