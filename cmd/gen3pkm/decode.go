package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/gen3pkm/internal/pokemon"
)

func newDecodeCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decrypt and print a raw 100-byte record",
		Long: `Decode reads a raw party record from file (or stdin), verifies its checksum
and prints every field. A checksum mismatch exits non-zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening record: %w", err)
				}
				defer f.Close()
				in = f
			}
			return decodeRecord(cmd.OutOrStdout(), in)
		},
	}
}

func decodeRecord(w io.Writer, r io.Reader) error {
	raw, err := io.ReadAll(io.LimitReader(r, pokemon.RecordSize+1))
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}

	var rec pokemon.Record
	if err := rec.UnmarshalBinary(raw); err != nil {
		return err
	}

	describeRecord(w, &rec)

	subs, err := rec.Substructures()
	if err != nil {
		if errors.Is(err, pokemon.ErrChecksumMismatch) {
			return fmt.Errorf("record %#08x fails integrity check: %w", rec.Personality, err)
		}
		return err
	}
	describeSubstructures(w, &subs)
	return nil
}

func nameOrError(decode func() (string, error)) string {
	s, err := decode()
	if err != nil {
		return fmt.Sprintf("%q (%v)", s, err)
	}
	return s
}

func describeRecord(w io.Writer, rec *pokemon.Record) {
	fmt.Fprintf(w, "personality:   %#08x (order %s)\n", rec.Personality, pokemon.OrderOf(rec.Personality))
	fmt.Fprintf(w, "trainer id:    %#08x\n", rec.TrainerID)
	fmt.Fprintf(w, "nickname:      %s\n", nameOrError(rec.NicknameString))
	fmt.Fprintf(w, "trainer name:  %s\n", nameOrError(rec.TrainerNameString))
	fmt.Fprintf(w, "language:      %s\n", rec.Language)
	fmt.Fprintf(w, "markings:      %#02x\n", rec.Markings)
	fmt.Fprintf(w, "checksum:      %#04x\n", rec.Checksum)
	fmt.Fprintf(w, "status:        %#08x (sleep %d)\n", uint32(rec.Status), rec.Status.SleepTurns())
	fmt.Fprintf(w, "level:         %d\n", rec.Level)
	fmt.Fprintf(w, "pokerus left:  %d\n", rec.PokerusRemaining)
	fmt.Fprintf(w, "hp:            %d/%d\n", rec.CurrentHP, rec.MaxHP)
	fmt.Fprintf(w, "stats:         atk %d def %d spe %d spa %d spd %d\n",
		rec.Attack, rec.Defense, rec.Speed, rec.SpAttack, rec.SpDefense)
}

func describeSubstructures(w io.Writer, subs *pokemon.Substructures) {
	g, a, c, m := subs.Growth, subs.Attacks, subs.Condition, subs.Misc

	fmt.Fprintf(w, "species:       %d\n", g.Species)
	fmt.Fprintf(w, "held item:     %d\n", g.HeldItem)
	fmt.Fprintf(w, "experience:    %d\n", g.Experience)
	fmt.Fprintf(w, "friendship:    %d\n", g.Friendship)
	for slot := range a.Moves {
		fmt.Fprintf(w, "move %d:        %d (pp %d, bonus %d)\n", slot+1, a.Moves[slot], a.PP[slot], g.PPBonus.Move(slot))
	}
	for _, s := range pokemon.Stats {
		fmt.Fprintf(w, "%-14s ev %3d iv %2d\n", s.String()+":", c.EVs[s], m.IVs.Get(s))
	}
	fmt.Fprintf(w, "contest:       cool %d beauty %d cute %d smart %d tough %d feel %d\n",
		c.Coolness, c.Beauty, c.Cuteness, c.Smartness, c.Toughness, c.Feel)
	fmt.Fprintf(w, "pokerus:       %d days, strain %d\n", m.Pokerus.DaysRemaining(), m.Pokerus.Strain())
	fmt.Fprintf(w, "met:           location %d, level %d, %s, %s ball\n",
		m.MetLocation, m.Origins.LevelMet(), m.Origins.Game(), m.Origins.Ball())
	fmt.Fprintf(w, "trainer:       %s\n", m.Origins.TrainerGender())
	fmt.Fprintf(w, "egg:           %t\n", m.IVs.IsEgg())
	fmt.Fprintf(w, "ability:       %d\n", m.IVs.Ability())
	fmt.Fprintf(w, "ribbons:       %#08x\n", uint32(m.Ribbons))
}
