package pokemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestOrigins_BitLayout(t *testing.T) {
	o := Origins(0).
		WithLevelMet(100).
		WithGame(GameColosseumXD).
		WithBall(BallPremier).
		WithTrainerGender(GenderFemale)

	assert.Equal(t, Origins(100|15<<7|12<<11|1<<15), o)
	assert.Equal(t, uint8(100), o.LevelMet())
	assert.Equal(t, GameColosseumXD, o.Game())
	assert.Equal(t, BallPremier, o.Ball())
	assert.Equal(t, GenderFemale, o.TrainerGender())
}

func TestOrigins_Truncates(t *testing.T) {
	o := Origins(0).WithLevelMet(0xFF)
	assert.Equal(t, uint8(0x7F), o.LevelMet())
	assert.Equal(t, Game(0), o.Game(), "level overflow must not leak into game bits")
}

func TestIVs_BitLayout(t *testing.T) {
	var v IVs
	for i, s := range Stats {
		v = v.With(s, uint8(i+1))
	}
	v = v.WithEgg(true).WithAbility(AbilitySecondary)

	want := uint32(1 | 2<<5 | 3<<10 | 4<<15 | 5<<20 | 6<<25 | 1<<30 | 1<<31)
	assert.Equal(t, IVs(want), v)
	for i, s := range Stats {
		assert.Equal(t, uint8(i+1), v.Get(s), s.String())
	}
	assert.True(t, v.IsEgg())
	assert.Equal(t, AbilitySecondary, v.Ability())

	v = v.WithEgg(false)
	assert.False(t, v.IsEgg())
	assert.Equal(t, AbilitySecondary, v.Ability())
}

func TestIVs_SetGetProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := IVs(rapid.Uint32().Draw(t, "start"))
		stat := Stats[rapid.IntRange(0, 5).Draw(t, "stat")]
		iv := rapid.Uint8Range(0, 31).Draw(t, "iv")

		got := start.With(stat, iv)
		if got.Get(stat) != iv {
			t.Fatalf("Get(%v) = %d, want %d", stat, got.Get(stat), iv)
		}
		for _, other := range Stats {
			if other != stat && got.Get(other) != start.Get(other) {
				t.Fatalf("setting %v changed %v", stat, other)
			}
		}
		if got.IsEgg() != start.IsEgg() || got.Ability() != start.Ability() {
			t.Fatalf("setting %v changed flag bits", stat)
		}
	})
}

func TestRibbons_BitLayout(t *testing.T) {
	r := Ribbons(0).
		WithRank(ContestCool, 4).
		WithRank(ContestTough, 7).
		With(RibbonChampion, true).
		With(RibbonSpecial6, true).
		With(RibbonObedience, true)

	assert.Equal(t, Ribbons(4|7<<12|1<<15|1<<25|1<<31), r)
	assert.Equal(t, uint8(4), r.Rank(ContestCool))
	assert.Equal(t, uint8(0), r.Rank(ContestBeauty))
	assert.Equal(t, uint8(7), r.Rank(ContestTough))
	assert.True(t, r.Has(RibbonObedience))
	assert.False(t, r.Has(RibbonWinning))
}

func TestPokerus(t *testing.T) {
	p := NewPokerus(3, 0xA)
	assert.Equal(t, Pokerus(0xA3), p)
	assert.Equal(t, uint8(3), p.DaysRemaining())
	assert.Equal(t, uint8(0xA), p.Strain())
}

func TestPPBonus(t *testing.T) {
	p := PPBonus(0).WithMove(0, 1).WithMove(1, 2).WithMove(2, 3).WithMove(3, 0)
	assert.Equal(t, PPBonus(0b00_11_10_01), p)
	for slot, want := range []uint8{1, 2, 3, 0} {
		assert.Equal(t, want, p.Move(slot))
	}
}

func TestStatus(t *testing.T) {
	s := Status(0).WithSleepTurns(5).With(StatusParalyzed, true)
	assert.Equal(t, Status(5|1<<6), s)
	assert.Equal(t, uint8(5), s.SleepTurns())
	assert.True(t, s.Has(StatusParalyzed))
	assert.False(t, s.Has(StatusBurnt))
}

func TestSubstructures_Layout(t *testing.T) {
	s := fixtureSubstructures()

	growth := s.Growth.Bytes()
	assert.Equal(t, []byte{0x19, 0x00, 0x0D, 0x00, 0x34, 0x12, 0x00, 0x00, 0xE4, 0x46, 0x00, 0x00}, growth[:])

	attacks := s.Attacks.Bytes()
	assert.Equal(t, []byte{0x54, 0x00, 0x2D, 0x00, 0x56, 0x00, 0x62, 0x00, 30, 40, 20, 30}, attacks[:])

	misc := s.Misc.Bytes()
	assert.Equal(t, []byte{0x12, 0xFF, 0x85, 0x20, 0xFF, 0xFF, 0xFF, 0x3F, 0, 0, 0, 0}, misc[:])
}

func TestSubstructures_UnmarshalWrongSize(t *testing.T) {
	var g Growth
	assert.ErrorIs(t, g.UnmarshalBinary(make([]byte, 11)), ErrSubstructureSize)
	var a Attacks
	assert.ErrorIs(t, a.UnmarshalBinary(make([]byte, 13)), ErrSubstructureSize)
	var c Condition
	assert.ErrorIs(t, c.UnmarshalBinary(nil), ErrSubstructureSize)
	var m Misc
	assert.ErrorIs(t, m.UnmarshalBinary(make([]byte, 48)), ErrSubstructureSize)
}

func TestSubstructures_MarshalRoundTrip(t *testing.T) {
	s := fixtureSubstructures()

	raw, err := s.Misc.MarshalBinary()
	require.NoError(t, err)

	var m Misc
	require.NoError(t, m.UnmarshalBinary(raw))
	assert.Equal(t, s.Misc, m)
}

func TestParseEnums(t *testing.T) {
	g, err := ParseGame("firered")
	require.NoError(t, err)
	assert.Equal(t, GameFireRed, g)
	assert.Equal(t, "firered", g.String())

	b, err := ParseBall("dive")
	require.NoError(t, err)
	assert.Equal(t, BallDive, b)

	gender, err := ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, gender)

	_, err = ParseGame("crystal")
	assert.ErrorIs(t, err, ErrUnknownName)
	_, err = ParseBall("heavy")
	assert.ErrorIs(t, err, ErrUnknownName)
	_, err = ParseGender("other")
	assert.ErrorIs(t, err, ErrUnknownName)
}
