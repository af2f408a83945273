package pokemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gen3pkm/internal/charset"
	"github.com/udisondev/gen3pkm/internal/testutil"
)

func fixtureRecord(t *testing.T) Record {
	t.Helper()

	nick, err := charset.EncodeName("PIKACHU", charset.NicknameLength, charset.English)
	require.NoError(t, err)
	ot, err := charset.EncodeName("ASH", charset.TrainerNameLength, charset.English)
	require.NoError(t, err)

	rec := Record{
		Personality: 0xDEADBEEF,
		TrainerID:   0x0001E240,
		Language:    charset.English,
		Markings:    1 << MarkingHeart,
		Status:      Status(0).With(StatusPoisoned, true),
		Level:       5,
		CurrentHP:   20,
		MaxHP:       21,
		Attack:      11,
		Defense:     9,
		Speed:       15,
		SpAttack:    10,
		SpDefense:   10,
	}
	copy(rec.Nickname[:], nick)
	copy(rec.TrainerName[:], ot)
	rec.Seal(fixtureSubstructures())
	return rec
}

func TestRecord_MarshalLayout(t *testing.T) {
	rec := fixtureRecord(t)

	raw, err := rec.MarshalBinary()
	require.NoError(t, err)
	testutil.AssertLength(t, RecordSize, raw)

	testutil.AssertUint32LE(t, 0xDEADBEEF, raw, 0)
	testutil.AssertUint32LE(t, 0x0001E240, raw, 4)
	testutil.AssertBytesAt(t, []byte{0xCA, 0xC3, 0xC5, 0xBB, 0xBD, 0xC2, 0xCF, 0xFF, 0xFF, 0xFF}, raw, 8)
	testutil.AssertUint16LE(t, 0x0202, raw, 18)
	testutil.AssertBytesAt(t, []byte{0xBB, 0xCD, 0xC2, 0xFF, 0xFF, 0xFF, 0xFF}, raw, 20)
	testutil.AssertByteAtOffset(t, 1<<3, raw, 27)
	testutil.AssertUint16LE(t, 0x2A62, raw, 28)
	testutil.AssertBytesAt(t, rec.Data[:], raw, 32)
	testutil.AssertUint32LE(t, 1<<3, raw, 80)
	testutil.AssertByteAtOffset(t, 5, raw, 84)
	testutil.AssertUint16LE(t, 20, raw, 86)
	testutil.AssertUint16LE(t, 10, raw, 98)
}

func TestRecord_RoundTrip(t *testing.T) {
	rec := fixtureRecord(t)

	raw, err := rec.MarshalBinary()
	require.NoError(t, err)

	var got Record
	require.NoError(t, got.UnmarshalBinary(raw))
	assert.Equal(t, rec, got)

	subs, err := got.Substructures()
	require.NoError(t, err)
	assert.Equal(t, fixtureSubstructures(), subs)
	require.NoError(t, got.Verify())

	nick, err := got.NicknameString()
	require.NoError(t, err)
	assert.Equal(t, "PIKACHU", nick)

	ot, err := got.TrainerNameString()
	require.NoError(t, err)
	assert.Equal(t, "ASH", ot)

	assert.True(t, got.HasMarking(MarkingHeart))
	assert.False(t, got.HasMarking(MarkingBullet))
}

func TestRecord_VerifyDetectsCorruption(t *testing.T) {
	rec := fixtureRecord(t)
	rec.Checksum++

	assert.ErrorIs(t, rec.Verify(), ErrChecksumMismatch)
	_, err := rec.Substructures()
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestRecord_UnmarshalWrongSize(t *testing.T) {
	var rec Record
	assert.ErrorIs(t, rec.UnmarshalBinary(make([]byte, 80)), ErrRecordSize)
	assert.ErrorIs(t, rec.UnmarshalBinary(make([]byte, 101)), ErrRecordSize)
}
