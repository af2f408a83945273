package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncode_FullTable(t *testing.T) {
	want := map[byte]byte{
		' ': 0x00, '&': 0x2D, '+': 0x2E, '=': 0x35, '%': 0x5B, '(': 0x5C, ')': 0x5D,
		'!': 0xAB, '?': 0xAC, '.': 0xAD, '-': 0xAE, ',': 0xB8, '/': 0xBA,
		':': 0xF0, '\n': 0xFE, 0: 0xFF,
	}
	for i := range byte(10) {
		want['0'+i] = 0xA1 + i
	}
	for i := range byte(26) {
		want['A'+i] = 0xBB + i
		want['a'+i] = 0xD5 + i
	}
	require.Len(t, want, 78)

	for ch, code := range want {
		buf := []byte{ch}
		require.True(t, Encode(buf, English), "char %q", ch)
		assert.Equal(t, code, buf[0], "char %q", ch)
	}

	for ch := range 256 {
		if _, ok := want[byte(ch)]; ok {
			continue
		}
		assert.False(t, Encode([]byte{byte(ch)}, English), "char %#02x must be unencodable", ch)
	}
}

func TestEncode_Pikachu(t *testing.T) {
	buf := []byte("PIKACHU")
	require.True(t, Encode(buf, English))
	assert.Equal(t, []byte{0xCA, 0xC3, 0xC5, 0xBB, 0xBD, 0xC2, 0xCF}, buf)

	// Mixed case: lowercase letters use the D5-EE block.
	buf = []byte("PiKAcHU")
	require.True(t, Encode(buf, English))
	assert.Equal(t, []byte{0xCA, 0xDD, 0xC5, 0xBB, 0xD7, 0xC2, 0xCF}, buf)
}

func TestEncode_UnsupportedLanguageLeavesBuffer(t *testing.T) {
	for _, lang := range []Language{Japanese, French, German, Language(0)} {
		buf := []byte("ABC")
		assert.False(t, Encode(buf, lang), lang.String())
		assert.Equal(t, []byte("ABC"), buf)
	}
}

func TestEncode_PartialRewriteOnFailure(t *testing.T) {
	buf := []byte("AB\xe9CD") // é in Latin-1
	assert.False(t, Encode(buf, English))
	assert.Equal(t, []byte{0xBB, 0xBC, 0xE9, 'C', 'D'}, buf)
}

func TestDecode_InvertsEncode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[A-Za-z0-9 &+=%()!?.,/:\n-]{0,16}`).Draw(t, "text")

		buf := []byte(s)
		if !Encode(buf, English) {
			t.Fatalf("Encode(%q) failed", s)
		}
		if !Decode(buf, English) {
			t.Fatalf("Decode failed for %q", s)
		}
		if string(buf) != s {
			t.Fatalf("round trip %q -> %q", s, buf)
		}
	})
}

func TestEncodeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		capacity int
		want     []byte
	}{
		{
			name:     "padded with terminator",
			input:    "ASH",
			capacity: TrainerNameLength,
			want:     []byte{0xBB, 0xCD, 0xC2, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			name:     "truncated keeps terminator",
			input:    "ABCDEFGHIJKL",
			capacity: NicknameLength,
			want:     []byte{0xBB, 0xBC, 0xBD, 0xBE, 0xBF, 0xC0, 0xC1, 0xC2, 0xC3, 0xFF},
		},
		{
			name:     "empty",
			input:    "",
			capacity: 3,
			want:     []byte{0xFF, 0xFF, 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeName(tt.input, tt.capacity, English)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeName_Errors(t *testing.T) {
	_, err := EncodeName("Flabébé", NicknameLength, English)
	assert.ErrorIs(t, err, ErrUnencodable)

	_, err = EncodeName("ASH", TrainerNameLength, Japanese)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = EncodeName("ASH", 0, English)
	assert.Error(t, err)
}

func TestDecodeName(t *testing.T) {
	field := []byte{0xCA, 0xDD, 0xC5, 0xBB, 0xD7, 0xC2, 0xCF, 0xFF, 0xBB, 0xBB}
	got, err := DecodeName(field, English)
	require.NoError(t, err)
	assert.Equal(t, "PiKAcHU", got)

	got, err = DecodeName([]byte{0xBB, 0x01, 0xBC}, English)
	require.NoError(t, err)
	assert.Equal(t, "A�B", got)

	_, err = DecodeName(field, Korean)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestDecodeName_AgreesWithDecode(t *testing.T) {
	for b := range 256 {
		if b == Terminator {
			continue
		}
		in := []byte{byte(b)}
		name, err := DecodeName(in, English)
		require.NoError(t, err)

		buf := []byte{byte(b)}
		if Decode(buf, English) {
			assert.Equal(t, string(buf), name, "byte %#02x", b)
		} else {
			assert.Equal(t, "\uFFFD", name, "byte %#02x", b)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, English, l)
	assert.Equal(t, "en", l.String())
	assert.Equal(t, "0x0999", Language(0x999).String())

	_, err = ParseLanguage("pt")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}
