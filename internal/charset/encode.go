package charset

import (
	"errors"
	"fmt"
)

const (
	// NicknameLength is the capacity of the record's nickname field.
	NicknameLength = 10
	// TrainerNameLength is the capacity of the record's original-trainer name field.
	TrainerNameLength = 7
)

// ErrUnencodable is returned when a name contains a character with no game encoding.
var ErrUnencodable = errors.New("character has no game encoding")

// Encode rewrites buf in place into the game text encoding for lang.
//
// It reports false without touching buf when lang has no table. If a byte has
// no mapping it reports false immediately: bytes before it are already
// rewritten, the rest are untouched. Callers must discard buf on failure.
func Encode(buf []byte, lang Language) bool {
	t, ok := tableFor(lang)
	if !ok {
		return false
	}
	return encode(buf, t) < 0
}

// encode returns the index of the first unmapped byte, or -1.
func encode(buf []byte, t *table) int {
	for i, ch := range buf {
		b, ok := t.encode(ch)
		if !ok {
			return i
		}
		buf[i] = b
	}
	return -1
}

// Decode is the in-place inverse of Encode, with the same partial-rewrite
// behaviour on failure. Name fields are better read with DecodeName, which
// stops at the Terminator and tolerates unmapped bytes.
func Decode(buf []byte, lang Language) bool {
	t, ok := tableFor(lang)
	if !ok {
		return false
	}
	for i, b := range buf {
		ch, ok := t.decode(b)
		if !ok {
			return false
		}
		buf[i] = ch
	}
	return true
}

// EncodeName builds a fixed-capacity encoded name field.
// s is silently truncated to capacity-1 bytes so the field always ends with
// at least one Terminator; unused bytes are Terminator too.
func EncodeName(s string, capacity int, lang Language) ([]byte, error) {
	t, ok := tableFor(lang)
	if !ok {
		return nil, fmt.Errorf("encoding name %q: %w: %s", s, ErrUnsupportedLanguage, lang)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("encoding name %q: capacity %d too small", s, capacity)
	}

	buf := make([]byte, capacity)
	copy(buf[:capacity-1], s)

	if i := encode(buf, t); i >= 0 {
		return nil, fmt.Errorf("encoding name %q: %w: %q at index %d", s, ErrUnencodable, buf[i], i)
	}
	return buf, nil
}
