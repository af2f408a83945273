package charset

import (
	"errors"
	"fmt"
)

// Language is the record's language field (uint16 @18).
type Language uint16

const (
	Japanese Language = 0x0201
	English  Language = 0x0202
	French   Language = 0x0203
	Italian  Language = 0x0204
	German   Language = 0x0205
	Korean   Language = 0x0206
	Spanish  Language = 0x0207
)

var (
	// ErrUnsupportedLanguage is returned when no text table exists for a language.
	ErrUnsupportedLanguage = errors.New("unsupported text language")
	// ErrUnknownLanguage is returned by ParseLanguage.
	ErrUnknownLanguage = errors.New("unknown language code")
)

var languageCodes = map[string]Language{
	"ja": Japanese,
	"en": English,
	"fr": French,
	"it": Italian,
	"de": German,
	"ko": Korean,
	"es": Spanish,
}

// ParseLanguage maps a two-letter code (ja|en|fr|it|de|ko|es) to a Language.
func ParseLanguage(code string) (Language, error) {
	l, ok := languageCodes[code]
	if !ok {
		return 0, fmt.Errorf("%w %q (want ja|en|fr|it|de|ko|es)", ErrUnknownLanguage, code)
	}
	return l, nil
}

// String returns the two-letter code, or the hex value for unknown languages.
func (l Language) String() string {
	for code, v := range languageCodes {
		if v == l {
			return code
		}
	}
	return fmt.Sprintf("%#04x", uint16(l))
}
