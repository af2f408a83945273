package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewDecoder returns a decoder rendering game-encoded text as UTF-8.
// Output stops at the first Terminator; bytes without a mapping become U+FFFD.
func NewDecoder(lang Language) (*encoding.Decoder, error) {
	t, ok := tableFor(lang)
	if !ok {
		return nil, fmt.Errorf("decoder: %w: %s", ErrUnsupportedLanguage, lang)
	}
	return &encoding.Decoder{Transformer: &decoder{t: t}}, nil
}

// DecodeName decodes a fixed-capacity name field into a Go string.
func DecodeName(field []byte, lang Language) (string, error) {
	dec, err := NewDecoder(lang)
	if err != nil {
		return "", err
	}
	out, err := dec.Bytes(field)
	if err != nil {
		return "", fmt.Errorf("decoding name % x: %w", field, err)
	}
	return string(out), nil
}

type decoder struct {
	t    *table
	done bool
}

func (d *decoder) Reset() {
	d.done = false
}

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if d.done {
			nSrc = len(src)
			break
		}
		b := src[nSrc]
		if b == Terminator {
			d.done = true
			nSrc++
			continue
		}
		ch, ok := d.t.decode(b)
		if !ok {
			if nDst+utf8.RuneLen(utf8.RuneError) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], utf8.RuneError)
			nSrc++
			continue
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = ch
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
