package charset

// table is a bidirectional single-byte substitution table.
type table struct {
	enc   [256]byte
	encOK [256]bool
	dec   [256]byte
	decOK [256]bool
}

func newTable(pairs [][2]byte) *table {
	t := &table{}
	for _, p := range pairs {
		t.enc[p[0]], t.encOK[p[0]] = p[1], true
		t.dec[p[1]], t.decOK[p[1]] = p[0], true
	}
	return t
}

// encode maps one ASCII byte to its game encoding.
func (t *table) encode(ch byte) (byte, bool) {
	return t.enc[ch], t.encOK[ch]
}

// decode maps one game-encoded byte back to ASCII.
func (t *table) decode(b byte) (byte, bool) {
	return t.dec[b], t.decOK[b]
}

func span(from, to, first byte) [][2]byte {
	out := make([][2]byte, 0, int(to-from)+1)
	for ch := from; ; ch++ {
		out = append(out, [2]byte{ch, first + (ch - from)})
		if ch == to {
			return out
		}
	}
}

// Terminator is the encoded form of NUL; names are padded with it.
const Terminator = 0xFF

// englishTable maps the supported ASCII subset to the Western game text encoding.
var englishTable = newTable(concat(
	[][2]byte{
		{' ', 0x00},
		{'&', 0x2D},
		{'+', 0x2E},
		{'=', 0x35},
		{'%', 0x5B},
		{'(', 0x5C},
		{')', 0x5D},
	},
	span('0', '9', 0xA1),
	[][2]byte{
		{'!', 0xAB},
		{'?', 0xAC},
		{'.', 0xAD},
		{'-', 0xAE},
		{',', 0xB8},
		{'/', 0xBA},
	},
	span('A', 'Z', 0xBB),
	span('a', 'z', 0xD5),
	[][2]byte{
		{':', 0xF0},
		{'\n', 0xFE},
		{0, Terminator},
	},
))

func concat(parts ...[][2]byte) [][2]byte {
	var out [][2]byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func tableFor(lang Language) (*table, bool) {
	if lang == English {
		return englishTable, true
	}
	return nil, false
}
