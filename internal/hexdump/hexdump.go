// Package hexdump renders byte buffers in the address-labelled layout used to
// inspect records against emulator memory views.
package hexdump

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RecordBase is the address the first party slot's successor occupies in GBA
// IWRAM (0x03004360 + one 100-byte record); generated records are labelled with it.
const RecordBase = 0x03004360 + 100

const bytesPerLine = 16

// Dump writes data as lines of
//
//	AAAAAAAA: xx xx ... xx  ascii
//
// where AAAAAAAA is base+index in hex. Bytes outside 0x20-0x7E print as '.' in the ascii column.
func Dump(w io.Writer, data []byte, base uint64) error {
	bw := bufio.NewWriter(w)

	for start := 0; start < len(data); start += bytesPerLine {
		end := min(start+bytesPerLine, len(data))
		line := data[start:end]

		fmt.Fprintf(bw, "%08x:", base+uint64(start))
		for _, b := range line {
			fmt.Fprintf(bw, " %02x", b)
		}
		bw.WriteString(strings.Repeat("   ", bytesPerLine-len(line)))
		bw.WriteString("  ")
		for _, b := range line {
			if b < 0x20 || b > 0x7E {
				b = '.'
			}
			bw.WriteByte(b)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing hexdump: %w", err)
	}
	return nil
}
