package main

import (
	"fmt"
	"io"

	"github.com/udisondev/gen3pkm/internal/config"
	"github.com/udisondev/gen3pkm/internal/hexdump"
	"github.com/udisondev/gen3pkm/internal/pokemon"
)

// writeRecords writes recs back to back, as consecutive party slots.
// Dumps label the first record at hexdump.RecordBase.
func writeRecords(w io.Writer, recs []pokemon.Record, mode string) error {
	buf := make([]byte, 0, len(recs)*pokemon.RecordSize)
	for i := range recs {
		raw, err := recs[i].MarshalBinary()
		if err != nil {
			return fmt.Errorf("marshalling record %d: %w", i, err)
		}
		buf = append(buf, raw...)
	}

	if mode == config.OutputRaw {
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing raw records: %w", err)
		}
		return nil
	}
	if err := hexdump.Dump(w, buf, hexdump.RecordBase); err != nil {
		return fmt.Errorf("writing hexdump: %w", err)
	}
	return nil
}
