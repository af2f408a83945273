package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDataKey(t *testing.T) {
	assert.Equal(t, uint32(0x12345678), DataKey(0, 0x12345678))
	assert.Equal(t, uint32(0), DataKey(0xCAFEBABE, 0xCAFEBABE))
	assert.Equal(t, uint32(0xDEAC5CAF), DataKey(0xDEADBEEF, 0x0001E240))
}

func TestXORPass_LittleEndianWords(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x02, 0x03, 0x04,
	}

	XORPass(data, 0, len(data), 0x11223344)

	assert.Equal(t, []byte{
		0x44, 0x33, 0x22, 0x11,
		0x45, 0x31, 0x21, 0x15,
	}, data)
}

func TestXORPass_RespectsOffset(t *testing.T) {
	data := []byte{0xAA, 0xAA, 0xAA, 0xAA, 0x00, 0x00, 0x00, 0x00, 0xBB}

	XORPass(data, 4, 4, 0xFFFFFFFF)

	assert.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xFF, 0xFF, 0xFF, 0xFF, 0xBB}, data)
}

func TestXORPass_SelfInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := rapid.SliceOfN(rapid.Byte(), 48, 48).Draw(t, "block")
		key := rapid.Uint32().Draw(t, "key")

		data := bytes.Clone(original)
		XORPass(data, 0, len(data), key)
		XORPass(data, 0, len(data), key)

		if !bytes.Equal(data, original) {
			t.Fatalf("double XOR changed block: %x -> %x", original, data)
		}
	})
}

func TestChecksum16(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{"empty", nil, 0},
		{"single word", []byte{0x34, 0x12}, 0x1234},
		{"two words", []byte{0x01, 0x00, 0x02, 0x00}, 3},
		{"wraps at 16 bits", []byte{0xFF, 0xFF, 0x02, 0x00}, 1},
		{"all ones 48 bytes", bytes.Repeat([]byte{0xFF}, 48), 0xFFE8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum16(tt.data))
			assert.True(t, VerifyChecksum16(tt.data, tt.want))
			assert.False(t, VerifyChecksum16(tt.data, tt.want+1))
		})
	}
}

func BenchmarkXORPass(b *testing.B) {
	b.ReportAllocs()

	data := make([]byte, 48)
	b.SetBytes(int64(len(data)))

	b.ResetTimer()
	for range b.N {
		XORPass(data, 0, len(data), 0xDEADBEEF)
	}
}

func BenchmarkChecksum16(b *testing.B) {
	b.ReportAllocs()

	data := make([]byte, 48)
	for i := range data {
		data[i] = byte(i * 7)
	}

	b.ResetTimer()
	for range b.N {
		_ = Checksum16(data)
	}
}
