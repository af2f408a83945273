package crypto

import "encoding/binary"

// DataKey returns the 32-bit XOR key protecting a record's data block.
func DataKey(personality, trainerID uint32) uint32 {
	return personality ^ trainerID
}

// XORPass XORs every 32-bit LE word in data[offset:offset+size] with key, in place.
// Size must be a multiple of 4. Applying the pass twice with the same key
// restores the input.
func XORPass(data []byte, offset, size int, key uint32) {
	for i := offset; i < offset+size; i += 4 {
		word := binary.LittleEndian.Uint32(data[i:])
		binary.LittleEndian.PutUint32(data[i:], word^key)
	}
}

// Checksum16 returns the sum of all 16-bit LE words in data, wrapping at 16 bits.
// len(data) must be even.
func Checksum16(data []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(data); i += 2 {
		sum += binary.LittleEndian.Uint16(data[i:])
	}
	return sum
}

// VerifyChecksum16 reports whether data sums to want.
func VerifyChecksum16(data []byte, want uint16) bool {
	return Checksum16(data) == want
}
