// Package testutil holds byte-layout assertions shared by record tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func need(t testing.TB, buf []byte, offset, size int, what string) {
	t.Helper()

	if len(buf) < offset+size {
		t.Fatalf("buffer too short: need %d bytes for %s at offset %d, got %d",
			offset+size, what, offset, len(buf))
	}
}

// AssertUint32LE проверяет uint32 (little-endian) по смещению.
func AssertUint32LE(t testing.TB, expected uint32, buf []byte, offset int) {
	t.Helper()
	need(t, buf, offset, 4, "uint32")

	actual := binary.LittleEndian.Uint32(buf[offset:])
	if actual != expected {
		t.Fatalf("uint32 mismatch at offset %d: expected 0x%08X, got 0x%08X", offset, expected, actual)
	}
}

// AssertUint16LE проверяет uint16 (little-endian) по смещению.
func AssertUint16LE(t testing.TB, expected uint16, buf []byte, offset int) {
	t.Helper()
	need(t, buf, offset, 2, "uint16")

	actual := binary.LittleEndian.Uint16(buf[offset:])
	if actual != expected {
		t.Fatalf("uint16 mismatch at offset %d: expected 0x%04X, got 0x%04X", offset, expected, actual)
	}
}

// AssertByteAtOffset проверяет один байт по смещению.
func AssertByteAtOffset(t testing.TB, expected byte, buf []byte, offset int) {
	t.Helper()
	need(t, buf, offset, 1, "byte")

	if actual := buf[offset]; actual != expected {
		t.Fatalf("byte mismatch at offset %d: expected 0x%02X, got 0x%02X", offset, expected, actual)
	}
}

// AssertBytesAt проверяет, что buf[offset:] начинается с expected.
func AssertBytesAt(t testing.TB, expected, buf []byte, offset int) {
	t.Helper()
	need(t, buf, offset, len(expected), "field")

	actual := buf[offset : offset+len(expected)]
	if !bytes.Equal(expected, actual) {
		t.Fatalf("bytes mismatch at offset %d\nexpected: % X\nactual:   % X", offset, expected, actual)
	}
}

// AssertLength проверяет длину буфера.
func AssertLength(t testing.TB, expected int, buf []byte) {
	t.Helper()

	if actual := len(buf); actual != expected {
		t.Fatalf("length mismatch: expected %d bytes, got %d bytes", expected, actual)
	}
}
