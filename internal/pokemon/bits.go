package pokemon

// field extracts width bits of v starting at bit off (bit 0 = least significant).
func field(v uint32, off, width uint) uint32 {
	return (v >> off) & (1<<width - 1)
}

// setField stores x into width bits of v starting at off.
// Bits of x above width are dropped, the same truncation a packed bitfield applies.
func setField(v uint32, off, width uint, x uint32) uint32 {
	mask := uint32(1<<width-1) << off
	return v&^mask | (x<<off)&mask
}

func flag(v uint32, bit uint) bool {
	return field(v, bit, 1) == 1
}

func setFlag(v uint32, bit uint, on bool) uint32 {
	if on {
		return setField(v, bit, 1, 1)
	}
	return setField(v, bit, 1, 0)
}
