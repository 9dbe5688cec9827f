package keccak

// paddedLen is the length of msg ‖ suffix ‖ 1 0* 1 in bytes: the least
// multiple of rate strictly greater than msgLen that also has room for the
// suffix and both framing bits.
func paddedLen(msgLen, rate, suffixLen int) int {
	bits := 8*msgLen + suffixLen + 2
	blockBits := 8 * rate
	return (bits + blockBits - 1) / blockBits * rate
}

// pad builds the padded message for p. The suffix and the first frame bit
// share the byte right after msg; the final frame bit is the MSB of the
// last byte. msg is not modified.
func pad(msg []byte, p Params) []byte {
	rate := p.BlockSize()
	out := make([]byte, paddedLen(len(msg), rate, p.suffixLen))
	copy(out, msg)
	out[len(msg)] = p.padByte()
	out[len(out)-1] |= 0x80
	return out
}
