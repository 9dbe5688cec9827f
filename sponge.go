package keccak

// absorb XORs every rate-sized block of padded into a fresh Keccak-f[1600]
// state, permuting after each one. The capacity is never written.
func absorb(padded []byte, rate int) *State {
	s := &State{w: 64}
	for len(padded) > 0 {
		s.xorIn(padded[:rate])
		Permute(s)
		padded = padded[rate:]
	}
	return s
}

// squeeze fills out from the first rate bytes of s, permuting between
// blocks. The last block is cut to what out still needs.
func squeeze(s *State, rate int, out []byte) {
	for len(out) > 0 {
		n := min(rate, len(out))
		s.copyOut(out[:n], 0)
		out = out[n:]
		if len(out) > 0 {
			Permute(s)
		}
	}
}

// sponge runs pad, absorb and squeeze for p and returns ceil(bits/8)
// bytes. Bits past the requested length in the last byte are cleared.
func sponge(msg []byte, bits int, p Params) []byte {
	rate := p.BlockSize()
	s := absorb(pad(msg, p), rate)
	out := make([]byte, (bits+7)/8)
	squeeze(s, rate, out)
	truncateBits(out, bits)
	return out
}

func truncateBits(out []byte, bits int) {
	if r := bits % 8; r != 0 {
		out[len(out)-1] &= 1<<uint(r) - 1
	}
}
