package keccak

// rc is the output bit of the round-constant LFSR with feedback polynomial
// x^8 + x^6 + x^5 + x^4 + 1, clocked t times from the register 10000000.
//
// The register is kept with R[i] at bit i, so a shift towards higher FIPS
// indices is a left shift and the taps R[0], R[4], R[5], R[6] are 0x71.
func rc(t int) uint8 {
	t = mod(t, 255)
	if t == 0 {
		return 1
	}
	r := uint16(0x01)
	for i := 0; i < t; i++ {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return uint8(r & 1)
}

// roundConstant builds the iota lane for round ir at lane width 2^l.
// Only bits 2^j-1 for j = 0..l are ever set.
func roundConstant(ir, l int) uint64 {
	var c uint64
	for j := 0; j <= l; j++ {
		c |= uint64(rc(j+7*ir)) << (1<<uint(j) - 1)
	}
	return c
}

// roundConstants holds the constants for rounds 0..12+2l-1 of every
// supported width, indexed by l-3. It never changes after init.
var roundConstants = func() (tables [4][]uint64) {
	for l := 3; l <= 6; l++ {
		t := make([]uint64, 12+2*l)
		for ir := range t {
			t[ir] = roundConstant(ir, l)
		}
		tables[l-3] = t
	}
	return tables
}()

// rhoOffsets holds the rho rotation of each lane before reduction mod w.
// Lane (0,0) is never rotated; the others are visited along
// (x, y) -> (y, 2x+3y) from (1, 0) and get the triangular numbers.
var rhoOffsets = func() (o [25]int) {
	x, y := 1, 0
	for t := 0; t < 24; t++ {
		o[laneIndex(x, y)] = (t + 1) * (t + 2) / 2
		x, y = y, (2*x+3*y)%5
	}
	return o
}()
