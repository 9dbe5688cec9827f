package keccak

import "github.com/pkg/errors"

// Rounds returns the number of rounds of Keccak-f at lane width w,
// 12 + 2*log2(w).
func Rounds(w int) (int, error) {
	l, err := log2Width(w)
	if err != nil {
		return 0, err
	}
	return 12 + 2*l, nil
}

// Permute applies the full Keccak-f permutation to s in place.
func Permute(s *State) {
	l, _ := log2Width(s.Width())
	permute(s, l, 12+2*l)
}

// PermuteRounds applies Keccak-p with nr rounds, which are the last nr
// rounds of Keccak-f (round indices 12+2l-nr .. 12+2l-1).
func PermuteRounds(s *State, nr int) error {
	l, err := log2Width(s.Width())
	if err != nil {
		return err
	}
	if nr < 1 || nr > 12+2*l {
		return errors.Wrapf(ErrInvalidRounds, "%d rounds at width %d", nr, s.Width())
	}
	permute(s, l, nr)
	return nil
}

func permute(s *State, l, nr int) {
	for ir := 12 + 2*l - nr; ir < 12+2*l; ir++ {
		theta(s)
		rho(s)
		pi(s)
		chi(s)
		iotaStep(s, ir)
	}
}

// theta XORs each bit with the parities of two neighbouring columns:
// column x-1 at the same z and column x+1 at z-1.
func theta(s *State) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = s.Lane(x, 0) ^ s.Lane(x, 1) ^ s.Lane(x, 2) ^ s.Lane(x, 3) ^ s.Lane(x, 4)
	}
	for x := 0; x < 5; x++ {
		d := c[mod(x-1, 5)] ^ s.rotl(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			s.lanes[laneIndex(x, y)] ^= d
		}
	}
}

// rho rotates every lane by its triangular-number offset.
func rho(s *State) {
	for i := range s.lanes {
		s.lanes[i] = s.rotl(s.lanes[i], rhoOffsets[i])
	}
}

// pi moves lane ((x+3y) mod 5, x) to (x, y).
func pi(s *State) {
	old := s.lanes
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			s.lanes[laneIndex(x, y)] = old[laneIndex(x+3*y, x)]
		}
	}
}

// chi is the only non-linear step, applied row by row.
func chi(s *State) {
	for y := 0; y < 5; y++ {
		var row [5]uint64
		for x := 0; x < 5; x++ {
			row[x] = s.Lane(x, y)
		}
		for x := 0; x < 5; x++ {
			s.lanes[laneIndex(x, y)] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// iotaStep XORs the round constant of round ir into lane (0, 0).
func iotaStep(s *State, ir int) {
	l, _ := log2Width(s.Width())
	s.lanes[0] ^= roundConstants[l-3][ir]
}

// rotl rotates a lane left by n mod w bits, so that bit z moves to z+n.
func (s *State) rotl(v uint64, n int) uint64 {
	k := uint(mod(n, int(s.w)))
	if k == 0 {
		return v
	}
	return (v<<k | v>>(s.w-k)) & s.mask()
}
