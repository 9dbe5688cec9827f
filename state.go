package keccak

import "github.com/pkg/errors"

// StateBytes is the size of the Keccak-f[1600] state in bytes.
const StateBytes = 200

// State is a Keccak-p state of 25 lanes of w bits each.
//
// Lane (x, y) is stored at index 5y+x. Serialized, lane (x, y) occupies
// bytes [w/8*(5y+x), w/8*(5y+x)+w/8) and byte i of a lane holds bits
// 8i..8i+7, least significant bit first. All lane and bit offsets are
// computed here; the step mappings only go through these accessors.
//
// Build a State with NewState or StateFromBytes; the zero value has no
// width and Permute panics on it.
type State struct {
	lanes [25]uint64
	w     uint
}

// NewState returns a zeroed state with lane width w. Supported widths are
// the byte-addressable ones: 8, 16, 32 and 64.
func NewState(w int) (*State, error) {
	if _, err := log2Width(w); err != nil {
		return nil, err
	}
	return &State{w: uint(w)}, nil
}

// StateFromBytes converts a serialized state of 25*w/8 bytes into a State.
func StateFromBytes(w int, b []byte) (*State, error) {
	s, err := NewState(w)
	if err != nil {
		return nil, err
	}
	if len(b) != s.Size() {
		return nil, errors.Wrapf(ErrInvalidLength, "state of width %d needs %d bytes, got %d", w, s.Size(), len(b))
	}
	s.xorIn(b)
	return s, nil
}

// Bytes serializes the state. StateFromBytes(w, s.Bytes()) reproduces s.
func (s *State) Bytes() []byte {
	out := make([]byte, s.Size())
	s.copyOut(out, 0)
	return out
}

// Width is the lane width in bits.
func (s *State) Width() int { return int(s.w) }

// Size is the serialized state size in bytes.
func (s *State) Size() int { return 25 * s.laneBytes() }

// Lane returns lane (x, y). Coordinates are reduced mod 5.
func (s *State) Lane(x, y int) uint64 {
	return s.lanes[laneIndex(x, y)]
}

// SetLane sets lane (x, y), discarding bits above the lane width.
func (s *State) SetLane(x, y int, v uint64) {
	s.lanes[laneIndex(x, y)] = v & s.mask()
}

// Bit returns bit z of lane (x, y). x and y are reduced mod 5, z mod w.
func (s *State) Bit(x, y, z int) uint8 {
	return uint8(s.Lane(x, y)>>s.bitIndex(z)) & 1
}

// SetBit sets bit z of lane (x, y) to the low bit of v.
func (s *State) SetBit(x, y, z int, v uint8) {
	i := laneIndex(x, y)
	n := s.bitIndex(z)
	s.lanes[i] = s.lanes[i]&^(1<<n) | uint64(v&1)<<n
}

// Equal reports whether two states have the same width and contents.
func (s *State) Equal(o *State) bool {
	return s.w == o.w && s.lanes == o.lanes
}

func (s *State) laneBytes() int { return int(s.w) / 8 }

func (s *State) mask() uint64 {
	if s.w == 64 {
		return ^uint64(0)
	}
	return 1<<s.w - 1
}

func (s *State) bitIndex(z int) uint {
	return uint(mod(z, int(s.w)))
}

// xorIn XORs b into the state starting at byte 0.
func (s *State) xorIn(b []byte) {
	lb := s.laneBytes()
	// Whole lanes first, then the tail byte by byte.
	n := len(b) / lb
	for i := 0; i < n; i++ {
		s.lanes[i] ^= leUint(b[lb*i:lb*i+lb])
	}
	for k := n * lb; k < len(b); k++ {
		s.lanes[k/lb] ^= uint64(b[k]) << (8 * uint(k%lb))
	}
}

// copyOut fills dst with the serialized state starting at byte off.
func (s *State) copyOut(dst []byte, off int) {
	lb := s.laneBytes()
	for i := range dst {
		k := off + i
		dst[i] = byte(s.lanes[k/lb] >> (8 * uint(k%lb)))
	}
}

func laneIndex(x, y int) int {
	return 5*mod(y, 5) + mod(x, 5)
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// leUint reads a little-endian integer of len(b) <= 8 bytes.
func leUint(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// log2Width returns log2(w) for the supported lane widths.
func log2Width(w int) (int, error) {
	switch w {
	case 8:
		return 3, nil
	case 16:
		return 4, nil
	case 32:
		return 5, nil
	case 64:
		return 6, nil
	}
	return 0, errors.Wrapf(ErrInvalidWidth, "width %d", w)
}
