package keccak

import (
	"hash"
	"io"

	"github.com/pkg/errors"
)

// Hasher is a streaming sponge. Writes absorb, Read squeezes, and Sum
// finalizes a copy so the Hasher can keep absorbing. The zero value is a
// Keccak-256 hasher ready for use, so it can live on the stack.
type Hasher struct {
	params    Params
	state     State
	buf       [maxRate]byte
	absorbed  int
	squeezing bool
	// out holds the current squeezed block; pos is the next unread byte.
	out [maxRate]byte
	pos int
}

var (
	_ hash.Hash = (*Hasher)(nil)
	_ io.Reader = (*Hasher)(nil)
)

// NewHasher returns a Hasher for p. Sum produces p.OutputBits() bits.
// Params that did not come from a constructor are rejected.
func NewHasher(p Params) (*Hasher, error) {
	if p.rate <= 0 {
		return nil, errors.Wrap(ErrUnknownAlgorithm, "zero Params")
	}
	return newHasher(p), nil
}

func newHasher(p Params) *Hasher {
	h := &Hasher{params: p}
	h.Reset()
	return h
}

// New256 returns a streaming SHA3-256 Hasher.
func New256() *Hasher { return newHasher(params256) }

// NewLegacyKeccak256 returns a streaming Keccak-256 Hasher.
func NewLegacyKeccak256() *Hasher { return newHasher(paramsKeccak256) }

// init gives the zero value its Keccak-256 parameters.
func (h *Hasher) init() {
	if h.params.rate == 0 {
		h.params = paramsKeccak256
	}
	if h.state.w == 0 {
		h.state.w = 64
	}
}

// Reset resets the hasher to its initial state.
func (h *Hasher) Reset() {
	h.init()
	h.state = State{w: 64}
	h.absorbed = 0
	h.squeezing = false
	h.pos = 0
}

// Size is the output length of Sum in bytes.
func (h *Hasher) Size() int {
	h.init()
	return (h.params.outputBits + 7) / 8
}

// BlockSize is the sponge rate in bytes.
func (h *Hasher) BlockSize() int {
	h.init()
	return h.params.BlockSize()
}

// Params returns the parameters the Hasher was built with.
func (h *Hasher) Params() Params {
	h.init()
	return h.params
}

// Write absorbs p. It fails with ErrWriteAfterRead once Read was called.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.squeezing {
		return 0, errors.WithStack(ErrWriteAfterRead)
	}
	h.init()
	rate := h.params.BlockSize()
	written := len(p)

	if h.absorbed > 0 {
		n := copy(h.buf[h.absorbed:rate], p)
		h.absorbed += n
		p = p[n:]
		if h.absorbed == rate {
			h.state.xorIn(h.buf[:rate])
			Permute(&h.state)
			h.absorbed = 0
		}
	}

	for len(p) >= rate {
		h.state.xorIn(p[:rate])
		Permute(&h.state)
		p = p[rate:]
	}

	if len(p) > 0 {
		h.absorbed = copy(h.buf[:], p)
	}
	return written, nil
}

// Sum appends the digest to b. It does not modify the hasher. Sum after
// Read panics: the absorbed input is no longer available.
func (h *Hasher) Sum(b []byte) []byte {
	if h.squeezing {
		panic(errors.WithStack(ErrSumAfterRead))
	}
	h.init()
	dup := *h
	out := make([]byte, h.Size())
	if _, err := dup.Read(out); err != nil {
		panic(err)
	}
	truncateBits(out, h.params.outputBits)
	return append(b, out...)
}

// Read squeezes len(out) bytes. The first call pads and finalizes the
// absorbed input; later calls continue the same output stream.
func (h *Hasher) Read(out []byte) (int, error) {
	h.init()
	rate := h.params.BlockSize()
	if !h.squeezing {
		h.finalize(rate)
	}
	n := len(out)
	for len(out) > 0 {
		if h.pos == rate {
			Permute(&h.state)
			h.state.copyOut(h.out[:rate], 0)
			h.pos = 0
		}
		c := copy(out, h.out[h.pos:rate])
		h.pos += c
		out = out[c:]
	}
	return n, nil
}

// ReadBits squeezes ceil(bits/8) bytes and clears the bits of the last
// byte past bits. A later Read resumes at the next byte boundary.
func (h *Hasher) ReadBits(bits int) ([]byte, error) {
	if bits < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "%d bits", bits)
	}
	out := make([]byte, (bits+7)/8)
	if _, err := h.Read(out); err != nil {
		return nil, err
	}
	truncateBits(out, bits)
	return out, nil
}

func (h *Hasher) finalize(rate int) {
	// Same bytes pad() would append to the buffered tail.
	last := make([]byte, rate)
	copy(last, h.buf[:h.absorbed])
	last[h.absorbed] = h.params.padByte()
	last[rate-1] |= 0x80
	h.state.xorIn(last)
	Permute(&h.state)
	h.state.copyOut(h.out[:rate], 0)
	h.pos = 0
	h.squeezing = true
}
