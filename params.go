package keccak

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Width is the permutation width used by every sponge in this package.
const Width = 1600

// maxRate is the largest rate in bytes of any Params (capacity 8).
const maxRate = (Width - 8) / 8

// Params fixes one sponge function: its rate, domain separation suffix and
// default output length. Values are built by the named constructors and
// never mutated afterwards.
type Params struct {
	name       string
	rate       int  // bits
	suffix     byte // domain suffix, first bit in the LSB
	suffixLen  int
	outputBits int
	xof        bool
}

// SHA3Params returns the parameters of SHA3-level for level in
// {224, 256, 384, 512}.
func SHA3Params(level int) (Params, error) {
	switch level {
	case 224, 256, 384, 512:
	default:
		return Params{}, errors.Wrapf(ErrInvalidLevel, "SHA3-%d", level)
	}
	return Params{
		name:       fmt.Sprintf("sha3-%d", level),
		rate:       Width - 2*level,
		suffix:     0b10,
		suffixLen:  2,
		outputBits: level,
	}, nil
}

// ShakeParams returns the parameters of SHAKE128 or SHAKE256.
func ShakeParams(level int) (Params, error) {
	if level != 128 && level != 256 {
		return Params{}, errors.Wrapf(ErrInvalidLevel, "SHAKE%d", level)
	}
	return Params{
		name:       fmt.Sprintf("shake%d", level),
		rate:       Width - 2*level,
		suffix:     0b1111,
		suffixLen:  4,
		outputBits: 2 * level,
		xof:        true,
	}, nil
}

// RawShakeParams returns the parameters of RawSHAKE128 or RawSHAKE256.
func RawShakeParams(level int) (Params, error) {
	if level != 128 && level != 256 {
		return Params{}, errors.Wrapf(ErrInvalidLevel, "RawSHAKE%d", level)
	}
	return Params{
		name:       fmt.Sprintf("rawshake%d", level),
		rate:       Width - 2*level,
		suffix:     0b11,
		suffixLen:  2,
		outputBits: 2 * level,
		xof:        true,
	}, nil
}

// KeccakParams returns the parameters of the bare Keccak[c] sponge: no
// domain separation, only pad10*1. The capacity must be a positive
// multiple of 8 below the permutation width.
func KeccakParams(capacity int) (Params, error) {
	if capacity <= 0 || capacity >= Width || capacity%8 != 0 {
		return Params{}, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return Params{
		name:       fmt.Sprintf("keccak-%d", capacity/2),
		rate:       Width - capacity,
		outputBits: capacity / 2,
		xof:        true,
	}, nil
}

// Lookup resolves an algorithm name such as "sha3-256", "shake128",
// "rawshake256" or "keccak-256". Names are case-insensitive.
func Lookup(name string) (Params, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	var level int
	switch {
	case scan(n, "sha3-%d", &level):
		return SHA3Params(level)
	case scan(n, "shake%d", &level):
		return ShakeParams(level)
	case scan(n, "rawshake%d", &level):
		return RawShakeParams(level)
	case scan(n, "keccak-%d", &level):
		p, err := KeccakParams(2 * level)
		if err != nil {
			return Params{}, err
		}
		// Keccak-v as used by Ethereum and friends has a fixed output.
		p.xof = false
		return p, nil
	}
	return Params{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

func scan(s, format string, v *int) bool {
	var rest string
	n, _ := fmt.Sscanf(s, format+"%s", v, &rest)
	return n == 1
}

// Name is the lowercase algorithm name, e.g. "sha3-256".
func (p Params) Name() string { return p.name }

// Rate is the sponge rate in bits.
func (p Params) Rate() int { return p.rate }

// Capacity is Width - Rate, in bits.
func (p Params) Capacity() int { return Width - p.rate }

// BlockSize is the rate in bytes.
func (p Params) BlockSize() int { return p.rate / 8 }

// OutputBits is the fixed digest length, or the default length for an XOF.
func (p Params) OutputBits() int { return p.outputBits }

// XOF reports whether the output length is chosen by the caller.
func (p Params) XOF() bool { return p.xof }

// padByte merges the domain suffix with the first bit of pad10*1:
// 0x06 for SHA3, 0x1f for SHAKE, 0x07 for RawSHAKE and 0x01 for Keccak.
func (p Params) padByte() byte {
	return p.suffix | 1<<uint(p.suffixLen)
}

func (p Params) String() string {
	return fmt.Sprintf("%s(r=%d, c=%d)", p.name, p.Rate(), p.Capacity())
}
