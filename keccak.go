// Package keccak implements the Keccak-p permutation and the sponge
// construction behind the FIPS 202 functions: SHA3-224/256/384/512,
// SHAKE128/256, RawSHAKE128/256, and the bare Keccak[c] sponge that
// Ethereum calls Keccak-256.
//
// The one-shot functions (Digest, Shake, RawShake, Keccak) take the whole
// message up front and return a fresh buffer. Hasher is the streaming
// variant and implements hash.Hash and io.Reader.
//
// Nothing here is constant time.
package keccak

import "github.com/pkg/errors"

// Digest returns SHA3-level of msg, level/8 bytes long.
func Digest(level int, msg []byte) ([]byte, error) {
	p, err := SHA3Params(level)
	if err != nil {
		return nil, err
	}
	return sponge(msg, level, p), nil
}

// Shake returns outputBits bits of SHAKE-level output for msg, packed
// into ceil(outputBits/8) bytes.
func Shake(level, outputBits int, msg []byte) ([]byte, error) {
	p, err := ShakeParams(level)
	if err != nil {
		return nil, err
	}
	return Sum(p, outputBits, msg)
}

// RawShake returns outputBits bits of RawSHAKE-level output for msg.
func RawShake(level, outputBits int, msg []byte) ([]byte, error) {
	p, err := RawShakeParams(level)
	if err != nil {
		return nil, err
	}
	return Sum(p, outputBits, msg)
}

// Keccak returns outputBits bits of Keccak[capacity](msg), with pad10*1
// and no domain separation.
func Keccak(msg []byte, outputBits, capacity int) ([]byte, error) {
	p, err := KeccakParams(capacity)
	if err != nil {
		return nil, err
	}
	return Sum(p, outputBits, msg)
}

// Sum runs the sponge described by p over msg and squeezes outputBits
// bits. For fixed-length functions outputBits must equal p.OutputBits().
func Sum(p Params, outputBits int, msg []byte) ([]byte, error) {
	if p.rate == 0 {
		return nil, errors.Wrap(ErrUnknownAlgorithm, "zero Params")
	}
	if outputBits < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "%d bits", outputBits)
	}
	if !p.xof && outputBits != p.outputBits {
		return nil, errors.Wrapf(ErrInvalidLength, "%s produces %d bits, asked for %d", p.name, p.outputBits, outputBits)
	}
	return sponge(msg, outputBits, p), nil
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (out [28]byte) {
	sumFixed(out[:], data, params224)
	return out
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (out [32]byte) {
	sumFixed(out[:], data, params256)
	return out
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (out [48]byte) {
	sumFixed(out[:], data, params384)
	return out
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (out [64]byte) {
	sumFixed(out[:], data, params512)
	return out
}

// Keccak256 computes the legacy Keccak-256 hash of data (domain byte 0x01,
// not SHA-3's 0x06).
func Keccak256(data []byte) (out [32]byte) {
	sumFixed(out[:], data, paramsKeccak256)
	return out
}

// Keccak512 computes the legacy Keccak-512 hash of data.
func Keccak512(data []byte) (out [64]byte) {
	sumFixed(out[:], data, paramsKeccak512)
	return out
}

var (
	params224       = mustParams(SHA3Params(224))
	params256       = mustParams(SHA3Params(256))
	params384       = mustParams(SHA3Params(384))
	params512       = mustParams(SHA3Params(512))
	paramsKeccak256 = mustParams(Lookup("keccak-256"))
	paramsKeccak512 = mustParams(KeccakParams(1024))
)

func mustParams(p Params, err error) Params {
	if err != nil {
		panic(err)
	}
	return p
}

func sumFixed(out, data []byte, p Params) {
	s := absorb(pad(data, p), p.BlockSize())
	squeeze(s, p.BlockSize(), out)
}
