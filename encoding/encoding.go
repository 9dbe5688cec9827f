// Package encoding turns digests into printable strings: lowercase hex,
// padded base64, multihash and any multibase alphabet.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"

	keccak "github.com/Giulio2002/keccakp"
)

// ErrNoMultihashCode is returned for functions without a multihash code,
// such as RawSHAKE.
var ErrNoMultihashCode = errors.New("encoding: no multihash code")

// EncodeHex returns the lowercase hex form of b, two characters per byte.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex parses an even-length hex string. Upper case digits are
// accepted; EncodeHex always emits lower case.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding hex %q", s)
	}
	return b, nil
}

// EncodeBase64 returns the RFC 4648 standard encoding of b, padded with '='.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 reverses EncodeBase64.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64")
	}
	return b, nil
}

var multihashCodes = map[string]uint64{
	"sha3-224":   multihash.SHA3_224,
	"sha3-256":   multihash.SHA3_256,
	"sha3-384":   multihash.SHA3_384,
	"sha3-512":   multihash.SHA3_512,
	"shake128":   multihash.SHAKE_128,
	"shake256":   multihash.SHAKE_256,
	"keccak-224": multihash.KECCAK_224,
	"keccak-256": multihash.KECCAK_256,
	"keccak-384": multihash.KECCAK_384,
	"keccak-512": multihash.KECCAK_512,
}

// Multihash wraps digest, produced by the function p, in a multihash.
func Multihash(p keccak.Params, digest []byte) (multihash.Multihash, error) {
	code, ok := multihashCodes[p.Name()]
	if !ok {
		return nil, errors.Wrap(ErrNoMultihashCode, p.Name())
	}
	mh, err := multihash.Encode(digest, code)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s multihash", p.Name())
	}
	return mh, nil
}

// Multibase encodes data with the multibase alphabet called name, e.g.
// "base32" or "base58btc". The result carries the multibase prefix.
func Multibase(name string, data []byte) (string, error) {
	enc, err := multibase.EncoderByName(name)
	if err != nil {
		return "", errors.Wrapf(err, "multibase %q", name)
	}
	return enc.Encode(data), nil
}

// Format renders digest in the named format: "hex", "base64", "multihash"
// (base58btc multihash, as printed by ipfs) or any multibase name.
func Format(format string, p keccak.Params, digest []byte) (string, error) {
	switch strings.ToLower(format) {
	case "", "hex":
		return EncodeHex(digest), nil
	case "base64":
		return EncodeBase64(digest), nil
	case "multihash":
		mh, err := Multihash(p, digest)
		if err != nil {
			return "", err
		}
		return mh.B58String(), nil
	}
	return Multibase(format, digest)
}
