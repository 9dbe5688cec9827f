package keccak

import "github.com/pkg/errors"

// Configuration errors. Every failure of this package is one of these,
// wrapped with the offending value; match with errors.Is.
var (
	ErrInvalidLevel     = errors.New("keccak: unsupported security level")
	ErrInvalidLength    = errors.New("keccak: invalid output length")
	ErrInvalidCapacity  = errors.New("keccak: invalid capacity")
	ErrInvalidWidth     = errors.New("keccak: invalid lane width")
	ErrInvalidRounds    = errors.New("keccak: invalid round count")
	ErrUnknownAlgorithm = errors.New("keccak: unknown algorithm")
	ErrWriteAfterRead   = errors.New("keccak: write to sponge after read")
	ErrSumAfterRead     = errors.New("keccak: Sum after Read")
)
