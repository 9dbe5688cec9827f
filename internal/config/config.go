// Package config loads sha3sum defaults from a TOML file.
//
//	[hash]
//	algorithm = "shake256"
//	bits = 512
//	encoding = "base32"
//
//	[log]
//	level = "debug"
//	json = true
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	keccak "github.com/Giulio2002/keccakp"
	"github.com/Giulio2002/keccakp/internal/log"
)

// Config holds the tool's settings.
type Config struct {
	Hash Hash `toml:"hash"`
	Log  Log  `toml:"log"`
}

// Hash selects the function and the output.
type Hash struct {
	Algorithm string `toml:"algorithm"`
	// Bits is the output length for XOFs; 0 means the function's default.
	Bits     int    `toml:"bits"`
	Encoding string `toml:"encoding"`
}

// Log configures internal/log.
type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Default is SHA3-256, hex output, warnings only.
func Default() Config {
	return Config{
		Hash: Hash{Algorithm: "sha3-256", Encoding: "hex"},
		Log:  Log{Level: "warn"},
	}
}

// Load reads path over Default. Unknown keys are an error so typos do
// not silently fall back to defaults.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return c, c.Validate()
}

// Validate checks that the algorithm, output length and log level exist.
func (c Config) Validate() error {
	if _, _, err := c.Params(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Params resolves the hash section to sponge parameters and an output
// length in bits.
func (c Config) Params() (keccak.Params, int, error) {
	p, err := keccak.Lookup(c.Hash.Algorithm)
	if err != nil {
		return keccak.Params{}, 0, err
	}
	bits := c.Hash.Bits
	switch {
	case bits == 0:
		bits = p.OutputBits()
	case bits < 0:
		return keccak.Params{}, 0, errors.Wrapf(keccak.ErrInvalidLength, "%d bits", bits)
	case !p.XOF() && bits != p.OutputBits():
		return keccak.Params{}, 0, errors.Wrapf(keccak.ErrInvalidLength,
			"%s has a fixed %d-bit output, got %d", p.Name(), p.OutputBits(), bits)
	}
	return p, bits, nil
}
