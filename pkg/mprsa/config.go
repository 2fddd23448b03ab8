package mprsa

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPrimalityRounds bounds the false-positive rate of the primality
// oracle by 4^-64 = 2^-128 for adversarially chosen candidates.
const DefaultPrimalityRounds = 64

// Config holds the knobs of key generation. The zero value is not usable;
// start from DefaultConfig and override fields.
type Config struct {
	// LowerBound and UpperBound delimit the closed range primes are drawn from.
	LowerBound int64 `yaml:"lower_bound"`
	UpperBound int64 `yaml:"upper_bound"`

	// MaxPrimeAttempts caps the number of candidate draws per generation.
	MaxPrimeAttempts int `yaml:"max_prime_attempts"`

	// MaxExponentAttempts caps the number of public exponent draws.
	MaxExponentAttempts int `yaml:"max_exponent_attempts"`

	// PrimalityRounds is the number of Miller-Rabin rounds run on top of
	// Baillie-PSW for each candidate.
	PrimalityRounds int `yaml:"primality_rounds"`

	// AllowDuplicatePrimes lets the same prime be sampled more than once.
	// A repeated prime makes the derived totient wrong, so decryption no
	// longer inverts encryption for every message.
	AllowDuplicatePrimes bool `yaml:"allow_duplicate_primes"`

	// Workers bounds the concurrency of batch generation.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the configuration used by keygen.GenerateKeyPair.
func DefaultConfig() Config {
	return Config{
		LowerBound:          100,
		UpperBound:          1000,
		MaxPrimeAttempts:    10000,
		MaxExponentAttempts: 10000,
		PrimalityRounds:     DefaultPrimalityRounds,
		Workers:             4,
	}
}

// Validate reports the first problem found in c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.LowerBound < 2:
		return fmt.Errorf("%w: lower_bound %d is below 2", ErrInvalidConfig, c.LowerBound)
	case c.UpperBound < c.LowerBound:
		return fmt.Errorf("%w: upper_bound %d is below lower_bound %d", ErrInvalidConfig, c.UpperBound, c.LowerBound)
	case c.MaxPrimeAttempts < 1:
		return fmt.Errorf("%w: max_prime_attempts must be positive", ErrInvalidConfig)
	case c.MaxExponentAttempts < 1:
		return fmt.Errorf("%w: max_exponent_attempts must be positive", ErrInvalidConfig)
	case c.PrimalityRounds < 0:
		return fmt.Errorf("%w: primality_rounds must not be negative", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	}
	return nil
}

// Bounds returns the prime range as big integers.
func (c Config) Bounds() (lower, upper *big.Int) {
	return big.NewInt(c.LowerBound), big.NewInt(c.UpperBound)
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted fields keep
// their defaults. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode yaml: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
