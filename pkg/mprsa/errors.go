package mprsa

import "errors"

// ErrPrimeGenerationExhausted is returned when the prime sampler uses up its
// attempt budget before collecting the requested number of primes.
var ErrPrimeGenerationExhausted = errors.New("prime generation exhausted attempts")

// ErrExponentSelectionExhausted is returned when no public exponent coprime to
// the totient was found within the configured attempt budget.
var ErrExponentSelectionExhausted = errors.New("public exponent selection exhausted attempts")

// ErrNotInvertible indicates that a value has no inverse modulo the given
// modulus. During key generation this means e and the totient share a factor,
// which is a logic defect rather than bad luck.
var ErrNotInvertible = errors.New("value is not invertible modulo the modulus")

// ErrMessageOutOfRange is returned when a message or ciphertext unit is nil,
// negative, or not smaller than the key modulus.
var ErrMessageOutOfRange = errors.New("message unit out of range")

var (
	// ErrInvalidKey indicates a malformed public or private key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidArgument indicates a caller supplied argument outside the
	// domain of an operation (negative counts, non-positive moduli, ...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrEmptyRange is returned by a Source asked to draw from [lo, hi] with lo > hi.
	ErrEmptyRange = errors.New("empty range")
)
