// Package mprsa is a multi-prime textbook RSA library. Key generation samples
// any number of primes, derives the modulus and totient from them, and picks a
// public/private exponent pair; encryption and decryption are plain modular
// exponentiation over integer message units.
//
// # Security Warning
//
// This package is NOT a secure cryptosystem and must not protect real data:
//   - No padding scheme (no OAEP, no PKCS#1 v1.5)
//   - No constant-time arithmetic
//   - Primes are drawn from small, caller-chosen ranges
//   - Every message unit is encrypted independently
//
// # Layout
//
// The root package holds the shared types: keys, configuration, errors and
// the injected randomness Source. Each component lives in its own subpackage:
//
//	primes   primality oracle and attempt-bounded prime sampler
//	euclid   extended Euclidean algorithm and modular inverses
//	keygen   key generation (single, step-by-step and batch)
//	cipher   encryption and decryption of message units
//	codec    string <-> message unit conversion
//	logging  slog-backed logging facade
//
// # Usage
//
//	pub, priv, err := keygen.GenerateKeyPair(ctx, 3)
//	if err != nil {
//	    return err
//	}
//	ct, err := cipher.Encrypt(codec.FromString("hi"), pub)
//	...
//	pt, err := cipher.Decrypt(ct, priv)
//	msg, err := codec.ToString(pt)
//
// # Randomness
//
// Randomness is always passed in explicitly as a Source. CryptoSource is
// safe for concurrent use; seeded sources are not and must be wrapped with
// Locked before they are shared between goroutines.
package mprsa
