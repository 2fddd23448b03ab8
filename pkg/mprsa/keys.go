package mprsa

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/logging"
)

// PublicKey is the encryption half of a key pair: the public exponent E and
// the modulus N.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the decryption half of a key pair: the private exponent D and
// the modulus N. D is never rendered by String or LogValue.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// Validate checks that the key can be used for encryption.
func (k *PublicKey) Validate() error {
	if k == nil {
		return fmt.Errorf("%w: nil public key", ErrInvalidKey)
	}
	return validatePair("public exponent", k.E, k.N)
}

// Validate checks that the key can be used for decryption.
func (k *PrivateKey) Validate() error {
	if k == nil {
		return fmt.Errorf("%w: nil private key", ErrInvalidKey)
	}
	return validatePair("private exponent", k.D, k.N)
}

func validatePair(name string, exp, mod *big.Int) error {
	switch {
	case mod == nil:
		return fmt.Errorf("%w: nil modulus", ErrInvalidKey)
	case mod.Cmp(bigTwo) < 0:
		return fmt.Errorf("%w: modulus must be at least 2", ErrInvalidKey)
	case exp == nil:
		return fmt.Errorf("%w: nil %s", ErrInvalidKey, name)
	case exp.Sign() <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidKey, name)
	}
	return nil
}

var bigTwo = big.NewInt(2)

// Fingerprint returns the hex encoded BLAKE2b-256 digest of the key. E and N
// are each hashed as a 4-byte big-endian length followed by their big-endian
// magnitude, so distinct keys never share an encoding.
func (k *PublicKey) Fingerprint() string {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	var lenBuf [4]byte
	for _, v := range []*big.Int{k.E, k.N} {
		b := v.Bytes()
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
		h.Write(lenBuf[:])
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// String renders the key as "(e, n)".
func (k *PublicKey) String() string {
	return "(" + k.E.String() + ", " + k.N.String() + ")"
}

// LogValue implements slog.LogValuer.
func (k *PublicKey) LogValue() slog.Value {
	return slog.GroupValue(
		logging.Fingerprint("fingerprint", k.Fingerprint()),
		logging.ModulusBits("modulus_bits", k.N),
	)
}

// String renders the modulus size only; the exponent is withheld.
func (k *PrivateKey) String() string {
	return fmt.Sprintf("(%s, %d-bit modulus)", logging.Placeholder(), k.N.BitLen())
}

// LogValue implements slog.LogValuer without exposing D.
func (k *PrivateKey) LogValue() slog.Value {
	return slog.GroupValue(
		logging.Redacted("private_exponent"),
		logging.ModulusBits("modulus_bits", k.N),
	)
}

// Destroy zeroizes the private exponent. The key is unusable afterwards.
func (k *PrivateKey) Destroy() {
	if k == nil {
		return
	}
	ZeroizeInt(k.D)
	k.D = nil
}
