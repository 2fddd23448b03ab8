// Package cipher encrypts and decrypts sequences of integer message units
// with textbook RSA: every unit is raised to the key exponent modulo N on its
// own, with no padding and no chaining.
//
// Units must lie in [0, N). Out-of-range units are rejected with
// mprsa.ErrMessageOutOfRange rather than silently reduced, since reduction
// would decrypt to a different value than the one encrypted.
package cipher

import (
	"fmt"
	"math/big"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
)

// Encrypt maps every unit m to m^E mod N. The input slice is not modified.
func Encrypt(units []*big.Int, pub *mprsa.PublicKey) ([]*big.Int, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}
	return transform(units, pub.E, pub.N)
}

// Decrypt maps every unit c to c^D mod N. The input slice is not modified.
func Decrypt(units []*big.Int, priv *mprsa.PrivateKey) ([]*big.Int, error) {
	if err := priv.Validate(); err != nil {
		return nil, err
	}
	return transform(units, priv.D, priv.N)
}

// EncryptUnit encrypts a single unit.
func EncryptUnit(m *big.Int, pub *mprsa.PublicKey) (*big.Int, error) {
	out, err := Encrypt([]*big.Int{m}, pub)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// DecryptUnit decrypts a single unit.
func DecryptUnit(c *big.Int, priv *mprsa.PrivateKey) (*big.Int, error) {
	out, err := Decrypt([]*big.Int{c}, priv)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func transform(units []*big.Int, exp, mod *big.Int) ([]*big.Int, error) {
	for i, u := range units {
		if err := checkUnit(u, mod); err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
	}

	out := make([]*big.Int, len(units))
	for i, u := range units {
		out[i] = new(big.Int).Exp(u, exp, mod)
	}
	return out, nil
}

func checkUnit(u, mod *big.Int) error {
	switch {
	case u == nil:
		return fmt.Errorf("%w: nil unit", mprsa.ErrMessageOutOfRange)
	case u.Sign() < 0:
		return fmt.Errorf("%w: negative unit", mprsa.ErrMessageOutOfRange)
	case u.Cmp(mod) >= 0:
		return fmt.Errorf("%w: unit does not fit a %d-bit modulus", mprsa.ErrMessageOutOfRange, mod.BitLen())
	}
	return nil
}
