// Package euclid implements the extended Euclidean algorithm and the modular
// inverse built on it.
package euclid

import (
	"fmt"
	"math/big"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
)

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients x and y
// such that a*x + b*y = g. The result always has g >= 0; for b = 0 it is
// (a, 1, 0), negated as a whole when a < 0. Inputs are not modified.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q, tmp := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		// oldR = q*r + rem with |rem| < |r|
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, oldR.Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, oldS.Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, oldT.Sub(oldT, tmp)
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedGCD(a, b)
	return g
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(bigOne) == 0
}

var bigOne = big.NewInt(1)

// ModInverse returns the x in [0, m) with a*x = 1 (mod m). It fails with
// mprsa.ErrNotInvertible when gcd(a, m) != 1 and with
// mprsa.ErrInvalidArgument when m <= 0.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, fmt.Errorf("%w: nil operand", mprsa.ErrInvalidArgument)
	}
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus %s is not positive", mprsa.ErrInvalidArgument, m)
	}

	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("%w: gcd is %s", mprsa.ErrNotInvertible, g)
	}
	// x may be negative; Mod is Euclidean and lands in [0, m).
	return x.Mod(x, m), nil
}
