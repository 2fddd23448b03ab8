package primes

import "math/big"

// Oracle decides whether a candidate is prime.
type Oracle interface {
	IsPrime(candidate *big.Int) bool
}

// OracleFunc adapts an ordinary function to the Oracle interface.
type OracleFunc func(candidate *big.Int) bool

// IsPrime calls f(candidate).
func (f OracleFunc) IsPrime(candidate *big.Int) bool {
	return f(candidate)
}

// ProbablePrime is a probabilistic Oracle built on big.Int.ProbablyPrime:
// Baillie-PSW plus Rounds Miller-Rabin rounds with pseudorandom bases.
//
// The answer is exact for candidates below 2^64. Above that the probability
// of accepting a composite is at most 4^-Rounds, even for adversarially
// chosen input. Rounds = 0 runs Baillie-PSW only.
type ProbablePrime struct {
	Rounds int
}

// IsPrime reports whether candidate is probably prime. Values below 2 are
// never prime.
func (p ProbablePrime) IsPrime(candidate *big.Int) bool {
	if candidate == nil || candidate.Sign() <= 0 {
		return false
	}
	rounds := p.Rounds
	if rounds < 0 {
		rounds = 0
	}
	return candidate.ProbablyPrime(rounds)
}
