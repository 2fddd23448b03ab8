// Package keygen generates multi-prime RSA key pairs.
//
// Generation runs in fixed steps, each a pure function of the previous
// result:
//
//  1. sample k primes p_1 ... p_k from the configured range
//  2. n = p_1 * ... * p_k
//  3. phi = (p_1 - 1) * ... * (p_k - 1)
//  4. draw e uniformly from [2, phi - 1] until gcd(e, phi) = 1
//  5. d = e^-1 mod phi
//
// The public key is (e, n) and the private key is (d, n). Steps 2 to 5 are
// exported individually (Modulus, Totient, ChooseExponent, PrivateExponent)
// and as Derive, which runs them on caller supplied primes.
//
// # Failure modes
//
// Both rejection loops are bounded by the Config attempt budgets:
//   - mprsa.ErrPrimeGenerationExhausted: step 1 ran out of draws
//   - mprsa.ErrExponentSelectionExhausted: step 4 ran out of draws, or phi < 3
//   - mprsa.ErrNotInvertible: step 5 found gcd(e, phi) != 1
//
// None of them is retried here. Callers that want resilience retry the whole
// generation.
//
// # Concurrency
//
// A Generator wraps its Source with mprsa.Locked, so one Generator may be
// used from several goroutines. GenerateBatch relies on this.
package keygen
