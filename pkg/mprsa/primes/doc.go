// Package primes decides primality and samples primes from a bounded range.
//
// Sampling is rejection sampling: candidates are drawn uniformly from
// [lower, upper] and kept when the Oracle accepts them. The number of draws is
// capped so that ranges without enough primes fail with
// mprsa.ErrPrimeGenerationExhausted instead of spinning forever.
package primes
