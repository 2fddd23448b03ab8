package primes

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
)

// Sampler draws primes from a Source. A Sampler is safe for concurrent use
// only if its Source is.
type Sampler struct {
	src        mprsa.Source
	oracle     Oracle
	duplicates bool
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithOracle replaces the default ProbablePrime oracle.
func WithOracle(o Oracle) SamplerOption {
	return func(s *Sampler) {
		s.oracle = o
	}
}

// AllowDuplicates lets a prime appear more than once in a sample. By default
// a repeated prime is discarded and its draw still counts as an attempt.
func AllowDuplicates(allow bool) SamplerOption {
	return func(s *Sampler) {
		s.duplicates = allow
	}
}

// NewSampler returns a Sampler drawing candidates from src.
func NewSampler(src mprsa.Source, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		src:    src,
		oracle: ProbablePrime{Rounds: mprsa.DefaultPrimalityRounds},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample returns count primes drawn uniformly from [lower, upper], in the
// order they were found.
//
// Every draw counts as one attempt. The attempt counter is incremented before
// it is compared, so exactly maxAttempts draws are made before Sample gives up
// with mprsa.ErrPrimeGenerationExhausted. A range with lower > upper can
// never yield a prime and fails immediately with the same error.
func (s *Sampler) Sample(ctx context.Context, count int, lower, upper *big.Int, maxAttempts int) ([]*big.Int, error) {
	if count < 0 || maxAttempts < 0 {
		return nil, fmt.Errorf("%w: count %d, max attempts %d", mprsa.ErrInvalidArgument, count, maxAttempts)
	}
	if lower == nil || upper == nil {
		return nil, fmt.Errorf("%w: nil bound", mprsa.ErrInvalidArgument)
	}

	found := make([]*big.Int, 0, count)
	if count == 0 {
		return found, nil
	}
	if lower.Cmp(upper) > 0 {
		return nil, fmt.Errorf("%w: range [%s, %s] is empty", mprsa.ErrPrimeGenerationExhausted, lower, upper)
	}

	var seen map[string]struct{}
	if !s.duplicates {
		seen = make(map[string]struct{}, count)
	}

	attempts := 0
	for len(found) < count {
		attempts++
		if attempts > maxAttempts {
			return nil, fmt.Errorf("%w: found %d of %d primes in [%s, %s] within %d attempts",
				mprsa.ErrPrimeGenerationExhausted, len(found), count, lower, upper, maxAttempts)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, err := s.src.Int(lower, upper)
		if err != nil {
			return nil, fmt.Errorf("draw candidate: %w", err)
		}
		if !s.oracle.IsPrime(candidate) {
			continue
		}
		if seen != nil {
			key := candidate.String()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		found = append(found, candidate)
	}
	return found, nil
}
