// Package testsource provides mprsa.Source implementations for testing purposes.
package testsource

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
)

// ErrScriptExhausted is returned once a Scripted source has handed out every
// queued value.
var ErrScriptExhausted = errors.New("scripted source exhausted")

// Scripted replays a fixed sequence of values. Each call to Int returns the
// next value, which must lie inside the requested range.
// WARNING: This is for driving exact test scenarios only.
type Scripted struct {
	mu     sync.Mutex
	values []*big.Int
	calls  int
}

// NewScripted creates a Scripted source that returns values in order.
func NewScripted(values ...int64) *Scripted {
	s := &Scripted{values: make([]*big.Int, len(values))}
	for i, v := range values {
		s.values[i] = big.NewInt(v)
	}
	return s
}

// Int returns the next scripted value.
func (s *Scripted) Int(lo, hi *big.Int) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.calls >= len(s.values) {
		return nil, ErrScriptExhausted
	}
	v := s.values[s.calls]
	s.calls++
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return nil, fmt.Errorf("scripted value %s outside [%s, %s]", v, lo, hi)
	}
	return new(big.Int).Set(v), nil
}

// Calls returns how many values were requested so far.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Counting wraps a source and counts the draws made through it.
type Counting struct {
	mu    sync.Mutex
	src   mprsa.Source
	calls int
}

// NewCounting wraps src.
func NewCounting(src mprsa.Source) *Counting {
	return &Counting{src: src}
}

// Int forwards to the wrapped source.
func (c *Counting) Int(lo, hi *big.Int) (*big.Int, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.src.Int(lo, hi)
}

// Calls returns how many draws were made.
func (c *Counting) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
