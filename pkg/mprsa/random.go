package mprsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source draws uniformly distributed integers. Implementations are not
// required to be safe for concurrent use; see Locked.
type Source interface {
	// Int returns a uniform integer in the closed interval [lo, hi].
	// It returns ErrEmptyRange when lo > hi.
	Int(lo, hi *big.Int) (*big.Int, error)
}

type readerSource struct {
	r io.Reader
}

// NewReaderSource returns a Source that samples by rejection from the bytes
// produced by r. The result is uniform as long as r is.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: r}
}

// CryptoSource returns a Source backed by crypto/rand. It is safe for
// concurrent use.
func CryptoSource() Source {
	return &readerSource{r: rand.Reader}
}

// NewSeededSource returns a deterministic Source driven by a ChaCha8 stream
// keyed with seed. Two sources with the same seed produce the same draws.
// The returned Source is not safe for concurrent use.
func NewSeededSource(seed [32]byte) Source {
	return &readerSource{r: mrand.NewChaCha8(seed)}
}

func (s *readerSource) Int(lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil {
		return nil, fmt.Errorf("%w: nil bound", ErrInvalidArgument)
	}
	if lo.Cmp(hi) > 0 {
		return nil, fmt.Errorf("%w: [%s, %s]", ErrEmptyRange, lo, hi)
	}

	span := new(big.Int).Sub(hi, lo)
	span.Add(span, bigOne)

	x, err := uniformBelow(s.r, span)
	if err != nil {
		return nil, err
	}
	return x.Add(x, lo), nil
}

var bigOne = big.NewInt(1)

// uniformBelow returns a uniform value in [0, n) for n > 0. Candidates are
// read with the excess high bits masked off and rejected when >= n, so each
// draw succeeds with probability at least one half.
func uniformBelow(r io.Reader, n *big.Int) (*big.Int, error) {
	bitLen := n.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff)
	if rem := bitLen % 8; rem != 0 {
		mask = byte(1<<rem - 1)
	}

	x := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("read randomness: %w", err)
		}
		buf[0] &= mask
		x.SetBytes(buf)
		if x.Cmp(n) < 0 {
			return x, nil
		}
	}
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked wraps src so that it can be shared between goroutines. Wrapping an
// already locked source returns it unchanged.
func Locked(src Source) Source {
	if ls, ok := src.(*lockedSource); ok {
		return ls
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) Int(lo, hi *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Int(lo, hi)
}
