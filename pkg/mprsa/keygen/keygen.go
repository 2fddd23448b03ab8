package keygen

import (
	"context"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/euclid"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/logging"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/primes"
)

// Material is the complete output of one generation. Primes and Totient are
// secret; hand out only Public() unless the private half is needed.
type Material struct {
	Primes  []*big.Int
	Modulus *big.Int
	Totient *big.Int
	E       *big.Int
	D       *big.Int
}

// Public returns the public key (E, N).
func (m *Material) Public() *mprsa.PublicKey {
	return &mprsa.PublicKey{E: new(big.Int).Set(m.E), N: new(big.Int).Set(m.Modulus)}
}

// Private returns the private key (D, N).
func (m *Material) Private() *mprsa.PrivateKey {
	return &mprsa.PrivateKey{D: new(big.Int).Set(m.D), N: new(big.Int).Set(m.Modulus)}
}

// Destroy zeroizes the secret values held by m.
func (m *Material) Destroy() {
	for _, p := range m.Primes {
		mprsa.ZeroizeInt(p)
	}
	mprsa.ZeroizeInt(m.Totient)
	mprsa.ZeroizeInt(m.D)
	m.Primes = nil
}

// Generator produces key pairs from a Config and a randomness Source.
type Generator struct {
	cfg     mprsa.Config
	src     mprsa.Source
	sampler *primes.Sampler
	logger  logging.Logger
	oracle  primes.Oracle
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithOracle replaces the primality oracle built from Config.PrimalityRounds.
func WithOracle(o primes.Oracle) Option {
	return func(g *Generator) {
		g.oracle = o
	}
}

// New validates cfg and returns a Generator drawing from src.
func New(src mprsa.Source, cfg mprsa.Config, opts ...Option) (*Generator, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", mprsa.ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		src:    mprsa.Locked(src),
		logger: logging.Nop(),
		oracle: primes.ProbablePrime{Rounds: cfg.PrimalityRounds},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.sampler = primes.NewSampler(g.src,
		primes.WithOracle(g.oracle),
		primes.AllowDuplicates(cfg.AllowDuplicatePrimes),
	)
	return g, nil
}

// GenerateKeyPair generates a key pair from numPrimes primes using
// mprsa.DefaultConfig and mprsa.CryptoSource.
func GenerateKeyPair(ctx context.Context, numPrimes int) (*mprsa.PublicKey, *mprsa.PrivateKey, error) {
	g, err := New(mprsa.CryptoSource(), mprsa.DefaultConfig())
	if err != nil {
		return nil, nil, err
	}
	return g.Generate(ctx, numPrimes)
}

// Generate returns a fresh key pair built from numPrimes primes.
func (g *Generator) Generate(ctx context.Context, numPrimes int) (*mprsa.PublicKey, *mprsa.PrivateKey, error) {
	m, err := g.GenerateMaterial(ctx, numPrimes)
	if err != nil {
		return nil, nil, err
	}
	pub, priv := m.Public(), m.Private()
	m.Destroy()
	return pub, priv, nil
}

// GenerateMaterial runs the full generation and returns every intermediate
// value.
func (g *Generator) GenerateMaterial(ctx context.Context, numPrimes int) (*Material, error) {
	if numPrimes < 1 {
		return nil, fmt.Errorf("%w: need at least one prime, got %d", mprsa.ErrInvalidArgument, numPrimes)
	}

	logger := g.logger.With("generation_id", uuid.NewString())
	logger.Debug(ctx, "key generation started", "num_primes", numPrimes)

	lower, upper := g.cfg.Bounds()
	ps, err := g.sampler.Sample(ctx, numPrimes, lower, upper, g.cfg.MaxPrimeAttempts)
	if err != nil {
		logger.Debug(ctx, "prime sampling failed", "error", err)
		return nil, fmt.Errorf("sample primes: %w", err)
	}
	logger.Debug(ctx, "primes sampled", "count", len(ps), logging.Redacted("primes"))

	m, err := g.derive(ctx, ps)
	if err != nil {
		logger.Debug(ctx, "key derivation failed", "error", err)
		return nil, err
	}
	logger.Debug(ctx, "key pair generated", "public_key", m.Public())
	return m, nil
}

// Derive runs steps 2 to 5 on caller supplied primes. The primes are not
// checked for primality; non-prime or repeated factors produce keys that do
// not round trip.
func (g *Generator) Derive(ctx context.Context, ps []*big.Int) (*Material, error) {
	if len(ps) == 0 {
		return nil, fmt.Errorf("%w: no primes", mprsa.ErrInvalidArgument)
	}
	for i, p := range ps {
		if p == nil || p.Cmp(bigTwo) < 0 {
			return nil, fmt.Errorf("%w: factor %d is below 2", mprsa.ErrInvalidArgument, i)
		}
	}
	return g.derive(ctx, ps)
}

func (g *Generator) derive(ctx context.Context, ps []*big.Int) (*Material, error) {
	n := Modulus(ps)
	phi := Totient(ps)

	e, err := g.ChooseExponent(ctx, phi)
	if err != nil {
		return nil, err
	}
	d, err := PrivateExponent(e, phi)
	if err != nil {
		return nil, err
	}

	own := make([]*big.Int, len(ps))
	for i, p := range ps {
		own[i] = new(big.Int).Set(p)
	}
	return &Material{Primes: own, Modulus: n, Totient: phi, E: e, D: d}, nil
}

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// Modulus returns the product of ps.
func Modulus(ps []*big.Int) *big.Int {
	n := big.NewInt(1)
	for _, p := range ps {
		n.Mul(n, p)
	}
	return n
}

// Totient returns the product of (p - 1) over ps. For distinct primes this is
// Euler's totient of their product.
func Totient(ps []*big.Int) *big.Int {
	phi := big.NewInt(1)
	pm1 := new(big.Int)
	for _, p := range ps {
		phi.Mul(phi, pm1.Sub(p, bigOne))
	}
	return phi
}

// ChooseExponent draws e uniformly from [2, phi - 1] until gcd(e, phi) = 1,
// giving up with mprsa.ErrExponentSelectionExhausted after
// Config.MaxExponentAttempts draws. phi < 3 leaves no candidate at all.
func (g *Generator) ChooseExponent(ctx context.Context, phi *big.Int) (*big.Int, error) {
	if phi == nil || phi.Cmp(bigThree) < 0 {
		return nil, fmt.Errorf("%w: totient below 3 leaves no exponent in [2, phi-1]", mprsa.ErrExponentSelectionExhausted)
	}
	hi := new(big.Int).Sub(phi, bigOne)

	for attempt := 1; attempt <= g.cfg.MaxExponentAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := g.src.Int(bigTwo, hi)
		if err != nil {
			return nil, fmt.Errorf("draw exponent: %w", err)
		}
		if euclid.Coprime(e, phi) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: no exponent coprime to the totient within %d attempts",
		mprsa.ErrExponentSelectionExhausted, g.cfg.MaxExponentAttempts)
}

// PrivateExponent returns d = e^-1 mod phi in [0, phi).
func PrivateExponent(e, phi *big.Int) (*big.Int, error) {
	d, err := euclid.ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("derive private exponent: %w", err)
	}
	return d, nil
}
