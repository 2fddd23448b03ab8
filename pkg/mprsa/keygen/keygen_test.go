package keygen_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/internal/testsource"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/keygen"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/logging"
)

func smallConfig() mprsa.Config {
	cfg := mprsa.DefaultConfig()
	cfg.LowerBound = 2
	cfg.UpperBound = 100
	return cfg
}

func newGenerator(t *testing.T, src mprsa.Source, cfg mprsa.Config, opts ...keygen.Option) *keygen.Generator {
	t.Helper()
	g, err := keygen.New(src, cfg, opts...)
	require.NoError(t, err)
	return g
}

// checkMaterial asserts the invariants every generated key must satisfy.
func checkMaterial(t *testing.T, m *keygen.Material, numPrimes int) {
	t.Helper()
	require.Len(t, m.Primes, numPrimes)

	n, phi := big.NewInt(1), big.NewInt(1)
	for _, p := range m.Primes {
		n.Mul(n, p)
		phi.Mul(phi, new(big.Int).Sub(p, big.NewInt(1)))
	}
	assert.Zero(t, n.Cmp(m.Modulus), "modulus is not the product of the primes")
	assert.Zero(t, phi.Cmp(m.Totient), "totient is not the product of p-1")

	assert.True(t, m.E.Cmp(big.NewInt(2)) >= 0 && m.E.Cmp(m.Totient) < 0, "e=%s outside [2, phi)", m.E)
	assert.Zero(t, new(big.Int).GCD(nil, nil, m.E, m.Totient).Cmp(big.NewInt(1)), "gcd(e, phi) != 1")

	assert.True(t, m.D.Sign() >= 0 && m.D.Cmp(m.Totient) < 0, "d outside [0, phi)")
	ed := new(big.Int).Mul(m.E, m.D)
	assert.Zero(t, ed.Mod(ed, m.Totient).Cmp(big.NewInt(1)), "e*d mod phi != 1")
}

func TestGenerateKnownScenario(t *testing.T) {
	// Primes 61 and 53, then e = 17.
	src := testsource.NewScripted(61, 53, 17)
	g := newGenerator(t, src, smallConfig())

	m, err := g.GenerateMaterial(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(3233), m.Modulus.Int64())
	assert.Equal(t, int64(3120), m.Totient.Int64())
	assert.Equal(t, int64(17), m.E.Int64())
	assert.Equal(t, int64(2753), m.D.Int64())
	assert.Equal(t, 3, src.Calls())

	pub, priv := m.Public(), m.Private()
	c := new(big.Int).Exp(big.NewInt(65), pub.E, pub.N)
	assert.Equal(t, int64(2790), c.Int64())
	assert.Equal(t, int64(65), new(big.Int).Exp(c, priv.D, priv.N).Int64())
}

func TestGenerateProperties(t *testing.T) {
	g := newGenerator(t, mprsa.NewSeededSource([32]byte{42}), mprsa.DefaultConfig())

	for numPrimes := 1; numPrimes <= 6; numPrimes++ {
		m, err := g.GenerateMaterial(context.Background(), numPrimes)
		require.NoError(t, err, "num_primes=%d", numPrimes)
		checkMaterial(t, m, numPrimes)
	}
}

func TestGenerateSinglePrime(t *testing.T) {
	g := newGenerator(t, mprsa.CryptoSource(), mprsa.DefaultConfig())

	m, err := g.GenerateMaterial(context.Background(), 1)
	require.NoError(t, err)
	checkMaterial(t, m, 1)
	assert.Zero(t, m.Modulus.Cmp(m.Primes[0]))
}

func TestGenerateReturnsIndependentKeys(t *testing.T) {
	g := newGenerator(t, testsource.NewScripted(61, 53, 17), smallConfig())

	pub, priv, err := g.Generate(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(17), pub.E.Int64())
	assert.Equal(t, int64(3233), pub.N.Int64())
	// Generate destroys its Material; the returned keys must survive that.
	assert.Equal(t, int64(2753), priv.D.Int64())
	assert.Equal(t, int64(3233), priv.N.Int64())
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	gen := func() *keygen.Material {
		g := newGenerator(t, mprsa.NewSeededSource([32]byte{5}), mprsa.DefaultConfig())
		m, err := g.GenerateMaterial(context.Background(), 3)
		require.NoError(t, err)
		return m
	}

	a, b := gen(), gen()
	assert.Zero(t, a.Modulus.Cmp(b.Modulus))
	assert.Zero(t, a.E.Cmp(b.E))
	assert.Zero(t, a.D.Cmp(b.D))
}

func TestGenerateInvalidPrimeCount(t *testing.T) {
	g := newGenerator(t, mprsa.CryptoSource(), mprsa.DefaultConfig())

	for _, n := range []int{0, -1} {
		_, err := g.GenerateMaterial(context.Background(), n)
		assert.ErrorIs(t, err, mprsa.ErrInvalidArgument)
	}
}

func TestGeneratePrimeExhaustion(t *testing.T) {
	cfg := mprsa.DefaultConfig()
	cfg.LowerBound = 24
	cfg.UpperBound = 28
	cfg.MaxPrimeAttempts = 5

	_, _, err := newGenerator(t, mprsa.CryptoSource(), cfg).Generate(context.Background(), 2)
	assert.ErrorIs(t, err, mprsa.ErrPrimeGenerationExhausted)
}

func TestChooseExponentExhaustion(t *testing.T) {
	t.Run("bounded draws", func(t *testing.T) {
		cfg := smallConfig()
		cfg.MaxExponentAttempts = 3
		// Primes 7 and 11 give phi = 60; 2, 4 and 6 all share a factor with it.
		src := testsource.NewScripted(7, 11, 2, 4, 6)

		_, err := newGenerator(t, src, cfg).GenerateMaterial(context.Background(), 2)
		assert.ErrorIs(t, err, mprsa.ErrExponentSelectionExhausted)
		assert.Equal(t, 5, src.Calls())
	})

	t.Run("totient too small", func(t *testing.T) {
		g := newGenerator(t, mprsa.CryptoSource(), smallConfig())
		// phi = (2-1)*(3-1) = 2 leaves [2, 1] empty.
		_, err := g.Derive(context.Background(), []*big.Int{big.NewInt(2), big.NewInt(3)})
		assert.ErrorIs(t, err, mprsa.ErrExponentSelectionExhausted)
	})
}

func TestDerive(t *testing.T) {
	g := newGenerator(t, testsource.NewScripted(17), smallConfig())

	ps := []*big.Int{big.NewInt(61), big.NewInt(53)}
	m, err := g.Derive(context.Background(), ps)
	require.NoError(t, err)
	checkMaterial(t, m, 2)
	assert.Equal(t, int64(2753), m.D.Int64())

	m.Destroy()
	assert.Equal(t, int64(61), ps[0].Int64(), "Destroy must not touch caller primes")
}

func TestDeriveInvalid(t *testing.T) {
	g := newGenerator(t, mprsa.CryptoSource(), smallConfig())

	_, err := g.Derive(context.Background(), nil)
	assert.ErrorIs(t, err, mprsa.ErrInvalidArgument)

	_, err = g.Derive(context.Background(), []*big.Int{big.NewInt(61), big.NewInt(1)})
	assert.ErrorIs(t, err, mprsa.ErrInvalidArgument)

	_, err = g.Derive(context.Background(), []*big.Int{nil})
	assert.ErrorIs(t, err, mprsa.ErrInvalidArgument)
}

func TestAllowDuplicatePrimes(t *testing.T) {
	cfg := smallConfig()
	cfg.AllowDuplicatePrimes = true
	src := testsource.NewScripted(7, 7, 5)

	m, err := newGenerator(t, src, cfg).GenerateMaterial(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(49), m.Modulus.Int64())
	assert.Equal(t, int64(36), m.Totient.Int64())
	assert.Equal(t, int64(29), m.D.Int64())
}

func TestModulusAndTotient(t *testing.T) {
	ps := []*big.Int{big.NewInt(3), big.NewInt(5), big.NewInt(7)}
	assert.Equal(t, int64(105), keygen.Modulus(ps).Int64())
	assert.Equal(t, int64(48), keygen.Totient(ps).Int64())
	assert.Equal(t, int64(1), keygen.Modulus(nil).Int64())
}

func TestPrivateExponentNotInvertible(t *testing.T) {
	_, err := keygen.PrivateExponent(big.NewInt(4), big.NewInt(3120))
	assert.ErrorIs(t, err, mprsa.ErrNotInvertible)
}

func TestNewValidation(t *testing.T) {
	_, err := keygen.New(nil, mprsa.DefaultConfig())
	assert.ErrorIs(t, err, mprsa.ErrInvalidArgument)

	cfg := mprsa.DefaultConfig()
	cfg.MaxPrimeAttempts = 0
	_, err = keygen.New(mprsa.CryptoSource(), cfg)
	assert.ErrorIs(t, err, mprsa.ErrInvalidConfig)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newGenerator(t, mprsa.CryptoSource(), mprsa.DefaultConfig()).GenerateMaterial(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateLogsWithoutSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	g := newGenerator(t, testsource.NewScripted(61, 53, 17), smallConfig(), keygen.WithLogger(logger))

	_, _, err := g.Generate(context.Background(), 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "key generation started")
	assert.Contains(t, out, "generation_id=")
	assert.Contains(t, out, "primes="+logging.Placeholder())
	assert.Contains(t, out, "key pair generated")
	assert.Contains(t, out, "public_key.modulus_bits=12")
	assert.NotContains(t, out, "=2753")
	assert.NotContains(t, out, "=3120")
}

func TestGenerateKeyPair(t *testing.T) {
	pub, priv, err := keygen.GenerateKeyPair(context.Background(), 3)
	require.NoError(t, err)
	require.NoError(t, pub.Validate())
	require.NoError(t, priv.Validate())

	m := big.NewInt(42)
	c := new(big.Int).Exp(m, pub.E, pub.N)
	assert.Zero(t, new(big.Int).Exp(c, priv.D, priv.N).Cmp(m))
}
