package main

import (
	"context"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/cipher"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/codec"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/keygen"
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/logging"
)

func main() {
	var (
		numPrimes   = flag.Int("primes", 3, "number of primes in the modulus")
		configPath  = flag.String("config", "", "YAML config file (defaults are used when empty)")
		seed        = flag.Uint64("seed", 0, "seed for a deterministic run; 0 draws from crypto/rand")
		message     = flag.String("message", "Hello, RSA!", "message to encrypt, one unit per character")
		debug       = flag.Bool("debug", false, "enable debug logging")
		showSecrets = flag.Bool("show-secrets", false, "print primes, totient and private exponent")
	)
	flag.Parse()

	log.Printf("mprsa-go version: %s", mprsa.BuildVersion())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *numPrimes, *configPath, *seed, *message, *debug, *showSecrets); err != nil {
		log.Fatalf("mprsa-go: %v", err)
	}
}

func run(ctx context.Context, numPrimes int, configPath string, seed uint64, message string, debug, showSecrets bool) error {
	cfg := mprsa.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = mprsa.LoadConfig(configPath); err != nil {
			return err
		}
	}

	logger := logging.NewText(os.Stderr, debug)

	src := mprsa.CryptoSource()
	if seed != 0 {
		var s [32]byte
		binary.LittleEndian.PutUint64(s[:], seed)
		src = mprsa.NewSeededSource(s)
	}

	gen, err := keygen.New(src, cfg, keygen.WithLogger(logger))
	if err != nil {
		return err
	}

	m, err := gen.GenerateMaterial(ctx, numPrimes)
	if err != nil {
		if errors.Is(err, mprsa.ErrPrimeGenerationExhausted) {
			return fmt.Errorf("%w (widen the prime range or raise max_prime_attempts)", err)
		}
		return err
	}
	defer m.Destroy()

	pub, priv := m.Public(), m.Private()
	defer priv.Destroy()

	if showSecrets {
		fmt.Printf("primes:      %v\n", m.Primes)
		fmt.Printf("totient:     %s\n", m.Totient)
		fmt.Printf("private key: (%s, %s)\n", m.D, m.Modulus)
	} else {
		fmt.Printf("private key: %s\n", priv)
	}
	fmt.Printf("modulus:     %s\n", m.Modulus)
	fmt.Printf("public key:  %s\n", pub)
	fmt.Printf("fingerprint: %s\n", pub.Fingerprint())

	units := codec.FromString(message)
	if err := codec.Check(units, pub.N); err != nil {
		return fmt.Errorf("message does not fit the key, use more primes: %w", err)
	}
	fmt.Printf("message:     %q\n", message)

	ct, err := cipher.Encrypt(units, pub)
	if err != nil {
		return err
	}
	fmt.Printf("ciphertext:  %v\n", ct)

	pt, err := cipher.Decrypt(ct, priv)
	if err != nil {
		return err
	}
	decoded, err := codec.ToString(pt)
	if err != nil {
		return err
	}
	fmt.Printf("decrypted:   %q\n", decoded)

	logger.Info(ctx, "round trip complete", "units", len(units), "public_key", pub)
	return nil
}
