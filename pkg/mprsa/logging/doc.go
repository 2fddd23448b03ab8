// Package logging provides a minimal logging facade for mprsa.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small so
// applications can plug in their own implementation for testing, redaction,
// or integration with an existing logging system.
//
// # Default Implementation
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger := logging.New(slog.New(handler))
//
//	// Text records on stderr, Debug included
//	logger := logging.NewText(os.Stderr, true)
//
//	// Drop everything
//	logger := logging.Nop()
//
// # Redaction Support
//
// Key generation handles primes, the totient and the private exponent. None
// of them may reach a log line. Use Redacted to record that a value existed
// and Fingerprint to identify a public key:
//
//	logger.Debug(ctx, "primes sampled", "count", 3, logging.Redacted("primes"))
//	// Logs: primes="[redacted]"
//
//	logger.Debug(ctx, "key pair generated", logging.Fingerprint("public_key", pub.Fingerprint()))
package logging
