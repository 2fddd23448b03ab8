package logging

import (
	"context"
	"io"
	"log/slog"
	"math/big"
)

const redactedPlaceholder = "[redacted]"

// fingerprintPrefix is the number of fingerprint characters written to logs.
const fingerprintPrefix = 16

// Logger is the logging surface the mprsa packages write to. Library code only
// logs at Debug; the other levels exist for callers sharing one Logger.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by logger. Passing nil binds to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogLogger{l: logger}
}

// NewText returns a Logger writing slog text records to w, at Debug level when
// debug is set and Info otherwise.
func NewText(w io.Writer, debug bool) Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return New(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s slogLogger) With(args ...any) Logger {
	return slogLogger{l: s.l.With(args...)}
}

// Nop returns a Logger that discards every record. It is the default of every
// component that accepts a Logger.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }

// Redacted returns an attribute recording that the value under key exists but
// was withheld. Primes, totients and private exponents are always logged
// through Redacted.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the string Redacted writes in place of a value.
func Placeholder() string {
	return redactedPlaceholder
}

// Fingerprint returns an attribute carrying the first characters of a public
// key fingerprint.
func Fingerprint(key, fingerprint string) slog.Attr {
	if len(fingerprint) > fingerprintPrefix {
		fingerprint = fingerprint[:fingerprintPrefix]
	}
	return slog.String(key, fingerprint)
}

// ModulusBits returns an attribute with the bit length of n. The modulus is
// public, but its size is what operators look for in logs. A nil n logs 0.
func ModulusBits(key string, n *big.Int) slog.Attr {
	if n == nil {
		return slog.Int(key, 0)
	}
	return slog.Int(key, n.BitLen())
}
