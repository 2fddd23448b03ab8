// Package internalcheck holds source-level policy tests for the mprsa
// packages.
//
// The tests load the library packages with golang.org/x/tools/go/packages and
// walk their syntax trees. They enforce rules the compiler cannot:
//   - no %x formatting, which is how secrets usually end up in logs
//   - no private exponent, totient or prime fields passed to fmt, log or a Logger
//   - no == or != between two *big.Int values, which compares pointers
//   - no package-level math/rand functions; randomness is always injected
//
// The package has no exported API and is not meant to be imported.
package internalcheck
