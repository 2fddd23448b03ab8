package mprsa

// Version is populated at build time via
// -ldflags "-X github.com/hsiuhsiu/mprsa-go/pkg/mprsa.Version=...".
var Version = "v0.0.0-in-progress"

// BuildVersion returns the semantic version populated at build time. In
// development it defaults to v0.0.0-in-progress.
func BuildVersion() string {
	return Version
}
