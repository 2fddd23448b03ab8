package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

// libraryPatterns lists the packages the policies apply to. Test files and
// test helpers are excluded.
var libraryPatterns = []string{
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa",
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/cipher",
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/codec",
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/euclid",
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/keygen",
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/logging",
	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa/primes",
}

func loadLibrary(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, libraryPatterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	return pkgs
}
