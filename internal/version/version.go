// Package version provides build-time version information.
//
// Version can be overridden at build time via ldflags:
//
//	go build -ldflags "-X github.com/deppfellow/products/internal/version.Version=0.2.0"
package version

// Version is the semantic version printed by --version.
var Version = "0.1.0"
