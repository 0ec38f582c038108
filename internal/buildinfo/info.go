// Package buildinfo carries release metadata stamped in at build time.
package buildinfo

// Set via -ldflags "-X github.com/bankcat-dev/bankcat/internal/buildinfo.Version=..."
// and friends by the release build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
