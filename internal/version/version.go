// Package version provides build-time version information.
package version

// These variables are set at build time using -ldflags, e.g.
//
//	go build -ldflags "-X graph-plotter/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// Version is the semantic version
	Version = "1.0.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)
