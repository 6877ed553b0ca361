// Package version holds build metadata injected at link time.
package version

// Set via -ldflags "-X github.com/leo-benz/ComposeLayoutDumper/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
