// Package version holds build metadata injected with -ldflags, e.g.
//
//	-X github.com/jmylchreest/combinator/internal/version.Version=1.2.0
//	-X github.com/jmylchreest/combinator/internal/version.Commit=$(git rev-parse HEAD)
//	-X github.com/jmylchreest/combinator/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
package version

import (
	"fmt"
	"runtime"
)

const unknown = "unknown"

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = unknown
	// Date is the RFC3339 build time.
	Date = unknown
)

// Info is the build metadata of the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the info for "combinator version".
func (i Info) String() string {
	if i.Commit != unknown && i.Date != unknown {
		return fmt.Sprintf("combinator version %s (commit: %s, built: %s, %s, %s)",
			i.Version, shortCommit(i.Commit), i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("combinator version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}

// String returns the human-readable version line.
func String() string {
	return GetInfo().String()
}

// Short returns just the version, for cobra's --version flag.
func Short() string {
	return Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
