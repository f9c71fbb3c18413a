// Package version reports how the colortools binary was built.
//
// Release builds set Version, Commit and Date with -ldflags. Builds made with
// plain "go build" or "go install" fall back to the VCS stamp the Go
// toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

var (
	// Version is set with -ldflags "-X github.com/Paul-Toth/ColorTools/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is set with -ldflags "-X github.com/Paul-Toth/ColorTools/internal/version.Commit=$(git rev-parse HEAD)".
	Commit = unknown

	// Date is the build time in RFC3339 format.
	// Set with -ldflags "-X github.com/Paul-Toth/ColorTools/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)".
	Date = unknown

	// GoVersion is the toolchain that compiled the binary.
	GoVersion = runtime.Version()
)

// Info is the build information printed by "colortools version".
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build information. Values injected with -ldflags win
// over the embedded VCS stamp.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildSettings(&info, bi.Settings)
	}
	return info
}

func applyBuildSettings(info *Info, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// String formats the build information on one line.
func String() string {
	return format(GetInfo())
}

func format(info Info) string {
	if info.Commit == unknown || info.Date == unknown {
		return fmt.Sprintf("colortools version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	commit := shortCommit(info.Commit)
	if info.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("colortools version %s (commit: %s, built: %s, %s, %s)",
		info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}

// Short returns just the version, as used by --version.
func Short() string {
	return Version
}
