// Package version reports the build's version and commit.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/imagexplorer/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/imagexplorer/internal/version.Commit=abc1234"
//
// Builds without ldflags fall back to VCS data embedded by the toolchain.
var (
	Version = ""
	Commit  = ""
)

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = resolve(Version, Commit, info, time.Now())
}

// resolve fills in whatever ldflags left empty.
func resolve(version, commit string, info *debug.BuildInfo, now time.Time) (string, string) {
	var revision, modified, vcsTime string
	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value
			case "vcs.time":
				vcsTime = s.Value
			}
		}
	}

	if commit == "" && revision != "" {
		commit = shortHash(revision)
		if modified == "true" {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	if version == "" {
		stamp := now
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			stamp = t
		}
		version = "dev-" + stamp.Format("20060102")
	}

	return version, commit
}

func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
