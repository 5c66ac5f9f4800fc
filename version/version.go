package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info describes one build.
type Info struct {
	Version   string
	GitCommit string
	GoVersion string
	BuildDate time.Time
	Dirty     bool
}

// Get returns the build information, preferring -ldflags values over the
// toolchain's VCS stamp.
func Get() Info {
	info := Info{Version: Version, GitCommit: GitCommit}
	if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		info.BuildDate = t
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, s.Value); err == nil && info.BuildDate.IsZero() {
				info.BuildDate = t
			}
		}
	}
	return info
}

// Short returns the version with an abbreviated commit, e.g. "1.2.0-3f2a9c1".
// It is the service version reported to telemetry.
func (i Info) Short() string {
	s := i.Version
	if c := i.GitCommit; c != "" {
		if len(c) > 7 {
			c = c[:7]
		}
		s += "-" + c
	}
	if i.Dirty {
		s += "-dirty"
	}
	return s
}

// String is the --version output.
func (i Info) String() string {
	s := "tablerw " + i.Short()
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	if !i.BuildDate.IsZero() {
		s += fmt.Sprintf(" (built %s)", i.BuildDate.UTC().Format(time.RFC3339))
	}
	return s
}
