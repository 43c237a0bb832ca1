package hubdoc

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Release builds set these with -ldflags "-X github.com/erraggy/hubdoc.version=...".
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

type buildDetails struct {
	version   string
	commit    string
	buildTime string
}

var details = sync.OnceValue(func() buildDetails {
	bi, _ := debug.ReadBuildInfo()
	return resolveDetails(buildDetails{version, commit, buildTime}, bi)
})

// resolveDetails fills values left at their defaults from the module and
// VCS metadata the go command embeds in binaries.
func resolveDetails(d buildDetails, bi *debug.BuildInfo) buildDetails {
	if bi == nil {
		return d
	}
	if d.version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		d.version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if d.commit == "unknown" && s.Value != "" {
				d.commit = s.Value[:min(len(s.Value), 12)]
			}
		case "vcs.time":
			if d.buildTime == "unknown" && s.Value != "" {
				d.buildTime = s.Value
			}
		}
	}
	return d
}

// Version returns the release version, the module version for binaries
// installed with go install, or "dev".
func Version() string {
	return details().version
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return details().commit
}

// BuildTime returns the RFC3339 build or commit timestamp.
func BuildTime() string {
	return details().buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent identifies hubdoc in the Server header of the HTTP surface.
func UserAgent() string {
	return "hubdoc/" + Version()
}

// BuildInfo returns all build metadata, one field per line.
func BuildInfo() string {
	return fmt.Sprintf("hubdoc %s\ncommit: %s\nbuilt: %s\ngo: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
