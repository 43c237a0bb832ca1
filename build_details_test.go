package hubdoc

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDetails(t *testing.T) {
	defaults := buildDetails{version: "dev", commit: "unknown", buildTime: "unknown"}
	stamped := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/erraggy/hubdoc", Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	tests := []struct {
		name string
		in   buildDetails
		bi   *debug.BuildInfo
		want buildDetails
	}{
		{
			name: "no build info",
			in:   defaults,
			want: defaults,
		},
		{
			name: "source build",
			in:   defaults,
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: defaults,
		},
		{
			name: "go install with vcs stamp",
			in:   defaults,
			bi:   stamped,
			want: buildDetails{version: "v0.4.0", commit: "0123456789ab", buildTime: "2026-10-01T12:00:00Z"},
		},
		{
			name: "ldflags win",
			in:   buildDetails{version: "v1.0.0", commit: "abc1234", buildTime: "2026-09-30T08:00:00Z"},
			bi:   stamped,
			want: buildDetails{version: "v1.0.0", commit: "abc1234", buildTime: "2026-09-30T08:00:00Z"},
		},
		{
			name: "short revision",
			in:   defaults,
			bi: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
			}},
			want: buildDetails{version: "dev", commit: "abc", buildTime: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveDetails(tt.in, tt.bi))
		})
	}
}

func TestBuildAccessors(t *testing.T) {
	assert.NotEmpty(t, Version())
	assert.NotEmpty(t, Commit())
	assert.NotEmpty(t, BuildTime())
	assert.Equal(t, runtime.Version(), GoVersion())
	assert.Equal(t, "hubdoc/"+Version(), UserAgent())
	assert.NotContains(t, UserAgent(), " ")
}

func TestBuildInfo(t *testing.T) {
	lines := strings.Split(BuildInfo(), "\n")
	assert.Equal(t, []string{
		"hubdoc " + Version(),
		"commit: " + Commit(),
		"built: " + BuildTime(),
		"go: " + GoVersion(),
	}, lines)
}
