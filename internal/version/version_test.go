package version

import (
	"runtime/debug"
	"testing"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name     string
		latest   string
		current  string
		expected bool
	}{
		{"same version", "0.0.28", "0.0.28", false},
		{"patch upgrade", "0.0.29", "0.0.28", true},
		{"patch downgrade", "0.0.27", "0.0.28", false},
		{"minor upgrade", "0.1.0", "0.0.28", true},
		{"major upgrade", "1.0.0", "0.0.28", true},
		{"multi-digit patch", "0.0.100", "0.0.99", true},
		{"different lengths v1", "1.0", "0.0.28", true},
		{"different lengths v2", "0.0.28", "1.0", false},
		{"v prefix", "v1.1", "1.0", true},
		{"dev version ahead", "0.0.29-dev", "0.0.28", true},
		{"pre-release same base", "0.0.28-alpha", "0.0.28", false},
		{"build metadata", "0.0.29+build123", "0.0.28", true},
		{"config format", "2.0", "1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNewer(tt.latest, tt.current)
			if result != tt.expected {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.latest, tt.current, result, tt.expected)
			}
		})
	}
}

func withVersion(t *testing.T, v, commit, date string, info *debug.BuildInfo) {
	t.Helper()
	origV, origC, origD, origRead := Version, Commit, Date, readBuildInfo
	Version, Commit, Date = v, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = origV, origC, origD, origRead
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		version string
		info    *debug.BuildInfo
		want    string
	}{
		{"ldflags", "v1.2.3", nil, "termfolio 1.2.3"},
		{"go install", "dev", &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}}, "termfolio 0.4.0"},
		{"local build", "dev", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "termfolio dev"},
		{"no build info", "dev", nil, "termfolio dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version, "", "", tt.info)
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetails(t *testing.T) {
	withVersion(t, "1.0.0", "abc123", "2026-01-02", nil)
	if got := Details(); got != "termfolio 1.0.0 (commit abc123, built 2026-01-02)" {
		t.Errorf("Details() = %q", got)
	}

	withVersion(t, "1.0.0", "", "", nil)
	if got := Details(); got != "termfolio 1.0.0" {
		t.Errorf("Details() = %q", got)
	}
}
