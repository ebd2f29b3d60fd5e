package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
)

// Set with -ldflags "-X github.com/studiowebux/termfolio/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// readBuildInfo is swapped out by tests
var readBuildInfo = debug.ReadBuildInfo

// Current returns the version of the running binary. Linker flags win;
// otherwise the module version recorded by `go install` is used.
func Current() string {
	if Version != "dev" && Version != "" {
		return strings.TrimPrefix(Version, "v")
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "dev"
}

// String is what --version prints
func String() string {
	return "termfolio " + Current()
}

// Details adds commit and build date when they were set at link time
func Details() string {
	s := String()
	if Commit != "" {
		s += fmt.Sprintf(" (commit %s", Commit)
		if Date != "" {
			s += ", built " + Date
		}
		s += ")"
	}
	return s
}

// IsNewer compares two semantic versions and returns true if latest > current
// Supports versions like "0.0.28", "1.2.3", "0.0.29-dev", etc.
func IsNewer(latest, current string) bool {
	latestParts := parseVersion(strings.TrimPrefix(latest, "v"))
	currentParts := parseVersion(strings.TrimPrefix(current, "v"))

	// Pad shorter version with zeros
	maxLen := len(latestParts)
	if len(currentParts) > maxLen {
		maxLen = len(currentParts)
	}

	for len(latestParts) < maxLen {
		latestParts = append(latestParts, 0)
	}
	for len(currentParts) < maxLen {
		currentParts = append(currentParts, 0)
	}

	for i := 0; i < maxLen; i++ {
		if latestParts[i] > currentParts[i] {
			return true
		}
		if latestParts[i] < currentParts[i] {
			return false
		}
	}

	return false
}

// parseVersion parses a version string into integer parts
// Handles pre-release versions by stripping everything after "-" or "+"
func parseVersion(version string) []int {
	if idx := strings.IndexAny(version, "-+"); idx != -1 {
		version = version[:idx]
	}

	parts := strings.Split(version, ".")
	result := make([]int, 0, len(parts))

	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			// If we can't parse a number, skip it
			continue
		}
		result = append(result, num)
	}

	return result
}
