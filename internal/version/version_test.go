package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.HasSuffix(Version, "-dev") {
		t.Errorf("dev build must carry the -dev suffix: %q", Version)
	}
}

func TestVersionLdflagsOverride(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	// Имитация -ldflags при сборке.
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-08-23T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2026-08-23T10:30:00Z" {
		t.Errorf("override failed: %q %q %q", Version, GitCommit, BuildDate)
	}
}
