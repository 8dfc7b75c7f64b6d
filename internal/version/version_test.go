package version

import (
	"strings"
	"testing"
)

func TestGetVersion_DefaultValues(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "dev"

	got := GetVersion()
	if got == "" {
		t.Error("GetVersion() should never be empty")
	}
}

func TestGetVersion_WithLdflags(t *testing.T) {
	// Simulate ldflags setting the version
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "v1.2.3"

	got := GetVersion()
	if got != "v1.2.3" {
		t.Errorf("GetVersion() with ldflags = %v, want %v", got, "v1.2.3")
	}
}

func TestGetFullVersion(t *testing.T) {
	origVersion := Version
	origCommit := GitCommit
	defer func() {
		Version = origVersion
		GitCommit = origCommit
	}()

	Version = "v1.2.3"
	GitCommit = "abc1234"

	got := GetFullVersion()
	if !strings.Contains(got, "v1.2.3") || !strings.Contains(got, "abc1234") {
		t.Errorf("GetFullVersion() = %v, want version and commit", got)
	}
}
