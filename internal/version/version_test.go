package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origGitCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origGitCommit }()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	if Version != "1.2.3" || GitCommit != "abc123def456" {
		t.Errorf("overrides lost: %q %q", Version, GitCommit)
	}
}

func TestColored(t *testing.T) {
	if got := Colored("0.1.0-dev", false); got != "0.1.0-dev" {
		t.Errorf("plain = %q", got)
	}

	got := Colored("1.2.3-rc.1+build.7", true)
	if strings.Count(got, "\x1b[") < 3 {
		t.Errorf("expected three coloured parts, got %q", got)
	}
	if !strings.HasSuffix(got, "-rc.1+build.7") {
		t.Errorf("suffix must stay uncoloured, got %q", got)
	}
	if stripped := stripANSI(got); stripped != "1.2.3-rc.1+build.7" {
		t.Errorf("stripped = %q", stripped)
	}
}

func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
