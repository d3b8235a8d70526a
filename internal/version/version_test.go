package version

import (
	"strings"
	"testing"
)

func TestLongIncludesBuildMetadata(t *testing.T) {
	got := Long()
	for _, want := range []string{CLIName, CLIVersion, "commit: " + Commit} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}
