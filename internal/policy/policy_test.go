package policy

import (
	"testing"

	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
)

func TestCheckCommandAllowed(t *testing.T) {
	if err := CheckCommandAllowed(nil, "deeplink resolve"); err != nil {
		t.Fatalf("unexpected error with empty allowlist: %v", err)
	}
	if err := CheckCommandAllowed([]string{"Deeplink  Resolve"}, "deeplink resolve"); err != nil {
		t.Fatalf("expected command to be allowed: %v", err)
	}
	if err := CheckCommandAllowed([]string{"markets"}, "markets composition"); err != nil {
		t.Fatalf("expected group entry to allow subcommand: %v", err)
	}
	if err := CheckCommandAllowed([]string{"market"}, "markets list"); err == nil {
		t.Fatal("did not expect partial word to match")
	}
	if err := CheckCommandAllowed([]string{"contracts get"}, "version"); err != nil {
		t.Fatalf("expected version to always be allowed: %v", err)
	}
	err := CheckCommandAllowed([]string{"contracts get"}, "deeplink resolve")
	cErr, ok := clierr.As(err)
	if !ok || cErr.Code != clierr.CodeBlocked {
		t.Fatalf("expected blocked error, got %v", err)
	}
}
