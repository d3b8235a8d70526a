package policy

import (
	"strings"

	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
)

// alwaysAllowed are introspection commands that never touch chain data.
var alwaysAllowed = map[string]bool{"schema": true, "version": true}

// CheckCommandAllowed enforces --enable-commands. An entry allows the exact
// command path and every command below it, so "markets" allows
// "markets list".
func CheckCommandAllowed(allowlist []string, commandPath string) error {
	if len(allowlist) == 0 {
		return nil
	}
	normPath := normalize(commandPath)
	if alwaysAllowed[normPath] {
		return nil
	}
	for _, allowed := range allowlist {
		normAllowed := normalize(allowed)
		if normAllowed == "" {
			continue
		}
		if normAllowed == normPath || strings.HasPrefix(normPath, normAllowed+" ") {
			return nil
		}
	}
	return clierr.New(clierr.CodeBlocked, "command blocked by --enable-commands policy")
}

func normalize(v string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(v)))
	return strings.Join(parts, " ")
}
