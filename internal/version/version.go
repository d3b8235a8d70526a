package version

import (
	"fmt"
	"runtime"
)

// Set at link time with -ldflags "-X".
var (
	CLIName    = "synth"
	CLIVersion = "0.1.0"
	Commit     = "unknown"
	BuildDate  = "unknown"
)

func Long() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s/%s)", CLIName, CLIVersion, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
