// Command urlsmith edits the URL of the active browser tab.
package main

import (
	"runtime"

	"github.com/bnema/urlsmith/internal/cli/cmd"
	"github.com/bnema/urlsmith/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
