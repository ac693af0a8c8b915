package main

import (
	"runtime"

	"github.com/quarterdeckhq/quarterdeck/internal/cli"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cli.Execute()
}
