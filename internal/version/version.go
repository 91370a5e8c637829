package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags "-X kymera/internal/version.Version=..."
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
	GoVersion = runtime.Version()
)

func Short() string {
	if GitCommit != "" {
		return fmt.Sprintf("v%s (%s)", Version, GitCommit)
	}
	return "v" + Version
}

func Info() string {
	return fmt.Sprintf(
		"Kymera %s\nBuild Time: %s\nGo Version: %s\nGit Commit: %s",
		Short(), BuildTime, GoVersion, GitCommit,
	)
}
