package tui

import (
	"fmt"

	"github.com/akyairhashvil/nusui/internal/config"
)

// Populated via -ldflags at build time.
var (
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func versionLabel() string {
	label := config.AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", config.AppVersion, GitCommit, BuildTime)
	}
	return label
}
