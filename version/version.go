package version

import "fmt"

// set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var FullVersion = fmt.Sprintf("%s Build: %s Commit: %s", Version, BuildDate, GitCommit)
