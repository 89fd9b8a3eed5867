// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// String returns a one-line version string.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if i.Commit == "" || i.Commit == "unknown" {
		return fmt.Sprintf("workbench %s (%s)", version, i.GoVersion)
	}
	return fmt.Sprintf("workbench %s (%s, built %s, %s)", version, shortCommit(i.Commit), i.BuildDate, i.GoVersion)
}

func shortCommit(commit string) string {
	const n = 7
	if len(commit) > n {
		return commit[:n]
	}
	return commit
}
