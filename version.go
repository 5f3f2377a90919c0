package id3tag

import "runtime"

// LibraryVersion is the semantic version of the id3tag library.
const LibraryVersion = "0.1.0"

// BuildInfo contains detailed build information.
type BuildInfo struct {
	// Version is the semantic version (e.g., "0.1.0")
	Version string
	// GitCommit is the git commit hash (set via ldflags at build time)
	GitCommit string
	// BuildTime is the build timestamp (set via ldflags at build time)
	BuildTime string
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetBuildInfo returns detailed build information.
//
// GitCommit, BuildTime, and GoVersion are populated at build time via
// -ldflags. If not set, they show as "unknown".
func GetBuildInfo() BuildInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	return BuildInfo{
		Version:   LibraryVersion,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
