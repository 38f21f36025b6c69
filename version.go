package tagbridge

import "runtime"

// Version is the tagbridge release version.
const Version = "0.1.0"

// VersionInfo describes the running build of the library.
type VersionInfo struct {
	// Version is the release version.
	Version string
	// GitCommit identifies the commit the binary was built from.
	GitCommit string
	// BuildTime is when the binary was built.
	BuildTime string
	// GoVersion is the toolchain that built it.
	GoVersion string
}

// GetVersionInfo reports the build metadata of the linked library.
//
// GitCommit and BuildTime come from -ldflags and fall back to "unknown" for
// plain builds.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// Overridden through -ldflags at release time.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
