// Package build_version exposes the version string stamped at link time:
//
//	go build -ldflags "-X github.com/omarnabikhan/autotype/internal/build_version.version=v0.2.0"
package build_version

var version = ""

// GetVersion returns the stamped version, or "dev" for unstamped builds.
func GetVersion() string {
	if version == "" {
		return "dev"
	}
	return version
}
