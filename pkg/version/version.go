// Package version exposes the heatcurve build version.
package version

// Version is the build version, overridable at link time via
// -ldflags "-X github.com/gridnote/heatcurve/pkg/version.Version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker
var Version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return Version
}
