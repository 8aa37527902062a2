// Package version exposes the build version of the recipefind binary.
package version

// version is overridden at build time via
// -ldflags "-X github.com/rshade/recipefind/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Set via ldflags.

// GetVersion returns the version string the binary was built with.
func GetVersion() string {
	return version
}
