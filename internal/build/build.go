// Package build holds build-time information stamped in by the linker.
package build

var (
	// Version is the release of iroot, "dev" for local builds.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "unknown"
)

// String formats the version line printed by the CLI.
func String() string {
	return "iroot version " + Version + " (" + Commit + ")"
}
