package capi

// Version is populated at build time via ldflags. In development it defaults
// to v0.0.0-in-progress.
var Version = "v0.0.0-in-progress"

// ToolkitVersion returns the semantic version of the toolkit.
func ToolkitVersion() string {
	return Version
}
