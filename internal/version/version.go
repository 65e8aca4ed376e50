// internal/version/version.go
package version

// Version is the toolkit release tag. Release builds may override it via
// -ldflags "-X tpsrank/internal/version.Version=...".
var Version = "0.4.2"
