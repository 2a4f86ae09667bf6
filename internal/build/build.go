// Package build holds build-time metadata.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build timestamp.
var Date = "unknown"
