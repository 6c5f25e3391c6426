// version.go: build identity.
package pith

// Version and BuildDate identify the build. Release builds overwrite
// them via -ldflags "-X github.com/pith-lang/pith.Version=v1.2.3".
var (
	Version   = "0.1.0-dev"
	BuildDate = "unknown"
)
