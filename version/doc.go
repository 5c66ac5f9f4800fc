// Package version reports the build of the tablerw command.
//
// Release builds set the variables with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/tablerw/version.Version=1.2.0" ./cmd/tablerw
//
// Otherwise the VCS stamp recorded by the Go toolchain is used.
package version
