// Package version reports build information for the peopleq binary.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/peoplequery/version.Version=1.0.0" ./cmd/peopleq
//
// Anything left unset is filled from the module build info when available.
package version
