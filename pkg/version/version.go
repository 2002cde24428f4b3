// Package version reports which build of fyyur is running.
package version

// Overridden at build time:
//
//	go build -ldflags "-X github.com/fyyurapp/fyyur/pkg/version.Version=1.2.0 -X github.com/fyyurapp/fyyur/pkg/version.Commit=abc123"
var (
	Version = "dev"
	Commit  = "unknown"
)

func String() string {
	return Version + " (" + Commit + ")"
}
