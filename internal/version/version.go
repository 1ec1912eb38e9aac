// Package version carries the build identity.
package version

// Version is overridden at build time with
// -ldflags "-X minirack-dashboard/internal/version.Version=...".
var Version = "dev"

const Name = "MiniRack Dashboard"

// UserAgent identifies the dashboard to upstream APIs.
func UserAgent() string {
	return "MiniRack-Dashboard/" + Version
}

// Info is the body of the version endpoint.
type Info struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func Get() Info {
	return Info{Name: Name, Version: Version}
}
