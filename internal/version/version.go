// Package version provides version information for contactbook.
package version

// Version is the contactbook release. Overridden at build time with -ldflags.
var Version = "development"

// Commit is the git commit the binary was built from.
var Commit = "unknown"

// String returns the version, suffixed with the commit hash when known.
func String() string {
	if Commit == "unknown" || Commit == "" {
		return Version
	}
	return Version + "+" + Commit
}

// UserAgent returns the User-Agent header sent with outbound requests.
func UserAgent() string {
	return "contactbook/" + String()
}
