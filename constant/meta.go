// Package constant defines immutable application-level identifiers.
package constant

const (
	// Malq is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Malq = "malq"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request to the MyAnimeList API.
	UserAgent = Malq + "/" + Version
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
