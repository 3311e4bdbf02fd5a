// Package key defines the canonical set of configuration identifiers.
package key

// MyAnimeList application credentials.
const (
	MalClientID = "mal.client_id"
)

// API transport.
const (
	APIBaseURL = "api.base_url"
	APITimeout = "api.timeout"
)

// Login flow and token persistence.
const (
	AuthListenAddress   = "auth.listen_address"
	AuthRedirectURI     = "auth.redirect_uri"
	AuthTimeout         = "auth.timeout"
	AuthChallengeMethod = "auth.challenge_method"
	AuthKeyring         = "auth.keyring"
	AuthOpenBrowser     = "auth.open_browser"
)

// Search behaviour.
const (
	SearchLimit                = "search.limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// User list retrieval.
const (
	ListIncludeDetails = "list.include_details"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI output.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)
