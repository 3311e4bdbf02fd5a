package constant

// MyAnimeList endpoints.
const (
	MalAPI       = "https://api.myanimelist.net/v2"
	MalAuthorize = "https://myanimelist.net/v1/oauth2/authorize"
	MalToken     = "https://myanimelist.net/v1/oauth2/token"
	MalWeb       = "https://myanimelist.net"
)

// ListenAddress is the loopback address the login callback listener binds by default.
const ListenAddress = "127.0.0.1:8080"
