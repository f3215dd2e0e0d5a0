package cli

import (
	"github.com/CodexForgeBR/steward-tools/internal/auth"
	"github.com/CodexForgeBR/steward-tools/internal/logging"
	"github.com/CodexForgeBR/steward-tools/internal/mwapi"
)

// DefaultHost is where global actions land when the account has no
// home wiki configured.
const DefaultHost = "meta.wikimedia.org"

// HomeWikiHost maps the account's home wiki to a domain. The credentials
// file may hold either form; an unmappable value falls back to the
// default host with a warning.
func HomeWikiHost(creds *auth.Credentials) string {
	if creds.HomeWiki == "" {
		return DefaultHost
	}
	if mwapi.IsDomain(creds.HomeWiki) {
		return creds.HomeWiki
	}
	domain, err := mwapi.DomainFromDBName(creds.HomeWiki)
	if err != nil {
		logging.Warn("home wiki %q not recognized, using %s", creds.HomeWiki, DefaultHost)
		return DefaultHost
	}
	return domain
}

// NewClient builds the API client for host with per-account cookie
// persistence and debug output wired in.
func NewClient(host string, creds *auth.Credentials, o *CommonOptions) (*mwapi.Client, error) {
	opts := []mwapi.Option{
		mwapi.WithAPIPath(o.APIPath),
		mwapi.WithDebug(logging.Debug),
	}
	if path, err := mwapi.DefaultCookieFile(creds.Username); err == nil {
		opts = append(opts, mwapi.WithCookieFile(path))
	}
	return mwapi.New(host, opts...)
}
