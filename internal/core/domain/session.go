// Package domain defines the core domain models for the Bullhorn CLI.
package domain

import "regexp"

// Session is the persisted record of an authenticated Bullhorn API session.
//
// BhRestToken and RestURL are either both present or both absent; both
// absent means "not logged in". The remaining fields exist solely so the
// session can be refreshed without re-entering a password.
type Session struct {
	// BhRestToken is the short-lived session token attached to every
	// authenticated REST call.
	BhRestToken string `yaml:"bh_rest_token" json:"bh_rest_token"`

	// RestURL is the tenant-specific REST base URL returned by the final
	// login step. It may include a version suffix such as /v2.1.
	RestURL string `yaml:"rest_url" json:"rest_url"`

	// RefreshToken is the longer-lived credential used to mint a new
	// BhRestToken after a 401.
	RefreshToken string `yaml:"refresh_token" json:"refresh_token"`

	// TokenURL is the OAuth token endpoint discovered at login time.
	TokenURL string `yaml:"token_url" json:"token_url"`

	// ClientID and ClientSecret are the API application credentials,
	// kept so the refresh handshake can authenticate.
	ClientID     string `yaml:"client_id" json:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret"`
}

// Active reports whether the session can be used for authenticated calls.
func (s *Session) Active() bool {
	return s != nil && s.BhRestToken != "" && s.RestURL != ""
}

// CanRefresh reports whether the session carries everything the refresh
// handshake needs.
func (s *Session) CanRefresh() bool {
	return s != nil && s.RefreshToken != "" && s.TokenURL != "" &&
		s.ClientID != "" && s.ClientSecret != ""
}

var restVersionSuffix = regexp.MustCompile(`/v\d+\.\d+/?$`)

// LoginBaseURL returns the REST URL with any trailing version suffix
// (e.g. /v2.1) stripped. The /login endpoint lives at the unversioned base.
func (s *Session) LoginBaseURL() string {
	return restVersionSuffix.ReplaceAllString(s.RestURL, "")
}

// Credentials holds the transient login inputs. Only ClientID and
// ClientSecret outlive the handshake, as part of the persisted Session.
type Credentials struct {
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
}
