// Package auth implements the Bullhorn login and refresh handshakes.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/config"
	"github.com/bullhorn-tools/bh-cli/internal/core/domain"
	"github.com/bullhorn-tools/bh-cli/internal/telemetry/logger"
)

// DefaultDiscoveryURL is the fixed Bullhorn data-center lookup endpoint.
const DefaultDiscoveryURL = "https://rest.bullhornstaffing.com/rest-services/loginInfo"

// Flow runs the login and refresh handshakes and owns all writes to the
// session store.
type Flow struct {
	store        config.Store
	client       *http.Client
	noRedirect   *http.Client
	discoveryURL string
	log          logger.Logger
}

// Option configures a Flow.
type Option func(*Flow)

// WithDiscoveryURL overrides the data-center lookup endpoint.
func WithDiscoveryURL(u string) Option {
	return func(f *Flow) { f.discoveryURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Flow) { f.client = c }
}

// WithLogger overrides the logger.
func WithLogger(l logger.Logger) Option {
	return func(f *Flow) { f.log = l }
}

// NewFlow creates a Flow writing to the given store.
func NewFlow(store config.Store, opts ...Option) *Flow {
	f := &Flow{
		store:        store,
		client:       &http.Client{Timeout: 30 * time.Second},
		discoveryURL: DefaultDiscoveryURL,
		log:          logger.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	// The authorize step requires seeing the 302 itself; the shared
	// client follows redirects, so derive a non-following copy.
	nr := *f.client
	nr.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	f.noRedirect = &nr

	return f
}

// loginInfo is the discovery response.
type loginInfo struct {
	OAuthURL string `json:"oauthUrl"`
	RestURL  string `json:"restUrl"`
}

// restLoginResponse is the REST /login response.
type restLoginResponse struct {
	BhRestToken string `json:"BhRestToken"`
	RestURL     string `json:"restUrl"`
}

// Login performs the four-step handshake and persists the resulting
// session. Nothing is persisted unless every step succeeds.
func (f *Flow) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	f.log.Debug("login step 1: determining data center", "username", creds.Username)
	info, err := f.discover(ctx, creds.Username)
	if err != nil {
		return nil, err
	}

	f.log.Debug("login step 2: obtaining authorization code", "oauth_url", info.OAuthURL)
	code, err := f.authorize(ctx, info.OAuthURL, creds)
	if err != nil {
		return nil, err
	}

	f.log.Debug("login step 3: exchanging code for access token")
	tokenURL := info.OAuthURL + "/token"
	tokens, err := f.exchangeCode(ctx, tokenURL, code, creds)
	if err != nil {
		return nil, err
	}

	f.log.Debug("login step 4: finalizing API session", "rest_url", info.RestURL)
	restToken, restURL, err := f.finalize(ctx, info.RestURL, tokens.AccessToken)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		BhRestToken:  restToken,
		RestURL:      restURL,
		RefreshToken: tokens.RefreshToken,
		TokenURL:     tokenURL,
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
	}

	if err := f.store.Save(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

// Refresh exchanges the stored refresh token for a new session token and
// persists it. Any failure clears the whole session; the caller must ask
// the user to log in again.
func (f *Flow) Refresh(ctx context.Context) (string, error) {
	session, err := f.store.Load()
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}

	if !session.CanRefresh() {
		return "", domain.ErrRefreshMissingData
	}

	restToken, newRefresh, err := f.refreshTokens(ctx, session)
	if err != nil {
		f.log.Debug("refresh failed, clearing session", "cause", err.Error())
		if clearErr := f.store.Clear(); clearErr != nil {
			f.log.Warn("could not clear session after failed refresh", "cause", clearErr.Error())
		}
		return "", domain.ErrRefreshFailed.WithCause(err)
	}

	session.BhRestToken = restToken
	if newRefresh != "" {
		// Bullhorn usually rotates the refresh token.
		session.RefreshToken = newRefresh
	}

	if err := f.store.Save(session); err != nil {
		return "", fmt.Errorf("save refreshed session: %w", err)
	}

	return restToken, nil
}

// Logout clears the stored session unconditionally. No network calls.
func (f *Flow) Logout() error {
	return f.store.Clear()
}

// discover looks up the tenant's OAuth and REST base URLs by username.
func (f *Flow) discover(ctx context.Context, username string) (*loginInfo, error) {
	u := f.discoveryURL + "?username=" + url.QueryEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, domain.ErrDiscovery.WithCause(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domain.ErrDiscovery.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrDiscovery.WithDetails(serverDetail(resp))
	}

	var info loginInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, domain.ErrDiscovery.WithCause(err)
	}
	if info.OAuthURL == "" || info.RestURL == "" {
		return nil, domain.ErrDiscovery
	}

	return &info, nil
}

// authorize performs the redirect-only pseudo-login and extracts the
// authorization code from the Location header of the 302 response.
func (f *Flow) authorize(ctx context.Context, oauthURL string, creds domain.Credentials) (string, error) {
	params := url.Values{
		"client_id":     {creds.ClientID},
		"response_type": {"code"},
		"action":        {"Login"},
		"username":      {creds.Username},
		"password":      {creds.Password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		oauthURL+"/authorize?"+params.Encode(), nil)
	if err != nil {
		return "", domain.ErrAuthorization.WithCause(err)
	}

	resp, err := f.noRedirect.Do(req)
	if err != nil {
		return "", domain.ErrAuthorization.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return "", domain.ErrAuthorization.WithDetails(serverDetail(resp))
	}

	location, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		return "", domain.ErrAuthorization.WithCause(err)
	}

	code := location.Query().Get("code")
	if code == "" {
		return "", domain.ErrAuthorization
	}

	return code, nil
}

// oauthConfig builds the oauth2 client configuration for a token
// endpoint. Bullhorn expects the client credentials in the request
// body, never in a basic auth header.
func (f *Flow) oauthConfig(clientID, clientSecret, tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// oauthContext routes oauth2's internal requests through the Flow's
// HTTP client.
func (f *Flow) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, f.client)
}

// exchangeCode trades the authorization code for OAuth tokens.
func (f *Flow) exchangeCode(ctx context.Context, tokenURL, code string, creds domain.Credentials) (*oauth2.Token, error) {
	conf := f.oauthConfig(creds.ClientID, creds.ClientSecret, tokenURL)

	tokens, err := conf.Exchange(f.oauthContext(ctx), code)
	if err != nil {
		return nil, domain.ErrTokenExchange.WithCause(err)
	}

	return tokens, nil
}

// refreshTokens runs the refresh grant and re-finalizes the session.
// The returned errors are raw; the caller wraps them.
func (f *Flow) refreshTokens(ctx context.Context, session *domain.Session) (restToken, newRefresh string, err error) {
	conf := f.oauthConfig(session.ClientID, session.ClientSecret, session.TokenURL)

	// A token carrying only the refresh token is expired by definition,
	// so the source performs the refresh grant immediately.
	source := conf.TokenSource(f.oauthContext(ctx), &oauth2.Token{
		RefreshToken: session.RefreshToken,
	})

	tokens, err := source.Token()
	if err != nil {
		return "", "", err
	}

	restToken, _, err = f.finalize(ctx, session.LoginBaseURL(), tokens.AccessToken)
	if err != nil {
		return "", "", err
	}

	return restToken, tokens.RefreshToken, nil
}

// finalize logs in to the REST API with an access token. The returned
// restUrl is tenant-specific and may differ from the discovery value.
func (f *Flow) finalize(ctx context.Context, baseURL, accessToken string) (string, string, error) {
	u := strings.TrimSuffix(baseURL, "/") + "/login?version=*&access_token=" + url.QueryEscape(accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return "", "", domain.ErrSessionFinalize.WithCause(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", domain.ErrSessionFinalize.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", domain.ErrSessionFinalize.WithDetails(serverDetail(resp))
	}

	var login restLoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", "", domain.ErrSessionFinalize.WithCause(err)
	}
	if login.BhRestToken == "" || login.RestURL == "" {
		return "", "", domain.ErrSessionFinalize
	}

	return login.BhRestToken, login.RestURL, nil
}

// serverDetail summarizes an error response for the user, including the
// server-provided message when one is present.
func serverDetail(resp *http.Response) string {
	var body struct {
		ErrorMessage     string `json:"errorMessage"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.ErrorMessage != "" {
			return fmt.Sprintf("status %d: %s", resp.StatusCode, body.ErrorMessage)
		}
		if body.ErrorDescription != "" {
			return fmt.Sprintf("status %d: %s", resp.StatusCode, body.ErrorDescription)
		}
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}
