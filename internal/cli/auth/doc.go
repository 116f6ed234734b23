// Package auth implements the Bullhorn login and refresh handshakes.
//
// Login is a four-step sequence: discover the data center, obtain an
// authorization code via a redirect-only pseudo-login, exchange the code
// for an access token, and finalize a REST session. Refresh replays the
// last two steps using the stored refresh token. Either handshake fully
// succeeds and persists the session in one write, or leaves the store
// untouched; a failed refresh clears the session entirely.
package auth
