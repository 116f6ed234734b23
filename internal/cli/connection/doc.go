// Package connection provides the authenticated HTTP client for the
// Bullhorn CLI.
//
// Every request carries the current BhRestToken header. A response
// interceptor watches for 401s: the first 401 on a logical request
// triggers the auth refresh flow and a single re-issue of that request
// with the new token; a second 401 propagates unchanged. The retry
// guard is tracked per request, never globally.
package connection
