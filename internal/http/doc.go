// Package http provides the shared HTTP client used for GraphQL calls
// and artwork downloads.
//
// The client applies a common User-Agent and timeout to every request
// and keeps the response handling in one place, so the API client and
// the download manager do not each reimplement status checks and body
// decoding.
package http
