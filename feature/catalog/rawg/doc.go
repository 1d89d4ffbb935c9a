// Package rawg fetches game metadata from the RAWG provider.
//
// The client performs a single authenticated lookup per call and normalizes
// the provider payload to the catalog model. It holds no cache and has no
// side effects beyond the network call; caching is the catalog reconciliation
// service's responsibility.
//
// # Failure kinds
//
//   - ConfigError: API key missing, raised before any network I/O
//   - TimeoutError: the provider did not answer within the bounded timeout
//   - UpstreamError: the provider answered with an error status (code + body)
//   - ParseError: the response body is not valid JSON
package rawg
