// Package github provides an HTTP client for the legacy repository search
// endpoint.
//
// # Overview
//
// The package issues one GET per search and decodes the response into
// strongly-typed structs. It carries no cache, no retry and no rate
// limiting: callers decide what to do with failures.
//
//   - client.go: Client, options and request handling
//   - types.go: SearchResponse and Repository
//   - errors.go: NetworkError
//
// # Request Handling
//
// A search for query q requests
//
//	<base-url><q>?format=json
//
// The query is appended exactly as typed. It is not normalized and only the
// escaping net/url applies when serializing the URL is added. Each request:
//
//   - Uses the caller's context for cancellation
//   - Sets Accept: application/json
//   - Sets User-Agent: reposearch/0.1 (overridable)
//   - Has no timeout unless WithTimeout is supplied
//   - Is anonymous unless WithToken is supplied
//
// The remote service documents a limit of 60 requests per minute for
// anonymous callers. Nothing here enforces it; excess requests fail on the
// remote side and surface as NetworkError.
//
// # Response Shape
//
//	{
//	  "meta": {...},
//	  "data": {
//	    "repositories": [
//	      {"name": "...", "owner": "...", "language": "...", "followers": 0, ...}
//	    ]
//	  }
//	}
//
// Records keep the endpoint's order. Nothing downstream reorders them, because
// the list view identifies a record by its position.
//
// # Error Handling
//
// Every failure is a *NetworkError: URL construction, transport, non-2xx
// status, and undecodable bodies. StatusCode is set whenever a response was
// received. Use errors.As or IsNetworkError to detect it.
//
// # Testing Considerations
//
// Use httptest.Server and point NewClient at server.URL. The Searcher
// interface lets higher layers substitute a fake without a server.
package github
