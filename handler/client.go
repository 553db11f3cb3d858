package handler

import (
	"net/http"
	"strings"
)

// Client is the front-end library that issued a request. It decides how
// responses are delivered: plain HTML and 3xx redirects for browsers, HTML
// fragments plus HX-* headers for htmx, SSE patches for DataStar.
type Client int

const (
	ClientBrowser Client = iota
	ClientHTMX
	ClientDataStar
)

func (c Client) String() string {
	switch c {
	case ClientHTMX:
		return "htmx"
	case ClientDataStar:
		return "datastar"
	default:
		return "browser"
	}
}

// Request and response headers understood by the response types.
const (
	HXRequest  = "HX-Request"
	HXBoosted  = "HX-Boosted"
	HXTarget   = "HX-Target"
	HXRedirect = "HX-Redirect"
	HXRetarget = "HX-Retarget"
	HXReswap   = "HX-Reswap"

	DataStarRequest = "Datastar-Request"
	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

// ClientOf classifies r. DataStar is recognised by its request header, the
// signals query parameter or an event-stream Accept header. Boosted htmx
// requests expect full pages and count as browser requests.
func ClientOf(r *http.Request) Client {
	switch {
	case r.Header.Get(DataStarRequest) == "true",
		r.URL.Query().Has(DataStarQueryParam),
		strings.Contains(r.Header.Get("Accept"), "text/event-stream"):
		return ClientDataStar
	case r.Header.Get(HXRequest) == "true" && r.Header.Get(HXBoosted) != "true":
		return ClientHTMX
	}
	return ClientBrowser
}

// IsDataStar reports whether r expects an SSE answer.
func IsDataStar(r *http.Request) bool { return ClientOf(r) == ClientDataStar }

// HTMXTarget returns the id of the element htmx swaps the response into.
func HTMXTarget(r *http.Request) string {
	return r.Header.Get(HXTarget)
}
