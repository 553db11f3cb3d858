package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

// Render performs an HTTP redirect. DataStar requests are redirected over SSE
// and htmx requests through the HX-Redirect header, since neither client
// navigates on a 3xx answer to a fetch.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	switch ClientOf(req) {
	case ClientDataStar:
		return datastar.NewSSE(w, req).Redirect(r.url)
	case ClientHTMX:
		w.Header().Set(HXRedirect, r.url)
		w.WriteHeader(http.StatusOK)
		return nil
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

func (r redirectResponse) StatusCode() int  { return r.code }
func (r redirectResponse) Location() string { return r.url }

func (r redirectResponse) WithStatus(code int) Response {
	r.code = code
	return r
}

// Redirect creates a redirect response with status 303 (See Other).
//
//	return handler.Redirect("/users/" + user.ID)
func Redirect(url string) RedirectResponse {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode creates a redirect response with a specific status code
// (301, 302, 303, 307 or 308).
func RedirectWithCode(url string, code int) RedirectResponse {
	return redirectResponse{url: url, code: code}
}
