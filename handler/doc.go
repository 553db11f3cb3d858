// Package handler provides type-safe HTTP request handling and the response
// types used by form handlers.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap turns it into an http.HandlerFunc, running binders,
// decorators and the configured ErrorHandler:
//
//	func search(ctx handler.Context, req SearchRequest) handler.Response {
//		results, err := svc.Search(ctx, req.Query)
//		if err != nil {
//			return handler.Fail(err)
//		}
//		return handler.JSON(results)
//	}
//
//	r.Get("/search", handler.Wrap(search,
//		handler.WithBinders[handler.Context, SearchRequest](binder.Query()),
//	))
//
// # Response Types
//
// Built-in responses carry their HTTP status and implement StatusResponse, so
// callers can inspect the status and derive a copy with another one:
//
//	handler.JSON(data)                  // 200, or error status for error values
//	handler.JSONError(err)              // 422 for ValidationError, HTTPError code, else 500
//	handler.Templ(component)            // 200 HTML, SSE element patch for DataStar
//	handler.TemplPartial(partial, full) // partial for DataStar and htmx, full page otherwise
//	handler.Redirect("/done")           // 303, implements RedirectResponse
//	handler.Empty()                     // 204
//
// Fail(err) is a response that renders nothing and hands err to the error
// handler, which lets a HandlerFunc report failures without writing output.
//
// # Clients
//
// ClientOf classifies a request as coming from a plain browser, htmx or
// DataStar. DataStar requests are answered with server-sent events: templ
// responses become element patches and redirects become client-side
// navigations, always with status 200. htmx requests receive HTML fragments,
// redirects are sent as HX-Redirect with status 200. Boosted htmx requests are
// treated as browser requests.
//
// # Error Handling
//
// HTTPError pairs a status code with a translation key; ValidationError maps
// field names to messages and is reported as 422 Unprocessable Entity.
// NewErrorHandler logs failures with the request id and renders a templ error
// page for browsers or a toast for DataStar and htmx clients.
package handler
