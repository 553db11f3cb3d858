// Package requestid tags each HTTP request with an identifier.
//
// Middleware accepts an incoming X-Request-ID made of letters, digits, dashes
// and underscores (up to 128 characters) and otherwise generates a UUID. The id
// is stored in the request context, echoed in the response header and added to
// log records through Extractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
