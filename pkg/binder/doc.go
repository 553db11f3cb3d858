// Package binder decodes HTTP request data into Go structs.
//
// Three binders are provided, all returning a Func:
//
//   - Form(): application/x-www-form-urlencoded and multipart/form-data bodies,
//     including file uploads through the `file` struct tag
//   - JSON(): strict application/json bodies (unknown fields rejected, 1MB limit)
//   - Query(): URL query parameters
//
// Request() picks one of them based on the method and Content-Type header.
//
// Form and query binders read the `form` struct tag and fall back to the
// lowercased field name. WithPrefix lets them read keys namespaced by a form
// name, the way HTML forms usually submit nested fields:
//
//	type Signup struct {
//	    Email string   `form:"email"`
//	    Tags  []string `form:"tags"`
//	}
//
//	// accepts signup[email]=a@b.c&signup[tags][]=x as well as email=a@b.c
//	bind := binder.Form(binder.WithPrefix("signup"))
//
// Values exposes the reflective assignment step for data that was parsed
// elsewhere.
//
// # Error Handling
//
// All failures wrap one of the package sentinels (ErrUnsupportedMediaType,
// ErrMissingContentType, ErrInvalidTarget, ErrFailedToParseJSON,
// ErrFailedToParseForm, ErrFailedToParseQuery) so callers can use errors.Is.
//
// Uploaded file names are reduced to their base name and stripped of null
// bytes before being exposed. Request size limits beyond the multipart memory
// threshold belong to server middleware.
package binder
