// Package registry maps string identifiers to constructor functions.
//
// It is the explicit replacement for a service container: every service is
// registered once at startup under a name, and each Get call runs the
// constructor again, producing a fresh value. There is no reflection and no
// auto-wiring; constructors close over whatever dependencies they need.
//
//	reg := registry.New()
//	reg.MustRegister("contact", func() (any, error) {
//	    return contact.NewHandler(store), nil
//	})
//
//	h, err := registry.Resolve[formhandler.Handler](reg, "contact")
//
// Lookup failures are reported with typed errors so callers can tell a missing
// identifier (*NotFoundError) from a constructor failure (*ResolutionError) or
// a value of the wrong type (*TypeMismatchError).
package registry
