// Package validator builds declarative validation rules.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply runs a list of rules and aggregates every failure into a
// ValidationErrors value, which implements error and matches
// ErrValidationFailed with errors.Is.
//
//	err := validator.Apply(
//	    validator.Required("name", in.Name),
//	    validator.MinLen("name", in.Name, 3),
//	    validator.Email("email", in.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        log.Println(field, verrs.Get(field))
//	    }
//	}
//
// Every ValidationError carries a translation key and values so messages can
// be localised by the caller. Rules are plain values with no shared state and
// are safe to build from multiple goroutines.
package validator
