// Package errs holds the typed errors shared by the domain, the application
// handlers and the adapters.
//
// Every error kind has a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrConflict, ErrForbidden,
// ErrPartialFailure) and a struct carrying the details. The structs unwrap to
// their sentinel, so callers branch with errors.Is and read details with errors.As:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return ctx.JSON(http.StatusNotFound, ...)
//	}
//
// The three validation kinds are grouped by IsValidation.
package errs
