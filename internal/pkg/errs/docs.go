// Package errs holds the error taxonomy shared by the domain, the use cases
// and the adapters.
//
// Every struct error unwraps to a sentinel, so callers classify with
// errors.Is and only reach for errors.As when they need the details:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return ctx.JSON(http.StatusNotFound, ...)
//	}
//
// ValueIsOutOfRangeError unwraps to ErrValueIsOutOfRange but its message is
// prefixed with ErrValueIsInvalid, since to the client both read as bad input.
package errs
