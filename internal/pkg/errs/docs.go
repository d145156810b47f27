// Package errs provides the closed set of error kinds surfaced by the parcel
// delivery core. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The error kinds map directly to the outcomes an operation can report:
//   - ObjectNotFoundError: a referenced parcel, order, or user does not exist
//   - NotAuthorizedError: ownership or role check failed
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     an input field failed validation
//   - InvalidStateError: the operation is forbidden by the current order status
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is resolves to the sentinel
//
// Callers branch on the sentinels exhaustively instead of string-matching
// messages; the HTTP adapter relies on this for status-code translation.
package errs
