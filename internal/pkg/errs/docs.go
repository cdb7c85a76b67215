// Package errs provides the typed errors shared across the delivery filter.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrValueIsRequired) used with errors.Is
//   - a struct carrying the details (ParamName, Cause, ...)
//   - New… and New…WithCause constructors
//   - Error() for a single-line message and Unwrap() returning the sentinel
//
// Argument validation uses ValueIsRequiredError and ValueIsInvalidError,
// the CSV loader reports missing inputs with ObjectNotFoundError and bad rows
// with RecordIsMalformedError.
package errs
