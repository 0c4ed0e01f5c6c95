// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines two groups of errors:
//
// Validation errors, raised while constructing value objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//
// Domain errors, raised by core operations:
//   - ObjectNotFoundError: an unknown identifier or tracking code
//   - OperationNotAllowedError: an illegal lifecycle transition, an
//     ownership violation, or a lost claim race
//   - UserNotActiveError: a gated account attempting a gated action
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrOperationNotAllowed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// The HTTP boundary maps each sentinel to a transport status code; the core
// never deals in status codes itself.
package errs
