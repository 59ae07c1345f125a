// Package errs provides standardized error types for the storefront
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping used throughout the service.
//
// Error families:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError:
//     a constructed value would violate a structural/field-level invariant
//     (the validation kind, fixable by the caller)
//   - DomainRuleViolatedError: a well-formed object cannot undergo the
//     requested operation in its current state (the domain kind)
//   - ObjectNotFoundError: an object cannot be found in storage
//   - VersionConflictError: a conflicting concurrent update was detected
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsInvalid)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel,
//     so errors.Is classifies any instance of the family
//
// Errors are raised synchronously at the point of violation and are never
// swallowed inside the core; the HTTP boundary translates them into
// user-facing responses.
package errs
