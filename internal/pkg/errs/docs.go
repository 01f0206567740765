// Package errs provides standardized error types for the tailoring
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the full error taxonomy of the core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures caught before any write
//   - ObjectNotFoundError: unknown order, bill, customer or tailor
//   - ConflictError: illegal transitions, payments on settled bills,
//     lost optimistic-concurrency races
//   - SecurityError: failed signature checks; terminal, never auto-retried,
//     and formatted without leaking cryptographic detail
//   - ExternalUnavailableError: transient gateway or catalog failures that
//     callers may retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels make classification at the HTTP boundary a plain errors.Is
// switch, keeping transport status-code mapping out of the domain.
package errs
