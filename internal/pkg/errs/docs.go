// Package errs provides the structured error taxonomy shared by every layer
// of the application.
//
// Error kinds:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed input rejected before any I/O
//   - ObjectNotFoundError: lookup by identifier returned nothing
//   - InvalidTransitionError: a status change the state machine forbids
//   - HasDependentsError: a guarded delete refused because dependent
//     records still exist
//   - ConflictError: a uniqueness violation such as a duplicate email
//   - StorageError: opaque wrapper around an underlying storage failure
//
// Each kind follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct carrying the details, constructor
// functions (with and without cause), an Error method, and an Unwrap method
// returning the sentinel. The core never formats messages for display; the
// HTTP adapter translates each kind into a response.
package errs
