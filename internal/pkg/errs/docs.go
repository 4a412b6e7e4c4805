// Package errs holds the error taxonomy of the dispatch service.
//
// Typed errors carry details for the caller and unwrap to a sentinel, so handlers and
// the HTTP layer classify them with errors.Is:
//   - ObjectNotFoundError, ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//     for lookups and argument checks
//   - InvalidTransitionError for a lifecycle event the job's status does not allow
//   - ForbiddenError for an actor that may not perform an event
//   - BusyError for row lock timeouts and version conflicts
//
// Outcomes without extra detail are plain sentinels: ErrAlreadyClaimed, ErrNotAvailable,
// ErrDuplicateActiveJob, ErrDuplicateEntry, ErrTerminalJob and ErrAgentNotActive.
package errs
