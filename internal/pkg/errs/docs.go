// Package errs provides the standardized error taxonomy for the orders application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Every anticipated failure is expressed as an *errs.Error carrying a Kind:
//   - NotFound: a referenced entity is absent
//   - Validation: malformed or inconsistent input
//   - Conflict: a uniqueness violation (duplicate email or SKU)
//   - ConcurrencyConflict: a stale version token on an update
//   - BusinessRule: an illegal state transition
//   - Unexpected: anything else (store failures, bugs)
//
// Each Kind has a matching sentinel error, so callers can classify failures
// either by inspecting the Kind or with errors.Is against the sentinel.
// Transport layers translate Kinds into response codes without the
// application core knowing anything about transport.
package errs
