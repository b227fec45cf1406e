// Package errs provides standardized error types for the shipping rates service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the service
// distinguishes:
//   - ValueIsRequiredError: a required request value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed bounds
//   - NotConfiguredError: a required operational parameter is absent
//   - UpstreamError: a remote collaborator (carrier, FX source) failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter maps these classes onto status codes: value errors are
// client errors, configuration errors are server errors, and upstream
// errors are absorbed by the orchestrator rather than surfaced.
package errs
