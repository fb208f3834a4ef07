// Package errs provides the standardized error types used across the
// application. Each error family follows the same pattern: a sentinel
// error, a struct type carrying details, constructor functions with and
// without a cause, and an Unwrap method so callers can classify errors
// with errors.Is against the sentinel.
package errs
