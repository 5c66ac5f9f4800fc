// Package errors provides the structured error type shared by tablerw packages.
// Every error carries a machine-readable code so callers can tell a rejected
// pipeline configuration from a value the sink could not accept or a failing
// sink backend.
package errors
