// Package config loads, normalizes, and validates gitmarks configuration.
//
// The settings file written by `gitmarks configure` is read back into an
// explicit Config value; every key the file omits keeps the default from the
// embedded example settings. Paths are expanded (including tilde shortcuts)
// and made absolute so the bootstrapper never depends on the working
// directory.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
