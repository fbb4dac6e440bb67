// Package settings reads and rewrites gitmarks settings files.
//
// A settings file is a list of `KEY = value` assignments, each optionally
// followed by a `# comment`. Values are typed (text, integer, boolean, or
// null) and are represented by Value. The embedded example file defines the
// recognized keys and their defaults.
//
// Merge applies an Overrides mapping to a template while keeping every other
// byte of the file intact, including comments on rewritten lines. The line
// count of the result must match the template; any mismatch is reported as an
// *Error rather than written.
package settings
