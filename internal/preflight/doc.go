// Package preflight runs read-only environment checks before gitmarks touches
// the filesystem: directory access for the base and role paths, and git
// binary availability for the exec backend.
package preflight
