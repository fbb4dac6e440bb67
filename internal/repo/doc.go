// Package repo brings the public, private, and content bookmark repositories
// into existence under the configured base directory.
//
// Each role is planned from config.Config, probed for an existing working
// copy, and then either cloned from its remote or initialized locally with
// the bookmark subdirectory set. Version-control work is delegated to a
// Client: the exec client shells out to git with an explicit working
// directory, the embedded client uses go-git and needs no binary.
//
// The process working directory is never changed.
package repo
