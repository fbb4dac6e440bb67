// Package setup runs the configure and bootstrap flows.
//
// A Questionnaire turns answers into settings.Overrides. The Runner merges
// them into the settings file, reloads it as a config.Config, and hands that
// to the repository bootstrapper. Any failure stops the run; work already
// done for earlier repository roles is left in place.
package setup
