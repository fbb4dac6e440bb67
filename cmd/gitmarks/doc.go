// Package main hosts the gitmarks CLI entrypoint and command graph.
//
// The Cobra command tree walks a user through the settings questionnaire,
// brings the bookmark repositories up from an existing settings file, reports
// what is on disk, and scaffolds the example settings template. Settings
// resolution and logging setup live here so subcommands only wire the
// internal packages together.
package main
