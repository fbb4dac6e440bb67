package repo

import (
	"os"
	"path/filepath"

	"gitmarks/internal/config"
)

// State describes what is on disk for a role.
type State string

const (
	StateMissing    State = "missing"
	StateDirectory  State = "directory"
	StateRepository State = "repository"
)

// RoleStatus is a read-only snapshot of a role's local path.
type RoleStatus struct {
	Plan           Plan
	State          State
	MissingSubdirs []string
}

// Inspect probes every role without modifying anything.
func Inspect(cfg *config.Config) []RoleStatus {
	plans := Plans(cfg)
	statuses := make([]RoleStatus, 0, len(plans))
	for _, plan := range plans {
		statuses = append(statuses, inspect(plan))
	}
	return statuses
}

func inspect(plan Plan) RoleStatus {
	status := RoleStatus{Plan: plan, State: StateMissing}
	info, err := os.Stat(plan.Path)
	if err != nil || !info.IsDir() {
		status.MissingSubdirs = append([]string(nil), plan.Subdirs...)
		return status
	}
	status.State = StateDirectory
	if IsRepository(plan.Path) {
		status.State = StateRepository
	}
	for _, name := range plan.Subdirs {
		if name == "" {
			continue
		}
		if info, err := os.Stat(filepath.Join(plan.Path, name)); err != nil || !info.IsDir() {
			status.MissingSubdirs = append(status.MissingSubdirs, name)
		}
	}
	return status
}
