package preflight

import (
	"gitmarks/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the base directory and every role directory that already
// exists. Missing role directories are not failures; bootstrap creates them.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckCreatable("Base directory", cfg.Paths.BaseDir)}

	roles := []struct {
		name string
		dir  string
	}{
		{"Public repository", cfg.Paths.PublicRepoDir},
		{"Private repository", cfg.Paths.PrivateRepoDir},
		{"Content directory", cfg.Paths.ContentDir},
	}
	for _, role := range roles {
		results = append(results, CheckCreatable(role.name, cfg.RepoPath(role.dir)))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
