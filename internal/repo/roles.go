package repo

import (
	"gitmarks/internal/config"
)

// Role identifies one of the bookmark repositories.
type Role string

const (
	RolePublic  Role = "public"
	RolePrivate Role = "private"
	RoleContent Role = "content"
)

// Roles lists every role in bootstrap order.
func Roles() []Role {
	return []Role{RolePublic, RolePrivate, RoleContent}
}

// Plan describes what the bootstrapper must ensure for a single role.
type Plan struct {
	Role    Role
	Path    string   // resolved by config.RepoPath
	Remote  string   // empty when the role initializes locally
	Subdirs []string // created after a local init
}

// HasRemote reports whether the role is cloned rather than initialized.
func (p Plan) HasRemote() bool {
	return p.Remote != ""
}

// Plans derives the per-role plans from cfg in bootstrap order.
//
// The content role never clones; its subdirectories are only created when
// content is kept as a repository.
func Plans(cfg *config.Config) []Plan {
	subdirs := cfg.BookmarkSubdirs()
	plans := []Plan{
		newPlan(cfg, RolePublic, cfg.Paths.PublicRepoDir, cfg.Remotes.Public, subdirs),
		newPlan(cfg, RolePrivate, cfg.Paths.PrivateRepoDir, cfg.Remotes.Private, subdirs),
	}
	var contentSubdirs []string
	if cfg.Content.AsRepo {
		contentSubdirs = subdirs
	}
	plans = append(plans, newPlan(cfg, RoleContent, cfg.Paths.ContentDir, "", contentSubdirs))
	return plans
}

func newPlan(cfg *config.Config, role Role, name, remote string, subdirs []string) Plan {
	return Plan{
		Role:    role,
		Path:    cfg.RepoPath(name),
		Remote:  remote,
		Subdirs: append([]string(nil), subdirs...),
	}
}
