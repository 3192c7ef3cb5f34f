// Package authz holds the static role/operation permission table. A decision
// is a pure lookup: the table never changes at runtime.
package authz

import "github.com/scoutconnect-dev/scoutconnect/internal/models"

type Operation string

const (
	OpProfileRead     Operation = "profile:read"
	OpAccountManage   Operation = "account:manage"
	OpPlayerRead      Operation = "player:read"
	OpPlayerWrite     Operation = "player:write"
	OpEvaluationRead  Operation = "evaluation:read"
	OpEvaluationWrite Operation = "evaluation:write"
	OpWatchlistManage Operation = "watchlist:manage"
)

var anyRole = []string{models.RoleAdmin, models.RoleCoach, models.RoleScout, models.RoleUser}

var permissions = map[Operation][]string{
	OpProfileRead:     anyRole,
	OpAccountManage:   {models.RoleAdmin},
	OpPlayerRead:      anyRole,
	OpPlayerWrite:     {models.RoleAdmin, models.RoleCoach},
	OpEvaluationRead:  anyRole,
	OpEvaluationWrite: {models.RoleAdmin, models.RoleCoach},
	OpWatchlistManage: anyRole,
}

// Allowed reports whether role may perform op. Unknown operations and unknown
// roles are always denied.
func Allowed(role string, op Operation) bool {
	for _, r := range permissions[op] {
		if r == role {
			return true
		}
	}
	return false
}
