package authz

import (
	"testing"

	"github.com/scoutconnect-dev/scoutconnect/internal/models"
)

func TestAllowedMatchesTable(t *testing.T) {
	cases := []struct {
		op     Operation
		permit map[string]bool
	}{
		{OpProfileRead, map[string]bool{models.RoleAdmin: true, models.RoleCoach: true, models.RoleScout: true, models.RoleUser: true}},
		{OpPlayerRead, map[string]bool{models.RoleAdmin: true, models.RoleCoach: true, models.RoleScout: true, models.RoleUser: true}},
		{OpEvaluationRead, map[string]bool{models.RoleAdmin: true, models.RoleCoach: true, models.RoleScout: true, models.RoleUser: true}},
		{OpWatchlistManage, map[string]bool{models.RoleAdmin: true, models.RoleCoach: true, models.RoleScout: true, models.RoleUser: true}},
		{OpPlayerWrite, map[string]bool{models.RoleAdmin: true, models.RoleCoach: true, models.RoleScout: false, models.RoleUser: false}},
		{OpEvaluationWrite, map[string]bool{models.RoleAdmin: true, models.RoleCoach: true, models.RoleScout: false, models.RoleUser: false}},
		{OpAccountManage, map[string]bool{models.RoleAdmin: true, models.RoleCoach: false, models.RoleScout: false, models.RoleUser: false}},
	}

	for _, tc := range cases {
		for role, want := range tc.permit {
			if got := Allowed(role, tc.op); got != want {
				t.Errorf("Allowed(%q, %q) = %v, want %v", role, tc.op, got, want)
			}
		}
	}
}

func TestAllowedIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if !Allowed(models.RoleCoach, OpPlayerWrite) {
			t.Fatal("pure table lookup changed its answer")
		}
		if Allowed(models.RoleScout, OpAccountManage) {
			t.Fatal("pure table lookup changed its answer")
		}
	}
}

func TestAllowedDeniesUnknown(t *testing.T) {
	if Allowed("superuser", OpPlayerWrite) {
		t.Error("unknown role must be denied")
	}

	if Allowed(models.RoleAdmin, Operation("unknown:op")) {
		t.Error("unknown operation must be denied")
	}
}
