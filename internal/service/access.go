package service

import (
	"fmt"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/pkg/metrics"
)

// resolveCaller builds the matrix caller from the authenticated user,
// resolving the employer record the user owns when the role needs it.
func resolveCaller(user *domain.User, employers domain.EmployerRepository) (access.Caller, error) {
	caller := access.Caller{UserID: user.ID, Role: user.Role}

	if user.Role == domain.RoleEmployer {
		employer, err := employers.FindByUserID(user.ID)
		if err != nil {
			return caller, fmt.Errorf("işveren kaydı çözümlenemedi: %w", err)
		}
		if employer != nil {
			caller.EmployerID = employer.ID
		}
	}

	return caller, nil
}

func decide(c access.Caller, res access.Resource, op access.Operation, facts access.RowFacts) access.Decision {
	decision := access.Decide(c, res, op, facts)
	metrics.RecordAccessDecision(string(res), string(op), decisionLabel(decision))
	return decision
}

func decisionLabel(d access.Decision) string {
	switch d {
	case access.Allow:
		return "allow"
	case access.AllowOwn:
		return "allow_own"
	}
	return "deny"
}
