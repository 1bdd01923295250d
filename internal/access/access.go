package access

import "jobboard/internal/domain"

type Resource string

const (
	Jobs         Resource = "jobs"
	Employers    Resource = "employers"
	Applications Resource = "applications"
	Profiles     Resource = "profiles"
)

type Operation string

const (
	OpList   Operation = "list"
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
	// OpSelf is the /profiles/me shorthand; it covers all four verbs.
	OpSelf Operation = "self"
)

// Decision is the outcome of one matrix evaluation. AllowOwn means the
// operation proceeds restricted to the caller's own rows: a scoped listing,
// an ownership-checked row operation, or a create whose ownership fields are
// forced to the caller's identity.
type Decision int

const (
	Deny Decision = iota
	Allow
	AllowOwn
)

// Caller is the identity resolved from the bearer credential, enriched with
// the id of the employer record the user owns. EmployerID is 0 when the user
// owns none.
type Caller struct {
	UserID     int64
	Role       domain.Role
	EmployerID int64
}

// RowFacts carries the ownership facts of the targeted row, or of the row
// about to be created. Only the fields relevant to the resource are set:
// OwnerUserID for employers/applications/profiles, OwnerEmployerID for jobs
// and for an application's job, SuppliedUserID for create payloads.
type RowFacts struct {
	OwnerUserID     int64
	OwnerEmployerID int64
	SuppliedUserID  int64
}

// Decide evaluates the access-control matrix for one (caller, resource,
// operation) triple. Row existence is not its concern: services resolve the
// row first (404 wins over 403) and hand the facts in. Roles outside the
// three known values deny everything.
func Decide(c Caller, res Resource, op Operation, facts RowFacts) Decision {
	switch res {
	case Jobs:
		return decideJobs(c, op, facts)
	case Employers:
		return decideEmployers(c, op, facts)
	case Applications:
		return decideApplications(c, op, facts)
	case Profiles:
		return decideProfiles(c, op, facts)
	}
	return Deny
}

func decideJobs(c Caller, op Operation, f RowFacts) Decision {
	switch op {
	case OpList:
		switch c.Role {
		case domain.RoleSeeker, domain.RoleAdmin:
			return Allow
		case domain.RoleEmployer:
			return AllowOwn
		}
	case OpCreate:
		switch c.Role {
		case domain.RoleEmployer:
			if c.EmployerID != 0 {
				return AllowOwn // employer_id is forced to the caller's own
			}
		case domain.RoleAdmin:
			return Allow
		}
	case OpRead:
		switch c.Role {
		case domain.RoleSeeker, domain.RoleAdmin:
			return Allow
		case domain.RoleEmployer:
			if c.EmployerID != 0 && f.OwnerEmployerID == c.EmployerID {
				return AllowOwn
			}
		}
	case OpUpdate, OpDelete:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleEmployer:
			if c.EmployerID != 0 && f.OwnerEmployerID == c.EmployerID {
				return AllowOwn
			}
		}
	}
	return Deny
}

func decideEmployers(c Caller, op Operation, f RowFacts) Decision {
	switch op {
	case OpList:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleEmployer:
			return AllowOwn
		}
	case OpCreate:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleEmployer:
			if f.SuppliedUserID == c.UserID {
				return AllowOwn
			}
		}
	case OpRead, OpUpdate:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleEmployer:
			if f.OwnerUserID == c.UserID {
				return AllowOwn
			}
		}
	case OpDelete:
		if c.Role == domain.RoleAdmin {
			return Allow
		}
	}
	return Deny
}

func decideApplications(c Caller, op Operation, f RowFacts) Decision {
	switch op {
	case OpList:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleSeeker, domain.RoleEmployer:
			return AllowOwn
		}
	case OpCreate:
		// Seekers only; admins land in the deny branch on purpose.
		if c.Role == domain.RoleSeeker && f.SuppliedUserID == c.UserID {
			return AllowOwn // status is forced to pending
		}
	case OpRead:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleSeeker:
			if f.OwnerUserID == c.UserID {
				return AllowOwn
			}
		case domain.RoleEmployer:
			if c.EmployerID != 0 && f.OwnerEmployerID == c.EmployerID {
				return AllowOwn
			}
		}
	case OpUpdate:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleEmployer:
			if c.EmployerID != 0 && f.OwnerEmployerID == c.EmployerID {
				return AllowOwn
			}
		}
	case OpDelete:
		if c.Role == domain.RoleAdmin {
			return Allow
		}
	}
	return Deny
}

func decideProfiles(c Caller, op Operation, f RowFacts) Decision {
	switch op {
	case OpList:
		if c.Role == domain.RoleAdmin {
			return Allow
		}
	case OpCreate:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleSeeker:
			if f.SuppliedUserID == c.UserID {
				return AllowOwn
			}
		}
	case OpRead, OpUpdate, OpDelete:
		switch c.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleSeeker:
			if f.OwnerUserID == c.UserID {
				return AllowOwn
			}
		}
	case OpSelf:
		if c.Role == domain.RoleSeeker {
			return AllowOwn
		}
	}
	return Deny
}
