package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobboard/internal/domain"
)

var (
	seeker   = Caller{UserID: 1, Role: domain.RoleSeeker}
	employer = Caller{UserID: 2, Role: domain.RoleEmployer, EmployerID: 10}
	admin    = Caller{UserID: 3, Role: domain.RoleAdmin}
)

func TestDecideJobs(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		op     Operation
		facts  RowFacts
		want   Decision
	}{
		{"seeker lists all", seeker, OpList, RowFacts{}, Allow},
		{"employer list scoped to own", employer, OpList, RowFacts{}, AllowOwn},
		{"admin lists all", admin, OpList, RowFacts{}, Allow},
		{"seeker cannot create", seeker, OpCreate, RowFacts{}, Deny},
		{"employer create forces ownership", employer, OpCreate, RowFacts{}, AllowOwn},
		{"employer without record cannot create", Caller{UserID: 9, Role: domain.RoleEmployer}, OpCreate, RowFacts{}, Deny},
		{"admin creates with supplied employer", admin, OpCreate, RowFacts{}, Allow},
		{"seeker reads any job", seeker, OpRead, RowFacts{OwnerEmployerID: 99}, Allow},
		{"employer reads own job", employer, OpRead, RowFacts{OwnerEmployerID: 10}, AllowOwn},
		{"employer cannot read foreign job", employer, OpRead, RowFacts{OwnerEmployerID: 99}, Deny},
		{"seeker cannot update", seeker, OpUpdate, RowFacts{}, Deny},
		{"employer updates own job", employer, OpUpdate, RowFacts{OwnerEmployerID: 10}, AllowOwn},
		{"employer cannot update foreign job", employer, OpUpdate, RowFacts{OwnerEmployerID: 99}, Deny},
		{"employer deletes own job", employer, OpDelete, RowFacts{OwnerEmployerID: 10}, AllowOwn},
		{"seeker cannot delete", seeker, OpDelete, RowFacts{}, Deny},
		{"admin updates any job", admin, OpUpdate, RowFacts{OwnerEmployerID: 99}, Allow},
		{"admin deletes any job", admin, OpDelete, RowFacts{OwnerEmployerID: 99}, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.caller, Jobs, tt.op, tt.facts))
		})
	}
}

func TestDecideEmployers(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		op     Operation
		facts  RowFacts
		want   Decision
	}{
		{"seeker cannot list", seeker, OpList, RowFacts{}, Deny},
		{"employer list scoped to own row", employer, OpList, RowFacts{}, AllowOwn},
		{"admin lists all", admin, OpList, RowFacts{}, Allow},
		{"employer creates for own user", employer, OpCreate, RowFacts{SuppliedUserID: 2}, AllowOwn},
		{"employer cannot create for other user", employer, OpCreate, RowFacts{SuppliedUserID: 5}, Deny},
		{"admin creates for any user", admin, OpCreate, RowFacts{SuppliedUserID: 5}, Allow},
		{"seeker cannot read", seeker, OpRead, RowFacts{OwnerUserID: 1}, Deny},
		{"employer reads own row", employer, OpRead, RowFacts{OwnerUserID: 2}, AllowOwn},
		{"employer cannot read foreign row", employer, OpRead, RowFacts{OwnerUserID: 5}, Deny},
		{"employer updates own row", employer, OpUpdate, RowFacts{OwnerUserID: 2}, AllowOwn},
		{"employer cannot delete even own row", employer, OpDelete, RowFacts{OwnerUserID: 2}, Deny},
		{"admin deletes", admin, OpDelete, RowFacts{OwnerUserID: 5}, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.caller, Employers, tt.op, tt.facts))
		})
	}
}

func TestDecideApplications(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		op     Operation
		facts  RowFacts
		want   Decision
	}{
		{"seeker list scoped to own", seeker, OpList, RowFacts{}, AllowOwn},
		{"employer list scoped to own jobs", employer, OpList, RowFacts{}, AllowOwn},
		{"admin lists all", admin, OpList, RowFacts{}, Allow},
		{"seeker applies as self", seeker, OpCreate, RowFacts{SuppliedUserID: 1}, AllowOwn},
		{"seeker cannot apply for other user", seeker, OpCreate, RowFacts{SuppliedUserID: 5}, Deny},
		{"employer cannot apply", employer, OpCreate, RowFacts{SuppliedUserID: 2}, Deny},
		{"admin cannot apply", admin, OpCreate, RowFacts{SuppliedUserID: 3}, Deny},
		{"seeker reads own application", seeker, OpRead, RowFacts{OwnerUserID: 1}, AllowOwn},
		{"seeker cannot read foreign application", seeker, OpRead, RowFacts{OwnerUserID: 5}, Deny},
		{"employer reads application on own job", employer, OpRead, RowFacts{OwnerEmployerID: 10}, AllowOwn},
		{"employer cannot read application on foreign job", employer, OpRead, RowFacts{OwnerEmployerID: 99}, Deny},
		{"seeker cannot update status", seeker, OpUpdate, RowFacts{OwnerUserID: 1}, Deny},
		{"employer updates status on own job", employer, OpUpdate, RowFacts{OwnerEmployerID: 10}, AllowOwn},
		{"admin updates status", admin, OpUpdate, RowFacts{}, Allow},
		{"employer cannot delete", employer, OpDelete, RowFacts{OwnerEmployerID: 10}, Deny},
		{"admin deletes", admin, OpDelete, RowFacts{}, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.caller, Applications, tt.op, tt.facts))
		})
	}
}

func TestDecideProfiles(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		op     Operation
		facts  RowFacts
		want   Decision
	}{
		{"seeker cannot list", seeker, OpList, RowFacts{}, Deny},
		{"employer cannot list", employer, OpList, RowFacts{}, Deny},
		{"admin lists all", admin, OpList, RowFacts{}, Allow},
		{"seeker creates own profile", seeker, OpCreate, RowFacts{SuppliedUserID: 1}, AllowOwn},
		{"seeker cannot create for other user", seeker, OpCreate, RowFacts{SuppliedUserID: 5}, Deny},
		{"employer cannot create", employer, OpCreate, RowFacts{SuppliedUserID: 2}, Deny},
		{"seeker reads own profile", seeker, OpRead, RowFacts{OwnerUserID: 1}, AllowOwn},
		{"seeker cannot read foreign profile", seeker, OpRead, RowFacts{OwnerUserID: 5}, Deny},
		{"seeker deletes own profile", seeker, OpDelete, RowFacts{OwnerUserID: 1}, AllowOwn},
		{"admin touches any profile", admin, OpUpdate, RowFacts{OwnerUserID: 5}, Allow},
		{"seeker uses me shorthand", seeker, OpSelf, RowFacts{}, AllowOwn},
		{"employer denied me shorthand", employer, OpSelf, RowFacts{}, Deny},
		{"admin denied me shorthand", admin, OpSelf, RowFacts{}, Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.caller, Profiles, tt.op, tt.facts))
		})
	}
}

func TestDecideUnknownRoleDeniesEverything(t *testing.T) {
	ghost := Caller{UserID: 7, Role: "superuser"}

	for _, res := range []Resource{Jobs, Employers, Applications, Profiles} {
		for _, op := range []Operation{OpList, OpCreate, OpRead, OpUpdate, OpDelete, OpSelf} {
			assert.Equal(t, Deny, Decide(ghost, res, op, RowFacts{OwnerUserID: 7, SuppliedUserID: 7}),
				"resource %s op %s", res, op)
		}
	}
}

func TestDecideUnknownResourceDenies(t *testing.T) {
	assert.Equal(t, Deny, Decide(admin, Resource("reports"), OpList, RowFacts{}))
}
