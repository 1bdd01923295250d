package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
)

func newProfileSvc(w *world) domain.ProfileService {
	return NewProfileService(w.profiles, w.users, w.employers, testLogger)
}

func TestListProfilesAdminOnly(t *testing.T) {
	w := newWorld()
	svc := newProfileSvc(w)

	_, err := svc.ListProfiles(w.seeker)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = svc.ListProfiles(w.employerUser)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	profiles, err := svc.ListProfiles(w.admin)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestCreateProfileOwnership(t *testing.T) {
	w := newWorld()
	svc := newProfileSvc(w)

	// A seeker may only create their own profile.
	_, err := svc.CreateProfile(w.seeker, domain.ProfileInput{UserID: w.admin.ID, FullName: "Ali Veli"})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	profile, err := svc.CreateProfile(w.seeker, domain.ProfileInput{UserID: w.seeker.ID, FullName: "Ali Veli", Bio: "gopher"})
	require.NoError(t, err)
	assert.Equal(t, w.seeker.ID, profile.UserID)

	// Only one profile per user.
	_, err = svc.CreateProfile(w.seeker, domain.ProfileInput{UserID: w.seeker.ID, FullName: "Ali Veli"})
	require.Error(t, err)
	assert.Equal(t, "Profile already exists", err.Error())
}

func TestCreateProfileAdminForAnyUser(t *testing.T) {
	w := newWorld()
	svc := newProfileSvc(w)

	profile, err := svc.CreateProfile(w.admin, domain.ProfileInput{UserID: w.seeker.ID, FullName: "Ali Veli"})
	require.NoError(t, err)
	assert.Equal(t, w.seeker.ID, profile.UserID)

	_, err = svc.CreateProfile(w.admin, domain.ProfileInput{UserID: 999, FullName: "Ghost"})
	require.Error(t, err)
	assert.Equal(t, "Invalid user_id", err.Error())
}

func TestGetProfileScope(t *testing.T) {
	w := newWorld()
	svc := newProfileSvc(w)

	profile, err := svc.CreateProfile(w.seeker, domain.ProfileInput{UserID: w.seeker.ID, FullName: "Ali Veli"})
	require.NoError(t, err)

	got, err := svc.GetProfile(w.seeker, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)

	_, err = svc.GetProfile(w.employerUser, profile.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	otherSeeker := &domain.User{Username: "veli", Email: "veli@example.com", Role: domain.RoleSeeker}
	w.users.Create(otherSeeker)

	_, err = svc.GetProfile(otherSeeker, profile.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = svc.GetProfile(w.admin, 999)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestUpdateProfileValidation(t *testing.T) {
	w := newWorld()
	svc := newProfileSvc(w)

	profile, err := svc.CreateProfile(w.seeker, domain.ProfileInput{UserID: w.seeker.ID, FullName: "Ali Veli", Bio: "gopher"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(w.seeker, profile.ID, domain.ProfilePatch{FullName: domain.NewField("")})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	// An empty bio is a deliberate clearing, not an error.
	updated, err := svc.UpdateProfile(w.seeker, profile.ID, domain.ProfilePatch{Bio: domain.NewField("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Bio)
	assert.Equal(t, "Ali Veli", updated.FullName)
}

func TestUpdateProfileNullFields(t *testing.T) {
	w := newWorld()
	svc := newProfileSvc(w)

	profile, err := svc.CreateProfile(w.seeker, domain.ProfileInput{UserID: w.seeker.ID, FullName: "Ali Veli", Bio: "gopher"})
	require.NoError(t, err)

	var patch domain.ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"full_name": null}`), &patch))

	_, err = svc.UpdateProfile(w.seeker, profile.ID, patch)
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, "Invalid full_name", err.Error())

	// Bio is nullable: null clears it instead of failing.
	var bioPatch domain.ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"bio": null}`), &bioPatch))

	updated, err := svc.UpdateProfile(w.seeker, profile.ID, bioPatch)
	require.NoError(t, err)
	assert.Equal(t, "", updated.Bio)
	assert.Equal(t, "Ali Veli", updated.FullName)
}

func TestMyProfileLifecycle(t *testing.T) {
	w := newWorld()
	svc := newProfileSvc(w)

	_, err := svc.GetMyProfile(w.seeker)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	profile, err := svc.CreateMyProfile(w.seeker, "Ali Veli", "gopher")
	require.NoError(t, err)
	assert.Equal(t, w.seeker.ID, profile.UserID)

	got, err := svc.GetMyProfile(w.seeker)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)

	name := "Ali Veli Demir"
	updated, err := svc.UpdateMyProfile(w.seeker, domain.ProfilePatch{FullName: domain.NewField(name)})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FullName)

	require.NoError(t, svc.DeleteMyProfile(w.seeker))

	_, err = svc.GetMyProfile(w.seeker)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestMyProfileSeekersOnly(t *testing.T) {
	w := newWorld()
	svc := newProfileSvc(w)

	_, err := svc.GetMyProfile(w.employerUser)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = svc.CreateMyProfile(w.admin, "Root", "")
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}
