package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/concurrent"
	"jobboard/internal/domain"
)

type recordingNotifier struct {
	notifications []*concurrent.StatusNotification
}

func (n *recordingNotifier) Submit(notification *concurrent.StatusNotification) bool {
	n.notifications = append(n.notifications, notification)
	return true
}

func newApplicationSvc(w *world) domain.ApplicationService {
	return NewApplicationService(w.applications, w.jobs, w.employers, nil, testLogger)
}

func TestCreateApplicationForcesPending(t *testing.T) {
	w := newWorld()
	job := w.addJob(w.employer.ID, "Go Developer")
	svc := newApplicationSvc(w)

	application, err := svc.CreateApplication(w.seeker, domain.ApplicationInput{
		UserID: w.seeker.ID,
		JobID:  job.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, application.Status)
	assert.Equal(t, w.seeker.ID, application.UserID)
}

func TestCreateApplicationForOtherUserForbidden(t *testing.T) {
	w := newWorld()
	job := w.addJob(w.employer.ID, "Go Developer")
	svc := newApplicationSvc(w)

	_, err := svc.CreateApplication(w.seeker, domain.ApplicationInput{
		UserID: w.admin.ID,
		JobID:  job.ID,
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestCreateApplicationAdminDenied(t *testing.T) {
	w := newWorld()
	job := w.addJob(w.employer.ID, "Go Developer")
	svc := newApplicationSvc(w)

	_, err := svc.CreateApplication(w.admin, domain.ApplicationInput{
		UserID: w.admin.ID,
		JobID:  job.ID,
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestCreateApplicationUnknownJob(t *testing.T) {
	w := newWorld()
	svc := newApplicationSvc(w)

	_, err := svc.CreateApplication(w.seeker, domain.ApplicationInput{
		UserID: w.seeker.ID,
		JobID:  999,
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid job_id", err.Error())
}

func TestListApplicationsScoping(t *testing.T) {
	w := newWorld()
	_, other := w.secondEmployer()
	jobA := w.addJob(w.employer.ID, "Go Developer")
	jobB := w.addJob(other.ID, "Data Engineer")

	otherSeeker := &domain.User{Username: "veli", Email: "veli@example.com", Role: domain.RoleSeeker}
	w.users.Create(otherSeeker)

	w.addApplication(w.seeker.ID, jobA.ID)
	w.addApplication(w.seeker.ID, jobB.ID)
	w.addApplication(otherSeeker.ID, jobB.ID)

	svc := newApplicationSvc(w)

	// Seeker sees only their own.
	mine, err := svc.ListApplications(w.seeker)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	// Employer sees only the applications on their jobs.
	onMyJobs, err := svc.ListApplications(w.employerUser)
	require.NoError(t, err)
	require.Len(t, onMyJobs, 1)
	assert.Equal(t, jobA.ID, onMyJobs[0].JobID)

	// Admin sees everything.
	all, err := svc.ListApplications(w.admin)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateApplicationStatus(t *testing.T) {
	w := newWorld()
	otherUser, _ := w.secondEmployer()
	job := w.addJob(w.employer.ID, "Go Developer")
	application := w.addApplication(w.seeker.ID, job.ID)

	svc := newApplicationSvc(w)

	// The applicant cannot decide their own application.
	_, err := svc.UpdateApplicationStatus(w.seeker, application.ID, "accepted")
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	// Neither can an employer who doesn't own the job.
	_, err = svc.UpdateApplicationStatus(otherUser, application.ID, "accepted")
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	// The owning employer can, but only to a known status.
	_, err = svc.UpdateApplicationStatus(w.employerUser, application.ID, "archived")
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, "Invalid status", err.Error())

	updated, err := svc.UpdateApplicationStatus(w.employerUser, application.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusAccepted, updated.Status)
}

func TestUpdateApplicationStatusNotifies(t *testing.T) {
	w := newWorld()
	job := w.addJob(w.employer.ID, "Go Developer")
	application := w.addApplication(w.seeker.ID, job.ID)

	notifier := &recordingNotifier{}
	svc := NewApplicationService(w.applications, w.jobs, w.employers, notifier, testLogger)

	_, err := svc.UpdateApplicationStatus(w.employerUser, application.ID, "rejected")
	require.NoError(t, err)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, application.ID, notifier.notifications[0].ApplicationID)
	assert.Equal(t, w.seeker.ID, notifier.notifications[0].UserID)
	assert.Equal(t, "rejected", notifier.notifications[0].Status)
}

func TestGetApplicationScope(t *testing.T) {
	w := newWorld()
	job := w.addJob(w.employer.ID, "Go Developer")
	application := w.addApplication(w.seeker.ID, job.ID)

	otherSeeker := &domain.User{Username: "veli", Email: "veli@example.com", Role: domain.RoleSeeker}
	w.users.Create(otherSeeker)

	svc := newApplicationSvc(w)

	got, err := svc.GetApplication(w.seeker, application.ID)
	require.NoError(t, err)
	assert.Equal(t, application.ID, got.ID)

	got, err = svc.GetApplication(w.employerUser, application.ID)
	require.NoError(t, err)
	assert.Equal(t, application.ID, got.ID)

	_, err = svc.GetApplication(otherSeeker, application.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = svc.GetApplication(w.seeker, 999)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestDeleteApplicationAdminOnly(t *testing.T) {
	w := newWorld()
	job := w.addJob(w.employer.ID, "Go Developer")
	application := w.addApplication(w.seeker.ID, job.ID)
	svc := newApplicationSvc(w)

	err := svc.DeleteApplication(w.seeker, application.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	err = svc.DeleteApplication(w.employerUser, application.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	require.NoError(t, svc.DeleteApplication(w.admin, application.ID))
}

func TestDuplicateApplicationsAllowed(t *testing.T) {
	w := newWorld()
	job := w.addJob(w.employer.ID, "Go Developer")
	svc := newApplicationSvc(w)

	first, err := svc.CreateApplication(w.seeker, domain.ApplicationInput{UserID: w.seeker.ID, JobID: job.ID})
	require.NoError(t, err)

	second, err := svc.CreateApplication(w.seeker, domain.ApplicationInput{UserID: w.seeker.ID, JobID: job.ID})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
