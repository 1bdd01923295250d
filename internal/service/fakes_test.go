package service

import (
	"io"
	"sort"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

var testLogger = logger.New(logger.ErrorLevel, io.Discard)

// world is the standard fixture: a seeker, a user with an employer record,
// and an admin.
type world struct {
	users        *fakeUserRepo
	employers    *fakeEmployerRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	profiles     *fakeProfileRepo

	seeker       *domain.User
	employerUser *domain.User
	admin        *domain.User
	employer     *domain.Employer
}

func newWorld() *world {
	w := &world{
		users:     newFakeUserRepo(),
		employers: newFakeEmployerRepo(),
		jobs:      newFakeJobRepo(),
		profiles:  newFakeProfileRepo(),
	}
	w.applications = newFakeApplicationRepo(w.jobs)

	w.seeker = &domain.User{Username: "ali", Email: "ali@example.com", Role: domain.RoleSeeker}
	w.users.Create(w.seeker)

	w.employerUser = &domain.User{Username: "ayse", Email: "ayse@example.com", Role: domain.RoleEmployer}
	w.users.Create(w.employerUser)

	w.admin = &domain.User{Username: "root", Email: "root@example.com", Role: domain.RoleAdmin}
	w.users.Create(w.admin)

	w.employer = &domain.Employer{
		UserID:        w.employerUser.ID,
		Name:          "acme",
		Email:         "acme@example.com",
		CompanyName:   "Acme A.Ş.",
		ContactPerson: "Ayşe Yılmaz",
	}
	w.employers.Create(w.employer)

	return w
}

// secondEmployer registers another employer-role user with their own record.
func (w *world) secondEmployer() (*domain.User, *domain.Employer) {
	user := &domain.User{Username: "mehmet", Email: "mehmet@example.com", Role: domain.RoleEmployer}
	w.users.Create(user)

	employer := &domain.Employer{
		UserID:        user.ID,
		Name:          "globex",
		Email:         "globex@example.com",
		CompanyName:   "Globex Ltd.",
		ContactPerson: "Mehmet Demir",
	}
	w.employers.Create(employer)

	return user, employer
}

func (w *world) addJob(employerID int64, title string) *domain.Job {
	job := &domain.Job{
		Title:       title,
		Description: "desc",
		Location:    "İstanbul",
		Salary:      50000,
		EmployerID:  employerID,
	}
	w.jobs.Create(job)
	return job
}

func (w *world) addApplication(userID, jobID int64) *domain.Application {
	application := &domain.Application{
		UserID: userID,
		JobID:  jobID,
		Status: domain.ApplicationStatusPending,
	}
	w.applications.Create(application)
	return application
}

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) FindByID(id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.users, id)
	return nil
}

type fakeEmployerRepo struct {
	employers map[int64]*domain.Employer
	nextID    int64
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{employers: make(map[int64]*domain.Employer), nextID: 1}
}

func (r *fakeEmployerRepo) FindByID(id int64) (*domain.Employer, error) {
	employer, ok := r.employers[id]
	if !ok {
		return nil, nil
	}
	copied := *employer
	return &copied, nil
}

func (r *fakeEmployerRepo) FindByUserID(userID int64) (*domain.Employer, error) {
	for _, employer := range r.employers {
		if employer.UserID == userID {
			copied := *employer
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployerRepo) FindByEmail(email string) (*domain.Employer, error) {
	for _, employer := range r.employers {
		if employer.Email == email {
			copied := *employer
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployerRepo) FindByName(name string) (*domain.Employer, error) {
	for _, employer := range r.employers {
		if employer.Name == name {
			copied := *employer
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployerRepo) FindAll() ([]*domain.Employer, error) {
	result := make([]*domain.Employer, 0, len(r.employers))
	for _, employer := range r.employers {
		copied := *employer
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeEmployerRepo) Create(employer *domain.Employer) error {
	employer.ID = r.nextID
	r.nextID++
	copied := *employer
	r.employers[employer.ID] = &copied
	return nil
}

func (r *fakeEmployerRepo) Update(employer *domain.Employer) error {
	copied := *employer
	r.employers[employer.ID] = &copied
	return nil
}

func (r *fakeEmployerRepo) Delete(id int64) error {
	delete(r.employers, id)
	return nil
}

type fakeJobRepo struct {
	jobs   map[int64]*domain.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[int64]*domain.Job), nextID: 1}
}

func (r *fakeJobRepo) FindByID(id int64) (*domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) FindAll() ([]*domain.Job, error) {
	result := make([]*domain.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		copied := *job
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeJobRepo) FindByEmployerID(employerID int64) ([]*domain.Job, error) {
	result := []*domain.Job{}
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			copied := *job
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeJobRepo) Create(job *domain.Job) error {
	job.ID = r.nextID
	r.nextID++
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) Update(job *domain.Job) error {
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) Delete(id int64) error {
	delete(r.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	applications map[int64]*domain.Application
	jobs         *fakeJobRepo
	nextID       int64
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[int64]*domain.Application),
		jobs:         jobs,
		nextID:       1,
	}
}

func (r *fakeApplicationRepo) FindByID(id int64) (*domain.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, nil
	}
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) FindAll() ([]*domain.Application, error) {
	result := make([]*domain.Application, 0, len(r.applications))
	for _, application := range r.applications {
		copied := *application
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeApplicationRepo) FindByUserID(userID int64) ([]*domain.Application, error) {
	result := []*domain.Application{}
	for _, application := range r.applications {
		if application.UserID == userID {
			copied := *application
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeApplicationRepo) FindByEmployerID(employerID int64) ([]*domain.Application, error) {
	result := []*domain.Application{}
	for _, application := range r.applications {
		job, ok := r.jobs.jobs[application.JobID]
		if ok && job.EmployerID == employerID {
			copied := *application
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeApplicationRepo) Create(application *domain.Application) error {
	application.ID = r.nextID
	r.nextID++
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) UpdateStatus(id int64, status domain.ApplicationStatus) error {
	if application, ok := r.applications[id]; ok {
		application.Status = status
	}
	return nil
}

func (r *fakeApplicationRepo) Delete(id int64) error {
	delete(r.applications, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[int64]*domain.Profile
	nextID   int64
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[int64]*domain.Profile), nextID: 1}
}

func (r *fakeProfileRepo) FindByID(id int64) (*domain.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) FindByUserID(userID int64) (*domain.Profile, error) {
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindAll() ([]*domain.Profile, error) {
	result := make([]*domain.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		copied := *profile
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeProfileRepo) Create(profile *domain.Profile) error {
	profile.ID = r.nextID
	r.nextID++
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeProfileRepo) Update(profile *domain.Profile) error {
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeProfileRepo) Delete(id int64) error {
	delete(r.profiles, id)
	return nil
}
