package domain

import "time"

type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      float64   `json:"salary"`
	EmployerID  int64     `json:"employer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobRepository interface {
	FindByID(id int64) (*Job, error)
	FindAll() ([]*Job, error)
	FindByEmployerID(employerID int64) ([]*Job, error)
	Create(job *Job) error
	Update(job *Job) error
	// Delete removes the job and its applications in one transaction.
	Delete(id int64) error
}

type JobInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Salary      float64 `json:"salary"`
	EmployerID  int64   `json:"employer_id"`
}

// JobPatch carries a partial update. Absent keys leave the field untouched;
// an explicit null on any of these fields is rejected.
type JobPatch struct {
	Title       Field[string]  `json:"title"`
	Description Field[string]  `json:"description"`
	Location    Field[string]  `json:"location"`
	Salary      Field[float64] `json:"salary"`
	EmployerID  Field[int64]   `json:"employer_id"`
}

type JobService interface {
	ListJobs(caller *User) ([]*Job, error)
	CreateJob(caller *User, input JobInput) (*Job, error)
	GetJob(caller *User, id int64) (*Job, error)
	UpdateJob(caller *User, id int64, patch JobPatch) (*Job, error)
	DeleteJob(caller *User, id int64) error
}
