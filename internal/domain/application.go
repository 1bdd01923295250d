package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	JobID     int64             `json:"job_id"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

type ApplicationRepository interface {
	FindByID(id int64) (*Application, error)
	FindAll() ([]*Application, error)
	FindByUserID(userID int64) ([]*Application, error)
	// FindByEmployerID returns the applications on the employer's jobs.
	FindByEmployerID(employerID int64) ([]*Application, error)
	Create(application *Application) error
	UpdateStatus(id int64, status ApplicationStatus) error
	Delete(id int64) error
}

type ApplicationInput struct {
	UserID int64 `json:"user_id"`
	JobID  int64 `json:"job_id"`
}

type ApplicationService interface {
	ListApplications(caller *User) ([]*Application, error)
	CreateApplication(caller *User, input ApplicationInput) (*Application, error)
	GetApplication(caller *User, id int64) (*Application, error)
	UpdateApplicationStatus(caller *User, id int64, status string) (*Application, error)
	DeleteApplication(caller *User, id int64) error
}
