package domain

import "time"

type Employer struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

type EmployerRepository interface {
	FindByID(id int64) (*Employer, error)
	FindByUserID(userID int64) (*Employer, error)
	FindByEmail(email string) (*Employer, error)
	FindByName(name string) (*Employer, error)
	FindAll() ([]*Employer, error)
	Create(employer *Employer) error
	Update(employer *Employer) error
	// Delete removes the employer, its jobs and the applications on those
	// jobs in one transaction.
	Delete(id int64) error
}

type EmployerInput struct {
	UserID        int64  `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Password      string `json:"password"`
}

// EmployerPatch carries a partial update. Absent keys leave the field
// untouched; an explicit null on any of these fields is rejected.
type EmployerPatch struct {
	Name          Field[string] `json:"name"`
	Email         Field[string] `json:"email"`
	CompanyName   Field[string] `json:"company_name"`
	ContactPerson Field[string] `json:"contact_person"`
}

type EmployerService interface {
	ListEmployers(caller *User) ([]*Employer, error)
	CreateEmployer(caller *User, input EmployerInput) (*Employer, error)
	GetEmployer(caller *User, id int64) (*Employer, error)
	UpdateEmployer(caller *User, id int64, patch EmployerPatch) (*Employer, error)
	DeleteEmployer(caller *User, id int64) error
}
