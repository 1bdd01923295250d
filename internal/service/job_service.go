package service

import (
	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type JobService struct {
	jobs      domain.JobRepository
	employers domain.EmployerRepository
	logger    logger.Logger
}

func NewJobService(jobs domain.JobRepository, employers domain.EmployerRepository, logger logger.Logger) domain.JobService {
	return &JobService{
		jobs:      jobs,
		employers: employers,
		logger:    logger,
	}
}

func (s *JobService) ListJobs(caller *domain.User) ([]*domain.Job, error) {
	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	switch decide(c, access.Jobs, access.OpList, access.RowFacts{}) {
	case access.Allow:
		return s.jobs.FindAll()
	case access.AllowOwn:
		if c.EmployerID == 0 {
			return []*domain.Job{}, nil
		}
		return s.jobs.FindByEmployerID(c.EmployerID)
	}
	return nil, domain.NewForbiddenError()
}

func (s *JobService) CreateJob(caller *domain.User, input domain.JobInput) (*domain.Job, error) {
	if input.Title == "" || input.Description == "" || input.Location == "" {
		return nil, domain.NewValidationError("Missing fields")
	}
	if input.Salary < 0 {
		return nil, domain.NewValidationError("Invalid salary")
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Salary:      input.Salary,
	}

	switch decide(c, access.Jobs, access.OpCreate, access.RowFacts{}) {
	case access.AllowOwn:
		// Whatever employer_id the payload carried is ignored.
		job.EmployerID = c.EmployerID
	case access.Allow:
		if input.EmployerID == 0 {
			return nil, domain.NewValidationError("Missing fields")
		}
		employer, err := s.employers.FindByID(input.EmployerID)
		if err != nil {
			return nil, err
		}
		if employer == nil {
			return nil, domain.NewValidationError("Invalid employer_id")
		}
		job.EmployerID = input.EmployerID
	default:
		return nil, domain.NewForbiddenError()
	}

	if err := s.jobs.Create(job); err != nil {
		s.logger.Error("İlan oluşturma sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return job, nil
}

func (s *JobService) GetJob(caller *domain.User, id int64) (*domain.Job, error) {
	job, err := s.jobs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	if decide(c, access.Jobs, access.OpRead, access.RowFacts{OwnerEmployerID: job.EmployerID}) == access.Deny {
		return nil, domain.NewForbiddenError()
	}

	return job, nil
}

func (s *JobService) UpdateJob(caller *domain.User, id int64, patch domain.JobPatch) (*domain.Job, error) {
	job, err := s.jobs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	decision := decide(c, access.Jobs, access.OpUpdate, access.RowFacts{OwnerEmployerID: job.EmployerID})
	if decision == access.Deny {
		return nil, domain.NewForbiddenError()
	}

	if patch.Title.Present {
		if patch.Title.Null || patch.Title.Value == "" {
			return nil, domain.NewValidationError("Invalid title")
		}
		job.Title = patch.Title.Value
	}
	if patch.Description.Present {
		if patch.Description.Null || patch.Description.Value == "" {
			return nil, domain.NewValidationError("Invalid description")
		}
		job.Description = patch.Description.Value
	}
	if patch.Location.Present {
		if patch.Location.Null || patch.Location.Value == "" {
			return nil, domain.NewValidationError("Invalid location")
		}
		job.Location = patch.Location.Value
	}
	if patch.Salary.Present {
		if patch.Salary.Null || patch.Salary.Value < 0 {
			return nil, domain.NewValidationError("Invalid salary")
		}
		job.Salary = patch.Salary.Value
	}
	// Only an unrestricted allow may move a job to another employer.
	if patch.EmployerID.Present && decision == access.Allow {
		if patch.EmployerID.Null || patch.EmployerID.Value <= 0 {
			return nil, domain.NewValidationError("Invalid employer_id")
		}
		employer, err := s.employers.FindByID(patch.EmployerID.Value)
		if err != nil {
			return nil, err
		}
		if employer == nil {
			return nil, domain.NewValidationError("Invalid employer_id")
		}
		job.EmployerID = patch.EmployerID.Value
	}

	if err := s.jobs.Update(job); err != nil {
		s.logger.Error("İlan güncelleme sırasında hata oluştu", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, err
	}

	return job, nil
}

func (s *JobService) DeleteJob(caller *domain.User, id int64) error {
	job, err := s.jobs.FindByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return err
	}

	if decide(c, access.Jobs, access.OpDelete, access.RowFacts{OwnerEmployerID: job.EmployerID}) == access.Deny {
		return domain.NewForbiddenError()
	}

	if err := s.jobs.Delete(id); err != nil {
		s.logger.Error("İlan silme sırasında hata oluştu", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}

	return nil
}
