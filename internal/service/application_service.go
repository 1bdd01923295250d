package service

import (
	"jobboard/internal/access"
	"jobboard/internal/concurrent"
	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

// StatusNotifier receives a notification for every status change. A nil
// notifier disables delivery.
type StatusNotifier interface {
	Submit(notification *concurrent.StatusNotification) bool
}

type ApplicationService struct {
	applications domain.ApplicationRepository
	jobs         domain.JobRepository
	employers    domain.EmployerRepository
	notifier     StatusNotifier
	logger       logger.Logger
}

func NewApplicationService(
	applications domain.ApplicationRepository,
	jobs domain.JobRepository,
	employers domain.EmployerRepository,
	notifier StatusNotifier,
	logger logger.Logger,
) domain.ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		employers:    employers,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *ApplicationService) ListApplications(caller *domain.User) ([]*domain.Application, error) {
	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	switch decide(c, access.Applications, access.OpList, access.RowFacts{}) {
	case access.Allow:
		return s.applications.FindAll()
	case access.AllowOwn:
		if c.Role == domain.RoleSeeker {
			return s.applications.FindByUserID(caller.ID)
		}
		if c.EmployerID == 0 {
			return []*domain.Application{}, nil
		}
		return s.applications.FindByEmployerID(c.EmployerID)
	}
	return nil, domain.NewForbiddenError()
}

func (s *ApplicationService) CreateApplication(caller *domain.User, input domain.ApplicationInput) (*domain.Application, error) {
	if input.UserID == 0 || input.JobID == 0 {
		return nil, domain.NewValidationError("Missing fields")
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	if decide(c, access.Applications, access.OpCreate, access.RowFacts{SuppliedUserID: input.UserID}) == access.Deny {
		return nil, domain.NewForbiddenError()
	}

	job, err := s.jobs.FindByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.NewValidationError("Invalid job_id")
	}

	application := &domain.Application{
		UserID: input.UserID,
		JobID:  input.JobID,
		// The payload cannot choose a status; every application starts pending.
		Status: domain.ApplicationStatusPending,
	}

	if err := s.applications.Create(application); err != nil {
		s.logger.Error("Başvuru oluşturma sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return application, nil
}

// rowFacts resolves the ownership facts of an application: the applicant
// and, through the job, the employer it belongs to.
func (s *ApplicationService) rowFacts(application *domain.Application) (access.RowFacts, error) {
	facts := access.RowFacts{OwnerUserID: application.UserID}

	job, err := s.jobs.FindByID(application.JobID)
	if err != nil {
		return facts, err
	}
	if job != nil {
		facts.OwnerEmployerID = job.EmployerID
	}

	return facts, nil
}

func (s *ApplicationService) GetApplication(caller *domain.User, id int64) (*domain.Application, error) {
	application, err := s.applications.FindByID(id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	facts, err := s.rowFacts(application)
	if err != nil {
		return nil, err
	}

	if decide(c, access.Applications, access.OpRead, facts) == access.Deny {
		return nil, domain.NewForbiddenError()
	}

	return application, nil
}

func (s *ApplicationService) UpdateApplicationStatus(caller *domain.User, id int64, status string) (*domain.Application, error) {
	application, err := s.applications.FindByID(id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	facts, err := s.rowFacts(application)
	if err != nil {
		return nil, err
	}

	if decide(c, access.Applications, access.OpUpdate, facts) == access.Deny {
		return nil, domain.NewForbiddenError()
	}

	newStatus := domain.ApplicationStatus(status)
	if !newStatus.Valid() {
		return nil, domain.NewValidationError("Invalid status")
	}

	if err := s.applications.UpdateStatus(id, newStatus); err != nil {
		s.logger.Error("Başvuru durumu güncelleme sırasında hata oluştu", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, err
	}

	application.Status = newStatus

	if s.notifier != nil {
		s.notifier.Submit(&concurrent.StatusNotification{
			ApplicationID: application.ID,
			UserID:        application.UserID,
			JobID:         application.JobID,
			Status:        string(newStatus),
		})
	}

	return application, nil
}

func (s *ApplicationService) DeleteApplication(caller *domain.User, id int64) error {
	application, err := s.applications.FindByID(id)
	if err != nil {
		return err
	}
	if application == nil {
		return domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return err
	}

	facts, err := s.rowFacts(application)
	if err != nil {
		return err
	}

	if decide(c, access.Applications, access.OpDelete, facts) == access.Deny {
		return domain.NewForbiddenError()
	}

	if err := s.applications.Delete(id); err != nil {
		s.logger.Error("Başvuru silme sırasında hata oluştu", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}

	return nil
}
