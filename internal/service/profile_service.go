package service

import (
	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type ProfileService struct {
	profiles  domain.ProfileRepository
	users     domain.UserRepository
	employers domain.EmployerRepository
	logger    logger.Logger
}

func NewProfileService(
	profiles domain.ProfileRepository,
	users domain.UserRepository,
	employers domain.EmployerRepository,
	logger logger.Logger,
) domain.ProfileService {
	return &ProfileService{
		profiles:  profiles,
		users:     users,
		employers: employers,
		logger:    logger,
	}
}

func (s *ProfileService) ListProfiles(caller *domain.User) ([]*domain.Profile, error) {
	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	if decide(c, access.Profiles, access.OpList, access.RowFacts{}) != access.Allow {
		return nil, domain.NewForbiddenError()
	}

	return s.profiles.FindAll()
}

func (s *ProfileService) CreateProfile(caller *domain.User, input domain.ProfileInput) (*domain.Profile, error) {
	if input.UserID == 0 || input.FullName == "" {
		return nil, domain.NewValidationError("Missing fields")
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	if decide(c, access.Profiles, access.OpCreate, access.RowFacts{SuppliedUserID: input.UserID}) == access.Deny {
		return nil, domain.NewForbiddenError()
	}

	return s.createFor(input.UserID, input.FullName, input.Bio)
}

func (s *ProfileService) createFor(userID int64, fullName, bio string) (*domain.Profile, error) {
	owner, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.NewValidationError("Invalid user_id")
	}

	existing, err := s.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("Profile already exists")
	}

	profile := &domain.Profile{
		UserID:   userID,
		FullName: fullName,
		Bio:      bio,
	}

	if err := s.profiles.Create(profile); err != nil {
		s.logger.Error("Profil oluşturma sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return profile, nil
}

func (s *ProfileService) GetProfile(caller *domain.User, id int64) (*domain.Profile, error) {
	profile, err := s.profiles.FindByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	if decide(c, access.Profiles, access.OpRead, access.RowFacts{OwnerUserID: profile.UserID}) == access.Deny {
		return nil, domain.NewForbiddenError()
	}

	return profile, nil
}

func (s *ProfileService) UpdateProfile(caller *domain.User, id int64, patch domain.ProfilePatch) (*domain.Profile, error) {
	profile, err := s.profiles.FindByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return nil, err
	}

	if decide(c, access.Profiles, access.OpUpdate, access.RowFacts{OwnerUserID: profile.UserID}) == access.Deny {
		return nil, domain.NewForbiddenError()
	}

	return s.applyPatch(profile, patch)
}

func (s *ProfileService) applyPatch(profile *domain.Profile, patch domain.ProfilePatch) (*domain.Profile, error) {
	if patch.FullName.Present {
		if patch.FullName.Null || patch.FullName.Value == "" {
			return nil, domain.NewValidationError("Invalid full_name")
		}
		profile.FullName = patch.FullName.Value
	}
	// Bio is nullable; null clears it the same way an empty string does.
	if patch.Bio.Present {
		profile.Bio = patch.Bio.Value
	}

	if err := s.profiles.Update(profile); err != nil {
		s.logger.Error("Profil güncelleme sırasında hata oluştu", map[string]interface{}{"id": profile.ID, "error": err.Error()})
		return nil, err
	}

	return profile, nil
}

func (s *ProfileService) DeleteProfile(caller *domain.User, id int64) error {
	profile, err := s.profiles.FindByID(id)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.NewNotFoundError()
	}

	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return err
	}

	if decide(c, access.Profiles, access.OpDelete, access.RowFacts{OwnerUserID: profile.UserID}) == access.Deny {
		return domain.NewForbiddenError()
	}

	if err := s.profiles.Delete(id); err != nil {
		s.logger.Error("Profil silme sırasında hata oluştu", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}

	return nil
}

// The /profiles/me shorthand below never takes an id; the caller's own row
// is the only one in scope, and only seekers get one.

func (s *ProfileService) selfAllowed(caller *domain.User) error {
	c, err := resolveCaller(caller, s.employers)
	if err != nil {
		return err
	}
	if decide(c, access.Profiles, access.OpSelf, access.RowFacts{}) == access.Deny {
		return domain.NewForbiddenError()
	}
	return nil
}

func (s *ProfileService) GetMyProfile(caller *domain.User) (*domain.Profile, error) {
	if err := s.selfAllowed(caller); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByUserID(caller.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.NewNotFoundError()
	}

	return profile, nil
}

func (s *ProfileService) CreateMyProfile(caller *domain.User, fullName, bio string) (*domain.Profile, error) {
	if fullName == "" {
		return nil, domain.NewValidationError("Missing fields")
	}

	if err := s.selfAllowed(caller); err != nil {
		return nil, err
	}

	return s.createFor(caller.ID, fullName, bio)
}

func (s *ProfileService) UpdateMyProfile(caller *domain.User, patch domain.ProfilePatch) (*domain.Profile, error) {
	if err := s.selfAllowed(caller); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByUserID(caller.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.NewNotFoundError()
	}

	return s.applyPatch(profile, patch)
}

func (s *ProfileService) DeleteMyProfile(caller *domain.User) error {
	if err := s.selfAllowed(caller); err != nil {
		return err
	}

	profile, err := s.profiles.FindByUserID(caller.ID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.NewNotFoundError()
	}

	if err := s.profiles.Delete(profile.ID); err != nil {
		s.logger.Error("Profil silme sırasında hata oluştu", map[string]interface{}{"id": profile.ID, "error": err.Error()})
		return err
	}

	return nil
}
