package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
	"jobboard/pkg/token"
)

type AuthService struct {
	users  domain.UserRepository
	tokens *token.Maker
	logger logger.Logger
}

func NewAuthService(users domain.UserRepository, tokens *token.Maker, logger logger.Logger) domain.AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *AuthService) Register(input domain.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, domain.NewValidationError("Missing fields")
	}
	if !strings.Contains(input.Email, "@") {
		return nil, domain.NewValidationError("Invalid email")
	}
	if len(input.Password) < 8 {
		return nil, domain.NewValidationError("Password must be at least 8 characters")
	}

	role := domain.Role(input.Role)
	if !role.Valid() {
		return nil, domain.NewValidationError("Invalid role")
	}

	existing, err := s.users.FindByEmail(input.Email)
	if err != nil {
		s.logger.Error("E-posta adresi kontrolü sırasında hata oluştu", map[string]interface{}{"email": input.Email, "error": err.Error()})
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Şifre hashlenemedi", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := s.users.Create(user); err != nil {
		s.logger.Error("Kullanıcı oluşturma sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("Missing fields")
	}
	if !strings.Contains(email, "@") {
		return "", nil, domain.NewValidationError("Invalid email")
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		s.logger.Error("Giriş sırasında kullanıcı aranamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.NewAuthError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.NewAuthError("Invalid credentials")
	}

	signed, err := s.tokens.Create(user.ID)
	if err != nil {
		s.logger.Error("Token oluşturulamadı", map[string]interface{}{"user_id": user.ID, "error": err.Error()})
		return "", nil, err
	}

	return signed, user, nil
}

// CurrentUser resolves the bearer credential to a live user row. A token
// whose subject no longer exists is treated the same as a bad signature.
func (s *AuthService) CurrentUser(tokenString string) (*domain.User, error) {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, domain.NewAuthError("Invalid token")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		s.logger.Error("Token sahibi yüklenemedi", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return nil, err
	}
	if user == nil {
		return nil, domain.NewAuthError("Invalid token")
	}

	return user, nil
}
