package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/task-manager/internal/core/domain"
	"github.com/taskforge/task-manager/internal/core/ports"
)

// AuthService implements registration, login and password rotation.
type AuthService struct {
	users     ports.UserRepository
	throttle  ports.LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	throttle ports.LoginThrottle,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Register creates a self-service account with the default role.
// No token is issued: the caller logs in afterwards.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		s.log.Warn().Str("email", input.Email).Msg("registration rejected: email taken")
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a signed token. The error for an
// unknown email and a wrong password is the same on purpose, so responses
// cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if locked, err := s.throttle.IsLocked(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("lockout check failed, continuing")
	} else if locked {
		return "", nil, domain.ErrAccountLocked
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Enabled || user.Locked {
		s.log.Warn().Str("email", email).Msg("login rejected: account disabled or locked")
		return "", nil, domain.ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to reset login throttle")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", email).Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// ChangePassword rotates the authenticated caller's password.
func (s *AuthService) ChangePassword(ctx context.Context, p domain.Principal, input ports.ChangePasswordInput) error {
	if p.UserID == "" {
		return domain.ErrUnauthenticated
	}
	if input.NewPassword != input.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if input.NewPassword == input.OldPassword {
		return domain.ErrPasswordUnchanged
	}

	user, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		s.log.Warn().Str("user_id", user.ID).Msg("password change rejected: wrong old password")
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	locked, err := s.throttle.Fail(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
		return
	}
	if locked {
		s.log.Warn().Str("email", email).Msg("account locked out after repeated failures")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
