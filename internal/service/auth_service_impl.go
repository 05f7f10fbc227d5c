package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/kanban-board/internal/auth"
	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/repository"
)

const fieldRequired = "This field is required."

type authService struct {
	userRepo  repository.UserRepository
	passwords *auth.PasswordManager
	tokens    *auth.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, passwords *auth.PasswordManager, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and returns a session for it
func (s *authService) Register(ctx context.Context, input domain.Registration) (*domain.Session, error) {
	fullname := strings.TrimSpace(input.Fullname)
	email := normalizeEmail(input.Email)

	v := domain.ValidationErrors{}
	if fullname == "" {
		v.Add("fullname", fieldRequired)
	}
	if email == "" {
		v.Add("email", fieldRequired)
	} else if err := auth.ValidateEmail(email); err != nil {
		v.Add("email", "Enter a valid email address.")
	}
	if input.Password == "" {
		v.Add("password", fieldRequired)
	} else if err := s.passwords.ValidatePassword(input.Password); err != nil {
		v.Add("password", err.Error())
	}
	if input.RepeatedPassword != input.Password {
		v.Add("repeated_password", "Passwords do not match.")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Fullname:     fullname,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domain.NewValidationError("email", "A user with this email already exists.")
		}
		return nil, err
	}

	return s.session(user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)

	v := domain.ValidationErrors{}
	if email == "" {
		v.Add("email", fieldRequired)
	}
	if password == "" {
		v.Add("password", fieldRequired)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	invalid := domain.NewValidationError(domain.NonFieldErrors, "Invalid email or password.")

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if err := s.passwords.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, invalid
		}
		return nil, err
	}

	return s.session(user)
}

func (s *authService) CheckEmail(ctx context.Context, email string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email", fieldRequired)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, "user with this email")
	}

	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) session(user *domain.User) (*domain.Session, error) {
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: token, User: user}, nil
}
