package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "todolist-app.com/todolist-app/internal/errors"
	model "todolist-app.com/todolist-app/internal/models"
	repository "todolist-app.com/todolist-app/internal/repositories"
	"todolist-app.com/todolist-app/internal/sessions"
)

type AuthService struct {
	users    *repository.UserRepository
	sessions sessions.Store
}

func NewAuthService(users *repository.UserRepository, store sessions.Store) *AuthService {
	return &AuthService{users: users, sessions: store}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and opens a session. Guest accounts have no
// password and can never log back in through here.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if user.IsGuest || user.PasswordHash == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.sessions.Create(ctx, sessions.Identity{UserID: user.ID})
}

// LoginGuest mints an ephemeral guest account and opens a session for it.
// Guest lifecycle (expiry, purge) is handled outside this service.
func (s *AuthService) LoginGuest(ctx context.Context) (string, error) {
	user := &model.User{
		Username: "guest-" + uuid.NewString(),
		IsGuest:  true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.sessions.Create(ctx, sessions.Identity{UserID: user.ID, IsGuest: true})
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a session token to the acting identity.
func (s *AuthService) Authenticate(ctx context.Context, token string) (sessions.Identity, error) {
	identity, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return sessions.Identity{}, apperrors.ErrUnauthenticated
		}
		return sessions.Identity{}, err
	}
	return identity, nil
}
