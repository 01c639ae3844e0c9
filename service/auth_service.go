package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"carconnect/config"
	"carconnect/pkg/logger"
	"carconnect/pkg/models"
	"carconnect/pkg/token"
	"carconnect/storage"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, tokenStr string) (*models.User, *models.Session, error)
	ChangeEmail(ctx context.Context, userID int64, newEmail string) error
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	CreateAdmin(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	users    storage.IUserStorage
	sessions storage.ISessionStorage
	cfg      config.Config
	log      logger.ILogger
}

func NewAuthService(stg storage.IStorage, cfg config.Config, log logger.ILogger) AuthService {
	return &authService{
		users:    stg.User(),
		sessions: stg.Session(),
		cfg:      cfg,
		log:      log,
	}
}

// Login verifies credentials, opens a server-side session and returns the
// signed token the client carries. Only accounts with the admin role may
// sign in; there is nothing for anyone else to do here.
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if user.Role != models.RoleAdmin {
		return "", nil, ErrNotAdmin
	}

	sessionID, err := generateSessionID()
	if err != nil {
		return "", nil, err
	}

	session := &models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.SessionTTLHours) * time.Hour),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, err
	}

	signed, err := token.Sign(s.cfg.JWTSecret, session.ID, session.ExpiresAt)
	if err != nil {
		return "", nil, err
	}

	s.log.Info("admin signed in", logger.String("email", user.Email))
	return signed, user, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Authenticate resolves a bearer token to its user. Both the token
// signature and the stored session must still be valid, so a logged-out
// or expired session fails even with a well-formed token.
func (s *authService) Authenticate(ctx context.Context, tokenStr string) (*models.User, *models.Session, error) {
	sessionID, err := token.Parse(s.cfg.JWTSecret, tokenStr)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	return user, session, nil
}

func (s *authService) ChangeEmail(ctx context.Context, userID int64, newEmail string) error {
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))
	if newEmail == "" {
		return ErrMissingFields
	}
	err := s.users.UpdateEmail(ctx, userID, newEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err == nil {
		s.log.Info("admin email updated", logger.Int64("user_id", userID))
	}
	return err
}

// ChangePassword re-authenticates with the current password before
// applying the new one.
func (s *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.log.Info("admin password updated", logger.Int64("user_id", userID))
	return nil
}

func (s *authService) CreateAdmin(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, email, string(hash), models.RoleAdmin)
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
