package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	"github.com/BruksfildServices01/vetclinic-api/internal/auth"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/user"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type Service struct {
	users  domain.Repository
	tokens *auth.Tokens
	audit  *audit.Dispatcher
}

func NewService(
	users domain.Repository,
	tokens *auth.Tokens,
	audit *audit.Dispatcher,
) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// Login checks the credentials and issues a bearer token. Unknown email
// and wrong password fail the same way.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, docstore.ErrNotFound) {
		return "", nil, httperr.ErrBusiness("invalid_credentials")
	}
	if err != nil {
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		s.audit.Dispatch(audit.Event{
			UserID:   user.ID,
			Action:   "login_failed",
			Entity:   "user",
			EntityID: user.ID,
		})
		return "", nil, httperr.ErrBusiness("invalid_credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   user.ID,
		Action:   "login",
		Entity:   "user",
		EntityID: user.ID,
	})

	return token, user, nil
}

// Resolve verifies a bearer token and loads its user, which must still
// exist.
func (s *Service) Resolve(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, claims.UserID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin seeds an admin account when none has the given email.
// Nothing happens without a password.
func (s *Service) EnsureAdmin(ctx context.Context, email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        email,
		Name:         name,
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	zap.L().Info("default admin created", zap.String("email", email))
	return nil
}
