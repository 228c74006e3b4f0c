// Package session is the gate in front of the rest of the system: it holds
// the current operator identity, persists it across restarts, and delegates
// the actual credential check to the external authentication collaborator.
package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/medidash/clinic-api/internal/config"
	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/repository"
	"github.com/medidash/clinic-api/pkg/auth"
	apperrors "github.com/medidash/clinic-api/pkg/errors"
)

var errGuestDisabled = errors.New("guest access disabled")

type SessionService interface {
	Login(ctx context.Context, email, password string) (*model.TokenResponse, error)
	LoginGuest(ctx context.Context) (*model.TokenResponse, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) *model.User
}

type Service struct {
	repo   repository.SessionRepository
	auth   Authenticator
	tokens auth.TokenService
	cfg    config.AuthConfig
}

func NewService(repo repository.SessionRepository, authenticator Authenticator, tokens auth.TokenService, cfg config.AuthConfig) *Service {
	return &Service{
		repo:   repo,
		auth:   authenticator,
		tokens: tokens,
		cfg:    cfg,
	}
}

// Login delegates the credential check and, on success, overwrites the
// current identity and issues a session token. The caller cannot tell a
// rejected credential from a transport failure; both are logged here and
// surface as the same generic failure.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	ok, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		log.Error().Err(err).Msg("login call failed")
		return nil, apperrors.NewUnauthorized(err)
	}
	if !ok {
		log.Warn().Str("email", email).Msg("login rejected")
		return nil, apperrors.NewUnauthorized(nil)
	}

	return s.establish(ctx, email)
}

// LoginGuest applies the configured guest shortcut: passthrough mode routes
// the fixed guest credentials through the collaborator like any other
// login, bypass mode grants the guest identity without a network call.
func (s *Service) LoginGuest(ctx context.Context) (*model.TokenResponse, error) {
	switch s.cfg.GuestMode {
	case config.GuestModePassthrough:
		return s.Login(ctx, s.cfg.GuestEmail, s.cfg.GuestPassword)
	case config.GuestModeBypass:
		return s.establish(ctx, s.cfg.GuestEmail)
	default:
		return nil, apperrors.NewUnauthorized(errGuestDisabled)
	}
}

// Logout clears the persisted identity. Logging out while logged out is a
// no-op.
func (s *Service) Logout(ctx context.Context) {
	s.repo.Clear(ctx)
}

func (s *Service) Current(ctx context.Context) *model.User {
	return s.repo.Get(ctx)
}

func (s *Service) establish(ctx context.Context, email string) (*model.TokenResponse, error) {
	user := &model.User{Email: email}
	s.repo.Set(ctx, user)

	token, err := s.tokens.GenerateToken(email)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return &model.TokenResponse{Token: token, User: user}, nil
}
