package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/domain"
	"github.com/maniksharma/vitalog/internal/store"
)

// ErrNotLoggedIn indicates a command that needs a session was run logged out.
var ErrNotLoggedIn = errors.New("not logged in; run `vitalog login` first")

// AuthService owns the session lifecycle: login/signup write the session,
// logout clears it, and Current exposes it to everything else.
type AuthService struct {
	client   *api.Client
	sessions *store.SessionRepo
}

// NewAuthService creates an AuthService.
func NewAuthService(client *api.Client, sessions *store.SessionRepo) *AuthService {
	return &AuthService{client: client, sessions: sessions}
}

// Login authenticates and persists the returned session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*store.Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	apiSession, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, apiSession)
}

// Signup registers a new account and persists the returned session.
func (s *AuthService) Signup(ctx context.Context, req api.SignupRequest) (*store.Session, error) {
	if err := validateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("name is required")
	}

	apiSession, err := s.client.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, apiSession)
}

// Logout clears the stored session. Logging out while logged out is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Refresh fetches the current profile from the server and updates the
// stored session copy.
func (s *AuthService) Refresh(ctx context.Context) (*domain.UserProfile, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.client.Me(ctx)
	if err != nil {
		return nil, err
	}

	sess.User = *profile
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return profile, nil
}

// Current returns the stored session, or ErrNotLoggedIn.
func (s *AuthService) Current(ctx context.Context) (*store.Session, error) {
	sess, err := s.sessions.Get(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return nil, ErrNotLoggedIn
	}
	return sess, err
}

func (s *AuthService) persist(ctx context.Context, apiSession *api.Session) (*store.Session, error) {
	sess := &store.Session{
		Token:   apiSession.Token,
		User:    apiSession.User,
		SavedAt: time.Now(),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return sess, nil
}

func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address %q", email)
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}
