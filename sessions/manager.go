// Package sessions replaces the browser's stored "user" flag with
// server-side sessions created from the remote login endpoint.
package sessions

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
)

const loginPath = "/auth/login"

type Manager struct {
	store  Store
	client *remote.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(store Store, client *remote.Client, ttl time.Duration) *Manager {

	return &Manager{
		store:  store,
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Login checks the credentials against the remote API and stores the
// admin it answers with under a new token.
func (m *Manager) Login(ctx context.Context, credentials objects.Credentials) (Session, error) {

	credentials.Number = strings.TrimSpace(credentials.Number)
	if credentials.Number == "" || credentials.Password == "" {
		return Session{}, serverError.CredentialsMissingError.New()
	}

	var response struct {
		Data objects.Admin `json:"data"`
	}

	err := m.client.Post(ctx, loginPath, credentials, &response)
	if err != nil {

		// Any answer rejecting the login is a failed login, whatever its status.
		if asserted, ok := serverError.TryAssertError(err); ok {

			switch asserted.Code {
			case serverError.RemoteStatusErrorCode, serverError.RemoteNotFoundErrorCode:
				return Session{}, serverError.InvalidCredentialsError.New(asserted.Message)
			}
		}

		return Session{}, err
	}

	if response.Data.IsNil() {
		return Session{}, serverError.InvalidCredentialsError.New("no user in login response")
	}

	now := m.now().UTC()
	session := Session{
		Token:     uuid.NewString(),
		Admin:     response.Data,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Insert(ctx, session); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Authenticate resolves a token to its live session.
func (m *Manager) Authenticate(ctx context.Context, token string) (Session, error) {

	if token == "" {
		return Session{}, serverError.UnauthorizedError.New()
	}

	session, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return Session{}, err
	}

	if session.Expired(m.now()) {
		if err := m.store.Delete(ctx, token); err != nil {
			slog.Warn("delete expired session failed", "error", err)
		}
		return Session{}, serverError.UnauthorizedError.New()
	}

	return session, nil
}

func (m *Manager) Logout(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}
