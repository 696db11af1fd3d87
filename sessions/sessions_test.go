package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/go-dashboard/env"
	"github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/mongodb"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
)

func mockAdmin() objects.Admin {

	return objects.Admin{
		AdminID: gofakeit.UUID(),
		Name:    gofakeit.Name(),
		Number:  gofakeit.Phone(),
		Email:   gofakeit.Email(),
		Role:    "admin",
	}
}

// stuckStore keeps sessions it is asked to delete.
type stuckStore struct {
	*MemoryStore
}

func (stuckStore) Delete(ctx context.Context, token string) error {
	return errors.UnknownError.New("store is read-only")
}

type ManagerTestSuite struct {
	suite.Suite
	server   *httptest.Server
	admin    objects.Admin
	password string
	store    *MemoryStore
	manager  *Manager
}

func (s *ManagerTestSuite) SetupTest() {

	s.admin = mockAdmin()
	s.password = gofakeit.Password(true, true, true, false, false, 12)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {

		var credentials objects.Credentials
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if credentials.Number != s.admin.Number || credentials.Password != s.password {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid number or password"})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"data": s.admin})
	})

	s.server = httptest.NewServer(mux)

	client, err := remote.New(env.RemoteConfig{BaseURL: s.server.URL, Timeout: 5 * time.Second})
	s.Require().NoError(err)

	s.store = NewMemoryStore()
	s.manager = NewManager(s.store, client, time.Hour)
}

func (s *ManagerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ManagerTestSuite) TestLogin() {

	ctx := context.Background()

	s.Run("Should throw error when number or password is empty", func() {

		_, err := s.manager.Login(ctx, objects.Credentials{Number: "  ", Password: s.password})
		s.Require().True(errors.IsError(err, errors.CredentialsMissingError.New()))

		_, err = s.manager.Login(ctx, objects.Credentials{Number: s.admin.Number})
		s.Require().True(errors.IsError(err, errors.CredentialsMissingError.New()))
	})

	s.Run("Should throw error when remote API rejects credentials", func() {

		_, err := s.manager.Login(ctx, objects.Credentials{Number: s.admin.Number, Password: "wrong"})
		s.Require().True(errors.HasCode(err, errors.InvalidCredentialsErrorCode))

		asserted, _ := errors.TryAssertError(err)
		s.Contains(asserted.Message, "Invalid number or password")
	})

	s.Run("Should throw login error when login endpoint is missing", func() {

		missing := httptest.NewServer(http.NotFoundHandler())
		defer missing.Close()

		client, err := remote.New(env.RemoteConfig{BaseURL: missing.URL, Timeout: 5 * time.Second})
		s.Require().NoError(err)

		_, err = NewManager(s.store, client, time.Hour).Login(ctx, objects.Credentials{Number: s.admin.Number, Password: s.password})
		s.Require().True(errors.HasCode(err, errors.InvalidCredentialsErrorCode))
	})

	s.Run("Should store session with admin from login response", func() {

		session, err := s.manager.Login(ctx, objects.Credentials{Number: s.admin.Number, Password: s.password})
		s.Require().NoError(err)
		s.NotEmpty(session.Token)
		s.Equal(s.admin, session.Admin)
		s.Equal(time.Hour, session.ExpiresAt.Sub(session.CreatedAt))

		stored, err := s.store.GetByToken(ctx, session.Token)
		s.Require().NoError(err)
		s.Equal(session, stored)
	})
}

func (s *ManagerTestSuite) TestAuthenticate() {

	ctx := context.Background()

	session, err := s.manager.Login(ctx, objects.Credentials{Number: s.admin.Number, Password: s.password})
	s.Require().NoError(err)

	s.Run("Should throw error when token is empty or unknown", func() {

		_, err := s.manager.Authenticate(ctx, "")
		s.Require().True(errors.IsError(err, errors.UnauthorizedError.New()))

		_, err = s.manager.Authenticate(ctx, gofakeit.UUID())
		s.Require().True(errors.IsError(err, errors.UnauthorizedError.New()))
	})

	s.Run("Should resolve live session", func() {

		authenticated, err := s.manager.Authenticate(ctx, session.Token)
		s.Require().NoError(err)
		s.Equal(s.admin.AdminID, authenticated.Admin.AdminID)
	})

	s.Run("Should drop expired session", func() {

		s.manager.now = func() time.Time { return session.ExpiresAt.Add(time.Second) }
		defer func() { s.manager.now = time.Now }()

		_, err := s.manager.Authenticate(ctx, session.Token)
		s.Require().True(errors.IsError(err, errors.UnauthorizedError.New()))

		_, err = s.store.GetByToken(ctx, session.Token)
		s.Require().Error(err)
	})
}

func (s *ManagerTestSuite) TestAuthenticateDeleteFailure() {

	ctx := context.Background()

	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(previous)

	session, err := s.manager.Login(ctx, objects.Credentials{Number: s.admin.Number, Password: s.password})
	s.Require().NoError(err)

	manager := NewManager(stuckStore{s.store}, nil, time.Hour)
	manager.now = func() time.Time { return session.ExpiresAt.Add(time.Second) }

	_, err = manager.Authenticate(ctx, session.Token)
	s.Require().True(errors.IsError(err, errors.UnauthorizedError.New()))
	s.Contains(logs.String(), "delete expired session failed")
	s.Contains(logs.String(), "store is read-only")
}

func (s *ManagerTestSuite) TestLogout() {

	ctx := context.Background()

	session, err := s.manager.Login(ctx, objects.Credentials{Number: s.admin.Number, Password: s.password})
	s.Require().NoError(err)

	s.Require().NoError(s.manager.Logout(ctx, session.Token))

	_, err = s.manager.Authenticate(ctx, session.Token)
	s.Require().True(errors.IsError(err, errors.UnauthorizedError.New()))
}

func TestManager(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

type MongoStoreTestSuite struct {
	suite.Suite
	conn  *mongodb.MongoDBConn
	store *MongoStore
}

func (s *MongoStoreTestSuite) SetupSuite() {

	uri, ok := os.LookupEnv("MONGODB_URI")
	if !ok {
		s.T().Skip("MONGODB_URI is not set")
	}

	conn, err := mongodb.InitConnection(uri, "go-dashboard_test")
	s.Require().NoError(err, "Create MongoDB connection failed")

	s.conn = conn

	store, err := NewMongoStore(conn)
	if err != nil {
		s.conn.Disconnect()
		s.FailNow("Create session store failed", err)
	}

	s.store = store
}

func (s *MongoStoreTestSuite) TearDownSuite() {

	if s.conn != nil {
		s.conn.Disconnect()
	}
}

func (s *MongoStoreTestSuite) TestInsertAndGet() {

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	session := Session{
		Token:     gofakeit.UUID(),
		Admin:     mockAdmin(),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	s.Run("Should insert session", func() {
		s.Require().NoError(s.store.Insert(ctx, session))
	})

	s.Run("Should throw error when inserting duplicated token", func() {
		s.Require().Error(s.store.Insert(ctx, session))
	})

	s.Run("Should get session by token", func() {

		stored, err := s.store.GetByToken(ctx, session.Token)
		s.Require().NoError(err)
		s.Equal(session.Admin, stored.Admin)
		s.True(session.ExpiresAt.Equal(stored.ExpiresAt))
	})

	s.Run("Should throw unauthorized after delete", func() {

		s.Require().NoError(s.store.Delete(ctx, session.Token))

		_, err := s.store.GetByToken(ctx, session.Token)
		s.Require().True(errors.IsError(err, errors.UnauthorizedError.New()))
	})
}

func TestMongoStore(t *testing.T) {
	suite.Run(t, new(MongoStoreTestSuite))
}
