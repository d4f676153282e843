package service

import (
	"context"
	"database/sql"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/assodanse/assoserver/auth/users"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	mu      sync.Mutex
	users   map[uuid.UUID]users.User
	byEmail map[string]uuid.UUID
	secrets map[uuid.UUID]users.Secret
}

func newMemStorage() *memStorage {
	return &memStorage{
		users:   make(map[uuid.UUID]users.User),
		byEmail: make(map[string]uuid.UUID),
		secrets: make(map[uuid.UUID]users.Secret),
	}
}

func (m *memStorage) CreateUser(_ context.Context, user users.User, secret users.Secret) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	m.byEmail[user.Email] = user.ID
	m.secrets[user.ID] = secret
	return nil
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	return user, nil
}

func (m *memStorage) GetUserByEmail(_ context.Context, email string) (users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byEmail[email]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	return m.users[id], nil
}

func (m *memStorage) GetUserSecret(_ context.Context, user users.User) (users.Secret, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := user.ID
	if id == uuid.Nil {
		var ok bool
		id, ok = m.byEmail[user.Email]
		if !ok {
			return users.Secret{}, sql.ErrNoRows
		}
	}
	secret, ok := m.secrets[id]
	if !ok {
		return users.Secret{}, sql.ErrNoRows
	}
	return secret, nil
}

func (m *memStorage) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	user.LastLogin = at
	m.users[id] = user
	return nil
}

func (m *memStorage) UpdatePassword(_ context.Context, id uuid.UUID, secret users.Secret) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.secrets[id]; !ok {
		return sql.ErrNoRows
	}
	m.secrets[id] = secret
	return nil
}

func (m *memStorage) setActive(id uuid.UUID, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := m.users[id]
	user.IsActive = active
	m.users[id] = user
}

const (
	testAdminEmail    = "admin@test.fr"
	testAdminPassword = "Adm1nPassword"
)

func testConfig() Config {
	return Config{
		Token:         "unit-test-secret",
		Expiration:    "15m",
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
		Rules: []Rule{
			{Name: "login", Path: `^/admin/login$`, Method: []string{"POST"}, Allow: []string{"*"}, Order: 10},
			{Name: "dashboard", Path: `^/admin/dashboard$`, Method: []string{"GET"}, Allow: []string{users.RoleAdmin}, Order: 20},
			{Name: "admin area", Path: `^/admin/.*`, Method: []string{"*"}, Allow: []string{users.RoleAdmin, users.RoleUser}, Order: 100},
		},
	}
}

func newTestService(t *testing.T) (*Service, *memStorage) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	st := newMemStorage()
	svc, err := New(context.Background(), testConfig(), st, log)
	require.NoError(t, err)
	return svc, st
}

func adminID(t *testing.T, st *memStorage) uuid.UUID {
	t.Helper()
	id, ok := st.byEmail[testAdminEmail]
	require.True(t, ok, "bootstrap should have created the admin")
	return id
}

// signToken builds a token with the service key but arbitrary timestamps.
func signToken(t *testing.T, svc *Service, sub string, role string, issued, expires time.Time) string {
	t.Helper()
	claims := tokenClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   sub,
			IssuedAt:  issued.Unix(),
			ExpiresAt: expires.Unix(),
		},
		Role: role,
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(svc.cfg.Token))
	require.NoError(t, err)
	return raw
}

func TestLogin(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, token, err := svc.Login(ctx, testAdminEmail, testAdminPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, users.RoleAdmin, user.Role)
		assert.False(t, user.LastLogin.IsZero())
	})

	t.Run("email is normalized", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "  Admin@Test.FR ", testAdminPassword)
		require.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@test.fr", testAdminPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, testAdminEmail, "not-the-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated user looks like bad credentials", func(t *testing.T) {
		id := adminID(t, st)
		st.setActive(id, false)
		defer st.setActive(id, true)
		_, _, err := svc.Login(ctx, testAdminEmail, testAdminPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	id := adminID(t, st)
	now := time.Now()

	t.Run("valid token", func(t *testing.T) {
		_, token, err := svc.Login(ctx, testAdminEmail, testAdminPassword)
		require.NoError(t, err)
		fresh, err := svc.Refresh(ctx, token)
		require.NoError(t, err)
		assert.NotEmpty(t, fresh)
	})

	t.Run("expired within grace", func(t *testing.T) {
		token := signToken(t, svc, id.String(), users.RoleAdmin, now.Add(-17*time.Minute), now.Add(-2*time.Minute))
		fresh, err := svc.Refresh(ctx, token)
		require.NoError(t, err)

		user, err := svc.Auth(ctx, "Bearer "+fresh, "GET", "/admin/dashboard")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})

	t.Run("expired past grace", func(t *testing.T) {
		token := signToken(t, svc, id.String(), users.RoleAdmin, now.Add(-1*time.Hour), now.Add(-30*time.Minute))
		_, err := svc.Refresh(ctx, token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong key", func(t *testing.T) {
		claims := jwt.StandardClaims{Subject: id.String(), ExpiresAt: now.Add(time.Minute).Unix()}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)
		_, err = svc.Refresh(ctx, token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("deactivated user", func(t *testing.T) {
		st.setActive(id, false)
		defer st.setActive(id, true)
		token := signToken(t, svc, id.String(), users.RoleAdmin, now, now.Add(time.Minute))
		_, err := svc.Refresh(ctx, token)
		assert.ErrorIs(t, err, ErrUserDeactivated)
	})

	t.Run("deleted user", func(t *testing.T) {
		token := signToken(t, svc, uuid.NewString(), users.RoleAdmin, now, now.Add(time.Minute))
		_, err := svc.Refresh(ctx, token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong old password", func(t *testing.T) {
		svc, st := newTestService(t)
		id := adminID(t, st)
		err := svc.ChangePassword(ctx, id, "wrong", "NewPassw0rd")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, err = svc.Login(ctx, testAdminEmail, testAdminPassword)
		assert.NoError(t, err, "old password must still work")
	})

	t.Run("weak new password", func(t *testing.T) {
		svc, st := newTestService(t)
		id := adminID(t, st)
		err := svc.ChangePassword(ctx, id, testAdminPassword, "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
		_, _, err = svc.Login(ctx, testAdminEmail, testAdminPassword)
		assert.NoError(t, err, "old password must still work")
	})

	t.Run("success", func(t *testing.T) {
		svc, st := newTestService(t)
		id := adminID(t, st)
		err := svc.ChangePassword(ctx, id, testAdminPassword, "NewPassw0rd")
		require.NoError(t, err)
		_, _, err = svc.Login(ctx, testAdminEmail, "NewPassw0rd")
		assert.NoError(t, err)
		_, _, err = svc.Login(ctx, testAdminEmail, testAdminPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuth(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	id := adminID(t, st)
	now := time.Now()

	adminToken := signToken(t, svc, id.String(), users.RoleAdmin, now, now.Add(time.Minute))
	userToken := signToken(t, svc, uuid.NewString(), users.RoleUser, now, now.Add(time.Minute))
	expiredToken := signToken(t, svc, id.String(), users.RoleAdmin, now.Add(-time.Hour), now.Add(-time.Minute))

	tests := []struct {
		name    string
		header  string
		method  string
		path    string
		wantErr error
	}{
		{name: "anonymous route without token", method: "POST", path: "/admin/login"},
		{name: "anonymous route with token", header: "Bearer " + adminToken, method: "POST", path: "/admin/login"},
		{name: "missing token", method: "GET", path: "/admin/profile", wantErr: ErrMissingToken},
		{name: "malformed header", header: "Token abc", method: "GET", path: "/admin/profile", wantErr: ErrMissingToken},
		{name: "invalid token", header: "Bearer garbage", method: "GET", path: "/admin/profile", wantErr: ErrTokenInvalid},
		{name: "expired token", header: "Bearer " + expiredToken, method: "GET", path: "/admin/profile", wantErr: ErrTokenExpired},
		{name: "admin on dashboard", header: "Bearer " + adminToken, method: "GET", path: "/admin/dashboard"},
		{name: "user on dashboard", header: "Bearer " + userToken, method: "GET", path: "/admin/dashboard", wantErr: ErrForbidden},
		{name: "user on shared route", header: "Bearer " + userToken, method: "GET", path: "/admin/profile"},
		{name: "no rule matches", header: "Bearer " + adminToken, method: "GET", path: "/internal/debug", wantErr: ErrForbidden},
		{name: "method not anonymous falls through", method: "GET", path: "/admin/login", wantErr: ErrMissingToken},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Auth(ctx, tt.header, tt.method, tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_validatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "ok", password: "Passw0rd", wantErr: false},
		{name: "ok with accents", password: "Épreuve12", wantErr: false},
		{name: "too short", password: "Pa0", wantErr: true},
		{name: "no upper", password: "passw0rd", wantErr: true},
		{name: "no lower", password: "PASSW0RD", wantErr: true},
		{name: "no digit", password: "Password", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := validatePassword(tt.password); (err != nil) != tt.wantErr {
				t.Errorf("validatePassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "ok", header: "Bearer abc.def.ghi", want: "abc.def.ghi", wantOK: true},
		{name: "empty", header: "", wantOK: false},
		{name: "no prefix", header: "abc.def.ghi", wantOK: false},
		{name: "wrong scheme", header: "Basic abc", wantOK: false},
		{name: "prefix only", header: "Bearer ", wantOK: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := BearerToken(tt.header)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("BearerToken() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
