package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/assodanse/assoserver/auth/storage"
	"github.com/assodanse/assoserver/auth/users"
	"github.com/assodanse/assoserver/internal/normalize"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDeactivated    = errors.New("user deactivated")
	ErrMissingToken       = errors.New("missing token")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("access denied")
	ErrWeakPassword       = errors.New("weak password")
)

// refreshGracePeriod is how far past expiry a token is still refreshable.
// Beyond that the client has to log in again.
const refreshGracePeriod = 5 * time.Minute

const minPasswordLen = 8

type Service struct {
	storage  storage.AuthStorage
	cfg      Config
	tokenTTL time.Duration
	rules    []rule
	// dummyHash keeps the unknown-email login path doing a bcrypt
	// comparison, so it costs about the same as a wrong password.
	dummyHash []byte
	log       *logrus.Entry
}

type rule struct {
	path    *regexp.Regexp
	methods []string
	allow   []string
}

type tokenClaims struct {
	jwt.StandardClaims
	Role string `json:"role"`
}

func New(ctx context.Context, cfg Config, storage storage.AuthStorage, l *logrus.Logger) (*Service, error) {
	tokenTTL, err := time.ParseDuration(cfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("parse token expiration: %w", err)
	}
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s := Service{
		cfg:       cfg,
		storage:   storage,
		tokenTTL:  tokenTTL,
		dummyHash: dummyHash,
		log:       l.WithField("from", "auth-service"),
	}
	if err := s.compileRules(); err != nil {
		return nil, err
	}
	if err := s.bootstrapAdmin(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Service) compileRules() error {
	rules := make([]Rule, len(s.cfg.Rules))
	copy(rules, s.cfg.Rules)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Order < rules[j].Order
	})
	for _, r := range rules {
		re, err := regexp.Compile(r.Path)
		if err != nil {
			return fmt.Errorf("rule %q: %w", r.Name, err)
		}
		s.rules = append(s.rules, rule{
			path:    re,
			methods: r.Method,
			allow:   r.Allow,
		})
	}
	return nil
}

func (s *Service) bootstrapAdmin(ctx context.Context) error {
	if s.cfg.AdminEmail == "" {
		return nil
	}
	email := normalize.Email(s.cfg.AdminEmail)
	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	err = s.storage.CreateUser(ctx, users.User{
		ID:        uuid.New(),
		Email:     email,
		Role:      users.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}, users.Secret{PasswordHash: string(hash)})
	if err != nil {
		return err
	}
	s.log.WithField("email", email).Info("admin user created")
	return nil
}

// Login checks the credentials and returns the user with a fresh token.
// Unknown email, wrong password and deactivated account all come back as
// ErrInvalidCredentials; the real cause is only logged.
func (s *Service) Login(ctx context.Context, email string, password string) (users.User, string, error) {
	email = normalize.Email(email)
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			s.log.WithField("email", email).Info("login failed: unknown email")
			return users.User{}, "", ErrInvalidCredentials
		}
		return users.User{}, "", fmt.Errorf("find user: %w", err)
	}
	secret, err := s.storage.GetUserSecret(ctx, user)
	if err != nil {
		return users.User{}, "", fmt.Errorf("user secret: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(secret.PasswordHash), []byte(password)); err != nil {
		s.log.WithField("email", email).Info("login failed: wrong password")
		return users.User{}, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		s.log.WithField("email", email).Info("login failed: user deactivated")
		return users.User{}, "", ErrInvalidCredentials
	}
	now := time.Now().UTC()
	if err := s.storage.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return users.User{}, "", fmt.Errorf("update last login: %w", err)
	}
	user.LastLogin = now
	token, err := s.newToken(user, now)
	if err != nil {
		return users.User{}, "", err
	}
	return user, token, nil
}

// Logout acknowledges the request. Tokens are stateless, there is nothing to
// revoke server-side; the client drops its copy.
func (s *Service) Logout(_ context.Context) error {
	return nil
}

// Refresh exchanges a valid token, or one expired less than the grace period
// ago, for a fresh one. The user is re-read so deactivation takes effect here
// and not only at login.
func (s *Service) Refresh(ctx context.Context, raw string) (string, error) {
	claims, err := s.parseToken(raw)
	switch {
	case err == nil:
	case errors.Is(err, ErrTokenExpired):
		expiredAt := time.Unix(claims.ExpiresAt, 0)
		if time.Since(expiredAt) > refreshGracePeriod {
			return "", ErrTokenExpired
		}
	default:
		return "", err
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", ErrTokenInvalid
	}
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrTokenInvalid
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive {
		return "", ErrUserDeactivated
	}
	return s.newToken(user, time.Now().UTC())
}

// ChangePassword re-verifies the old password, checks the complexity policy
// and stores a new hash. Nothing is persisted on any failure.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	secret, err := s.storage.GetUserSecret(ctx, users.User{ID: userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("user secret: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(secret.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.storage.UpdatePassword(ctx, userID, users.Secret{PasswordHash: string(hash)})
}

// Profile returns the stored user without its secret.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (users.User, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrTokenInvalid
		}
		return users.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Auth guards a request. The first configured rule matching method and path
// decides which roles pass; the identity comes from the token claims alone,
// no storage round trip.
func (s *Service) Auth(_ context.Context, authHeader string, method string, path string) (users.User, error) {
	for _, r := range s.rules {
		if !r.path.MatchString(path) {
			continue
		}
		if !r.matchesMethod(method) {
			continue
		}
		return s.applyRule(r, authHeader)
	}
	return users.User{}, ErrForbidden
}

func (r rule) matchesMethod(method string) bool {
	for _, m := range r.methods {
		if m == "*" || m == method {
			return true
		}
	}
	return false
}

func (s *Service) applyRule(r rule, authHeader string) (users.User, error) {
	anonymous := false
	for _, role := range r.allow {
		if role == "*" {
			anonymous = true
		}
	}
	token, ok := BearerToken(authHeader)
	if !ok {
		if anonymous {
			return users.User{}, nil
		}
		return users.User{}, ErrMissingToken
	}
	claims, err := s.parseToken(token)
	if err != nil {
		if anonymous {
			return users.User{}, nil
		}
		return users.User{}, err
	}
	user, err := identityFromClaims(claims)
	if err != nil {
		if anonymous {
			return users.User{}, nil
		}
		return users.User{}, err
	}
	if anonymous {
		return user, nil
	}
	for _, role := range r.allow {
		if role == user.Role {
			return user, nil
		}
	}
	return users.User{}, ErrForbidden
}

// BearerToken extracts the token from an Authorization header.
func BearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func identityFromClaims(claims *tokenClaims) (users.User, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, ErrTokenInvalid
	}
	return users.User{
		ID:       id,
		Role:     claims.Role,
		IsActive: true,
	}, nil
}

func (s *Service) newToken(user users.User, now time.Time) (string, error) {
	claims := tokenClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID.String(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
		Role: user.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Token))
}

// parseToken validates signature and expiry. On ErrTokenExpired the decoded
// claims are still returned so Refresh can apply the grace period.
func (s *Service) parseToken(raw string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(s.cfg.Token), nil
	})
	if err == nil && token.Valid {
		return claims, nil
	}
	var ve *jwt.ValidationError
	if !errors.As(err, &ve) {
		return nil, ErrTokenInvalid
	}
	// A bad signature also sets the expired bit on stale tokens; signature
	// failures win.
	badSignature := jwt.ValidationErrorMalformed | jwt.ValidationErrorUnverifiable | jwt.ValidationErrorSignatureInvalid
	if ve.Errors&badSignature != 0 {
		return nil, ErrTokenInvalid
	}
	if ve.Errors&jwt.ValidationErrorExpired != 0 {
		return claims, ErrTokenExpired
	}
	return nil, ErrTokenInvalid
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return ErrWeakPassword
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return ErrWeakPassword
	}
	return nil
}
