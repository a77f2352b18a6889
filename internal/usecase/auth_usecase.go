package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password too short")
	ErrEmailTaken         = interfaces.ErrEmailTaken
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
)

// Session is a signed owner session.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// IAuthUseCase handles owner sign-up, login and session verification.
type IAuthUseCase interface {
	SignUp(ctx context.Context, email, password string) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	ParseSession(token string) (string, error)
}

type AuthUseCase struct {
	accounts interfaces.IAccountRepository
	secret   []byte
	ttl      time.Duration
	log      *logger.Logger
	now      func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(accounts interfaces.IAccountRepository, secret []byte, ttl time.Duration, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		accounts: accounts,
		secret:   secret,
		ttl:      ttl,
		log:      log.With("component", "auth"),
		now:      time.Now,
	}
}

func (u *AuthUseCase) SignUp(ctx context.Context, email, password string) (Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return Session{}, err
	}
	if len(password) < MinPasswordLength {
		return Session{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}
	acc, err := u.accounts.Create(ctx, entities.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    u.now().UTC(),
	})
	if err != nil {
		return Session{}, err
	}
	u.log.Info("account created", "user_id", acc.ID)
	return u.issue(acc.ID)
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}
	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if acc.ID == "" {
		return Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	return u.issue(acc.ID)
}

// ParseSession verifies a session token and returns its user id.
func (u *AuthUseCase) ParseSession(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSession
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(u.now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}

func (u *AuthUseCase) issue(userID string) (Session, error) {
	now := u.now()
	exp := now.Add(u.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}
	return Session{UserID: userID, Token: signed, ExpiresAt: exp}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
