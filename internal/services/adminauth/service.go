package adminauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/syberke1354/exion-sub001/internal/domain/enums"
	"github.com/syberke1354/exion-sub001/internal/domain/model"
	"github.com/syberke1354/exion-sub001/internal/pkg/validate"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionExpired  = errors.New("session expired")
	ErrSessionNotFound = errors.New("session not found")
	ErrAccountNotFound = errors.New("admin account not found")
	ErrUnavailable     = errors.New("admin auth is unavailable")
)

// User-facing messages. The first one is fixed by the login form contract;
// the rest keep the UI language consistent.
const (
	MsgCredentialsRequired = "Email dan password harus diisi"
	MsgLoginFallback       = "Login gagal. Silakan coba lagi."
	MsgLoginUnexpected     = "Terjadi kesalahan saat login"
	MsgAccountInactive     = "Akun admin dinonaktifkan"
)

const sessionMaxTTL = 12 * time.Hour

// LoginError is a reported login failure. UserMessage is the only text
// shown to the end user; Code and the wrapped cause exist so the fault is
// logged instead of silently discarded.
type LoginError struct {
	Code        string
	UserMessage string
	cause       error
}

func (e *LoginError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("login failed (%s): %v", e.Code, e.cause)
	}
	return fmt.Sprintf("login failed (%s)", e.Code)
}

func (e *LoginError) Unwrap() error {
	return e.cause
}

type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (model.AdminAccount, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

type SessionStore interface {
	Create(ctx context.Context, sid uuid.UUID, adminID int64, role string, idleTimeout time.Duration) error
	Touch(ctx context.Context, sid uuid.UUID, adminID int64, idleTimeout time.Duration) (string, error)
	Delete(ctx context.Context, sid uuid.UUID) error
}

type Service struct {
	verifier    Verifier
	accounts    AccountStore
	sessions    SessionStore
	secret      []byte
	idleTimeout time.Duration
	now         func() time.Time
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	Admin       AdminInfo
}

type AdminInfo struct {
	ID    int64      `json:"id"`
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  enums.Role `json:"role"`
}

type Claims struct {
	AdminID int64
	Email   string
	Role    string
	SID     string
}

type tokenClaims struct {
	AdminID int64  `json:"aid"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	SID     string `json:"sid"`
	jwt.RegisteredClaims
}

func NewService(verifier Verifier, accounts AccountStore, sessions SessionStore, jwtSecret string, idleTimeout time.Duration) *Service {
	if idleTimeout <= 0 {
		idleTimeout = 30 * time.Minute
	}
	return &Service{
		verifier:    verifier,
		accounts:    accounts,
		sessions:    sessions,
		secret:      []byte(strings.TrimSpace(jwtSecret)),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

func (s *Service) IsConfigured() bool {
	return s != nil && s.verifier != nil && s.accounts != nil && s.sessions != nil && len(s.secret) > 0
}

// Login performs one submission of the admin login form: local credential
// presence check first (the collaborator is never contacted for blank
// input), then delegation to the identity collaborator, then session
// issuance. Every failure is a *LoginError whose UserMessage is safe to
// display.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if !validate.Required(email) || !validate.Required(password) {
		return LoginResult{}, &LoginError{
			Code:        "CREDENTIALS_REQUIRED",
			UserMessage: MsgCredentialsRequired,
		}
	}
	if !s.IsConfigured() {
		return LoginResult{}, &LoginError{
			Code:        "AUTH_UNAVAILABLE",
			UserMessage: MsgLoginUnexpected,
			cause:       ErrUnavailable,
		}
	}

	email = strings.TrimSpace(email)

	verification, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			message := rejected.Message
			if message == "" {
				message = MsgLoginFallback
			}
			return LoginResult{}, &LoginError{
				Code:        "LOGIN_REJECTED",
				UserMessage: message,
				cause:       err,
			}
		}
		return LoginResult{}, &LoginError{
			Code:        "IDENTITY_ERROR",
			UserMessage: MsgLoginUnexpected,
			cause:       err,
		}
	}

	account, err := s.accounts.FindByEmail(ctx, verification.Email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return LoginResult{}, &LoginError{
				Code:        "ACCOUNT_NOT_FOUND",
				UserMessage: MsgLoginFallback,
				cause:       err,
			}
		}
		return LoginResult{}, &LoginError{
			Code:        "ACCOUNT_LOOKUP_FAILED",
			UserMessage: MsgLoginUnexpected,
			cause:       err,
		}
	}
	if !account.IsActive {
		return LoginResult{}, &LoginError{
			Code:        "ACCOUNT_INACTIVE",
			UserMessage: MsgAccountInactive,
		}
	}

	now := s.now().UTC()
	sid := uuid.New()
	if err := s.sessions.Create(ctx, sid, account.ID, string(account.Role), s.idleTimeout); err != nil {
		return LoginResult{}, &LoginError{
			Code:        "SESSION_CREATE_FAILED",
			UserMessage: MsgLoginUnexpected,
			cause:       err,
		}
	}

	// Any failure past this point must not leave the fresh session
	// live until its idle TTL lapses.
	if err := s.accounts.TouchLastLogin(ctx, account.ID, now); err != nil {
		_ = s.sessions.Delete(ctx, sid)
		return LoginResult{}, &LoginError{
			Code:        "ACCOUNT_UPDATE_FAILED",
			UserMessage: MsgLoginUnexpected,
			cause:       err,
		}
	}

	expiresAt := now.Add(sessionMaxTTL)
	token, err := s.issue(account, sid, now, expiresAt)
	if err != nil {
		_ = s.sessions.Delete(ctx, sid)
		return LoginResult{}, &LoginError{
			Code:        "TOKEN_ISSUE_FAILED",
			UserMessage: MsgLoginUnexpected,
			cause:       err,
		}
	}

	return LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Admin: AdminInfo{
			ID:    account.ID,
			Email: account.Email,
			Name:  account.Name,
			Role:  account.Role,
		},
	}, nil
}

// ValidateAccessToken checks the bearer token and refreshes the session's
// idle timeout. Role changes made since login win over the token's claim.
func (s *Service) ValidateAccessToken(ctx context.Context, accessToken string) (Claims, error) {
	if !s.IsConfigured() {
		return Claims{}, ErrUnavailable
	}

	claims, err := s.parse(accessToken)
	if err != nil {
		return Claims{}, ErrUnauthorized
	}

	sid, err := uuid.Parse(strings.TrimSpace(claims.SID))
	if err != nil {
		return Claims{}, ErrUnauthorized
	}
	role, err := s.sessions.Touch(ctx, sid, claims.AdminID, s.idleTimeout)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Claims{}, ErrSessionExpired
		}
		return Claims{}, fmt.Errorf("touch admin session: %w", err)
	}
	if strings.TrimSpace(role) != "" {
		claims.Role = role
	}
	return claims, nil
}

func (s *Service) Logout(ctx context.Context, sid string) error {
	if !s.IsConfigured() {
		return ErrUnavailable
	}

	parsed, err := uuid.Parse(strings.TrimSpace(sid))
	if err != nil {
		return ErrUnauthorized
	}
	if err := s.sessions.Delete(ctx, parsed); err != nil {
		return fmt.Errorf("delete admin session: %w", err)
	}
	return nil
}

func (s *Service) issue(account model.AdminAccount, sid uuid.UUID, now, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		AdminID: account.ID,
		Email:   account.Email,
		Role:    string(account.Role),
		SID:     sid.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func (s *Service) parse(accessToken string) (Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, ErrUnauthorized
	}
	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrUnauthorized
	}
	if tc.AdminID <= 0 || strings.TrimSpace(tc.SID) == "" {
		return Claims{}, ErrUnauthorized
	}
	return Claims{
		AdminID: tc.AdminID,
		Email:   strings.TrimSpace(tc.Email),
		Role:    strings.TrimSpace(tc.Role),
		SID:     strings.TrimSpace(tc.SID),
	}, nil
}
