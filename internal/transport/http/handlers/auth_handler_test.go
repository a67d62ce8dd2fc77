package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syberke1354/exion-sub001/internal/domain/enums"
	"github.com/syberke1354/exion-sub001/internal/domain/model"
	authsvc "github.com/syberke1354/exion-sub001/internal/services/adminauth"
)

type stubVerifier struct {
	verification authsvc.Verification
	err          error
}

func (s *stubVerifier) Verify(context.Context, string, string) (authsvc.Verification, error) {
	if s.err != nil {
		return authsvc.Verification{}, s.err
	}
	return s.verification, nil
}

type stubAccounts struct {
	account model.AdminAccount
	err     error
}

func (s *stubAccounts) FindByEmail(context.Context, string) (model.AdminAccount, error) {
	if s.err != nil {
		return model.AdminAccount{}, s.err
	}
	return s.account, nil
}

func (s *stubAccounts) TouchLastLogin(context.Context, int64, time.Time) error {
	return nil
}

type stubSessions struct{}

func (stubSessions) Create(context.Context, uuid.UUID, int64, string, time.Duration) error {
	return nil
}

func (stubSessions) Touch(context.Context, uuid.UUID, int64, time.Duration) (string, error) {
	return "", nil
}

func (stubSessions) Delete(context.Context, uuid.UUID) error {
	return nil
}

func newAuthHandler(verifier authsvc.Verifier, accounts authsvc.AccountStore) *AuthHandler {
	svc := authsvc.NewService(verifier, accounts, stubSessions{}, "test-secret", 30*time.Minute)
	return NewAuthHandler(svc, zap.NewNop())
}

func decodeAPIError(t *testing.T, body string) (string, string) {
	t.Helper()

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return payload.Code, payload.Message
}

func TestLoginBlankCredentials(t *testing.T) {
	handler := newAuthHandler(&stubVerifier{}, &stubAccounts{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"","password":""}`))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusBadRequest)
	}
	if _, msg := decodeAPIError(t, rr.Body.String()); msg != "Email dan password harus diisi" {
		t.Fatalf("message = %q", msg)
	}
}

func TestLoginRejectedShowsCollaboratorMessage(t *testing.T) {
	handler := newAuthHandler(&stubVerifier{
		err: &authsvc.RejectedError{Message: "Email atau password salah", Reason: "INVALID_PASSWORD"},
	}, &stubAccounts{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@sekolah.sch.id","password":"salah"}`))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
	if _, msg := decodeAPIError(t, rr.Body.String()); msg != "Email atau password salah" {
		t.Fatalf("message = %q", msg)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	handler := newAuthHandler(&stubVerifier{
		verification: authsvc.Verification{ProviderUID: "uid-1", Email: "admin@sekolah.sch.id"},
	}, &stubAccounts{
		account: model.AdminAccount{ID: 1, Email: "admin@sekolah.sch.id", Role: enums.RoleSuperAdmin, IsActive: false},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@sekolah.sch.id","password":"rahasia"}`))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusForbidden)
	}
	if _, msg := decodeAPIError(t, rr.Body.String()); msg != "Akun admin dinonaktifkan" {
		t.Fatalf("message = %q", msg)
	}
}

func TestLoginSuccess(t *testing.T) {
	handler := newAuthHandler(&stubVerifier{
		verification: authsvc.Verification{ProviderUID: "uid-1", Email: "admin@sekolah.sch.id"},
	}, &stubAccounts{
		account: model.AdminAccount{
			ID:       1,
			Email:    "admin@sekolah.sch.id",
			Name:     "Admin Sekolah",
			Role:     enums.RoleSuperAdmin,
			IsActive: true,
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@sekolah.sch.id","password":"rahasia"}`))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d, body %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		TokenType    string `json:"token_type"`
		ExpiresInSec int64  `json:"expires_in_sec"`
		Admin        struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.AccessToken == "" || body.TokenType != "Bearer" {
		t.Fatalf("unexpected token fields: %+v", body)
	}
	if body.ExpiresInSec <= 0 {
		t.Fatalf("expires_in_sec = %d", body.ExpiresInSec)
	}
	if body.Admin.Role != "super_admin" {
		t.Fatalf("admin role = %q", body.Admin.Role)
	}
}
