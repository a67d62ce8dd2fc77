package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	authsvc "github.com/syberke1354/exion-sub001/internal/services/adminauth"
	"github.com/syberke1354/exion-sub001/internal/transport/http/dto"
	httperrors "github.com/syberke1354/exion-sub001/internal/transport/http/errors"
)

type AuthHandler struct {
	service *authsvc.Service
	log     *zap.Logger
}

func NewAuthHandler(service *authsvc.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "AUTH_SERVICE_UNAVAILABLE", "auth service is unavailable")
		return
	}

	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", authsvc.MsgCredentialsRequired)
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleLoginError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.LoginResponse{
		AccessToken:  res.AccessToken,
		TokenType:    res.TokenType,
		ExpiresInSec: maxInt64(0, int64(time.Until(res.ExpiresAt).Seconds())),
		Admin:        res.Admin,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "AUTH_SERVICE_UNAVAILABLE", "auth service is unavailable")
		return
	}

	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), identity.SID); err != nil {
		writeInternal(w, "INTERNAL_ERROR", "logout failed")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.LogoutResponse{OK: true})
}

// handleLoginError maps a login failure to a status code and shows only
// the user-facing message. The wrapped cause goes to the log, never the
// response.
func (h *AuthHandler) handleLoginError(w http.ResponseWriter, err error) {
	var loginErr *authsvc.LoginError
	if !errors.As(err, &loginErr) {
		writeInternal(w, "INTERNAL_ERROR", authsvc.MsgLoginUnexpected)
		return
	}

	if h.log != nil && loginErr.Unwrap() != nil {
		h.log.Warn("admin login failed",
			zap.String("code", loginErr.Code),
			zap.Error(loginErr.Unwrap()),
		)
	}

	status := http.StatusUnauthorized
	switch loginErr.Code {
	case "CREDENTIALS_REQUIRED":
		status = http.StatusBadRequest
	case "ACCOUNT_INACTIVE":
		status = http.StatusForbidden
	case "AUTH_UNAVAILABLE", "IDENTITY_ERROR", "ACCOUNT_LOOKUP_FAILED",
		"SESSION_CREATE_FAILED", "ACCOUNT_UPDATE_FAILED", "TOKEN_ISSUE_FAILED":
		status = http.StatusInternalServerError
	}

	httperrors.Write(w, status, httperrors.APIError{
		Code:    loginErr.Code,
		Message: loginErr.UserMessage,
	})
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{Code: code, Message: message})
}

func writeNotFound(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusNotFound, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
