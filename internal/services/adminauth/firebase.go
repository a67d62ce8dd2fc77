package adminauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// FirebaseVerifier verifies email/password pairs against the Firebase
// Identity Toolkit REST endpoint (accounts:signInWithPassword). Only the
// verification outcome is used; the provider's tokens are discarded
// because session management is handled by this service's own layer.
type FirebaseVerifier struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewFirebaseVerifier(client *http.Client, endpoint, apiKey string) *FirebaseVerifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &FirebaseVerifier{
		client:   client,
		endpoint: strings.TrimSpace(endpoint),
		apiKey:   strings.TrimSpace(apiKey),
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type signInErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (v *FirebaseVerifier) Verify(ctx context.Context, email, password string) (Verification, error) {
	if v.endpoint == "" || v.apiKey == "" {
		return Verification{}, fmt.Errorf("identity collaborator is not configured")
	}

	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return Verification{}, fmt.Errorf("encode sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint+"?key="+v.apiKey, bytes.NewReader(payload))
	if err != nil {
		return Verification{}, fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return Verification{}, fmt.Errorf("call identity collaborator: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusOK {
		var body signInResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return Verification{}, fmt.Errorf("decode sign-in response: %w", err)
		}
		return Verification{
			ProviderUID: body.LocalID,
			Email:       body.Email,
		}, nil
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var body signInErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return Verification{}, &RejectedError{Reason: resp.Status}
		}
		return Verification{}, &RejectedError{
			Message: rejectionMessage(body.Error.Message),
			Reason:  body.Error.Message,
		}
	}

	return Verification{}, fmt.Errorf("identity collaborator returned %s", resp.Status)
}

// rejectionMessage maps the provider's machine codes to user-facing text;
// unknown codes map to empty so the gate applies its generic fallback.
func rejectionMessage(code string) string {
	switch {
	case code == "EMAIL_NOT_FOUND", code == "INVALID_PASSWORD", code == "INVALID_LOGIN_CREDENTIALS":
		return "Email atau password salah"
	case code == "USER_DISABLED":
		return MsgAccountInactive
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return "Terlalu banyak percobaan login. Coba lagi nanti."
	default:
		return ""
	}
}
