package dto

import "github.com/syberke1354/exion-sub001/internal/services/adminauth"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string              `json:"access_token"`
	TokenType    string              `json:"token_type"`
	ExpiresInSec int64               `json:"expires_in_sec"`
	Admin        adminauth.AdminInfo `json:"admin"`
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}
