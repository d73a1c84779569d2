package domain

import "strings"

// ErrorResponse representa o envelope de erro padrão da Graph API.
type ErrorResponse struct {
	Error MetaError `json:"error"`
}

type MetaError struct {
	Message        string `json:"message"`
	Type           string `json:"type"`
	Code           int    `json:"code"`
	ErrorSubcode   int    `json:"error_subcode"`
	FBTraceID      string `json:"fbtrace_id"`
	ErrorUserTitle string `json:"error_user_title"`
	ErrorUserMsg   string `json:"error_user_msg"`
}

// IsTokenExpired indica se o erro corresponde a token de acesso expirado ou
// inválido, caso em que o cliente tenta renovar o token antes de falhar.
func (e *ErrorResponse) IsTokenExpired() bool {
	if e.Error.Code == 190 {
		return true
	}

	msg := strings.ToLower(e.Error.Message)
	return strings.Contains(msg, "access token") &&
		(strings.Contains(msg, "expired") || strings.Contains(msg, "invalid"))
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type DebugTokenResponse struct {
	Data DebugTokenData `json:"data"`
}

type DebugTokenData struct {
	IsValid   bool  `json:"is_valid"`
	ExpiresAt int64 `json:"expires_at"`
}
