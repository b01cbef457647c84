package model

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserModel struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenResponse is returned by password sign-in, and by sign-up when the
// provider does not require email confirmation.
type TokenResponse struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
	ExpiresIn    int        `json:"expires_in"`
	RefreshToken string     `json:"refresh_token"`
	User         *UserModel `json:"user"`
}

// SignUpResponse covers both sign-up shapes: a session, or the bare user when
// confirmation is pending.
type SignUpResponse struct {
	TokenResponse
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"msg"`
}
