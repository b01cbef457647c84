package webapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sns-app/pkg/jwt"
	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/model"
)

// AuthAPI talks to the GoTrue-style auth provider.
type AuthAPI interface {
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)
	// SignUp returns a nil session when the provider holds the account for
	// email confirmation.
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	// CurrentIdentity returns nil, nil when the token carries no identity.
	CurrentIdentity(ctx context.Context, accessToken string) (*entity.Session, error)
}

type authAPI struct {
	baseURL    string
	anonKey    string
	jwtService *jwt.Service
	httpClient *http.Client
}

// NewAuthAPI builds the provider client. With a non-nil jwtService access
// tokens are verified locally instead of asking the provider.
func NewAuthAPI(baseURL, anonKey string, jwtService *jwt.Service, timeout time.Duration) AuthAPI {
	return &authAPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		jwtService: jwtService,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *authAPI) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp model.TokenResponse
	endpoint := a.baseURL + "/auth/v1/token?grant_type=password"
	if err := a.call(ctx, http.MethodPost, endpoint, "", &model.CredentialsRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, authError(err)
	}

	session := ToSession(resp.User, resp.AccessToken)
	if session == nil || resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: provider returned no session", ErrAuthFailed)
	}
	return session, nil
}

func (a *authAPI) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp model.SignUpResponse
	endpoint := a.baseURL + "/auth/v1/signup"
	if err := a.call(ctx, http.MethodPost, endpoint, "", &model.CredentialsRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, authError(err)
	}

	if resp.AccessToken == "" {
		return nil, nil
	}
	return ToSession(resp.User, resp.AccessToken), nil
}

func (a *authAPI) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	return a.call(ctx, http.MethodPost, a.baseURL+"/auth/v1/logout", accessToken, nil, nil)
}

func (a *authAPI) CurrentIdentity(ctx context.Context, accessToken string) (*entity.Session, error) {
	if accessToken == "" {
		return nil, nil
	}

	if a.jwtService != nil {
		claims, err := a.jwtService.ValidateToken(accessToken)
		if err != nil {
			return nil, nil
		}
		return &entity.Session{
			UserID:      claims.UserID(),
			Email:       claims.Email,
			AccessToken: accessToken,
		}, nil
	}

	var user model.UserModel
	if err := a.call(ctx, http.MethodGet, a.baseURL+"/auth/v1/user", accessToken, nil, &user); err != nil {
		if IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden) {
			return nil, nil
		}
		return nil, err
	}
	return ToSession(&user, accessToken), nil
}

func (a *authAPI) call(ctx context.Context, method, endpoint, accessToken string, body, out interface{}) error {
	req, err := newJSONRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	bearer := accessToken
	if bearer == "" {
		bearer = a.anonKey
	}
	req.Header.Set("apikey", a.anonKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return send(a.httpClient, req, out)
}

// authError folds provider rejections into ErrAuthFailed; transport errors
// pass through.
func authError(err error) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError {
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return err
}
