package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sns-app/pkg/logger"
	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/repo/webapi"
)

// MsgAuthFailed is the only feedback a failed sign-in or sign-up gets.
const MsgAuthFailed = "Authentication failed. Please try again."

var ErrAuthFailed = errors.New("authentication failed")

type AuthUseCase interface {
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	// SignUp may return a nil session when the account awaits confirmation.
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)
}

type authUseCase struct {
	authAPI webapi.AuthAPI
	logger  *logger.Logger
}

func NewAuthUseCase(authAPI webapi.AuthAPI, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		authAPI: authAPI,
		logger:  logger,
	}
}

func (uc *authUseCase) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	session, err := uc.authAPI.SignInWithPassword(ctx, strings.TrimSpace(email), password)
	if err != nil {
		uc.logger.Warn("Sign in failed for %s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if session == nil {
		return nil, ErrAuthFailed
	}
	return session, nil
}

func (uc *authUseCase) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	session, err := uc.authAPI.SignUp(ctx, strings.TrimSpace(email), password)
	if err != nil {
		uc.logger.Warn("Sign up failed for %s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return session, nil
}
