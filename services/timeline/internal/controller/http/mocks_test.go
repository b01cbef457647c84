package http

import (
	"context"
	"time"

	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/usecase"
	"sns-app/services/timeline/internal/view"

	"github.com/stretchr/testify/mock"
)

// MockTimelineUseCase is a mock implementation of TimelineUseCase
type MockTimelineUseCase struct {
	mock.Mock
}

func (m *MockTimelineUseCase) Mount(ctx context.Context, accessToken string) (*entity.Session, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockTimelineUseCase) CurrentSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockTimelineUseCase) FetchPosts(ctx context.Context, session *entity.Session) {
	m.Called(ctx, session)
}

func (m *MockTimelineUseCase) SubmitPost(ctx context.Context, session *entity.Session, text string, image *entity.ImageFile, ui usecase.Prompter) error {
	args := m.Called(ctx, session, text, image, ui)
	return args.Error(0)
}

func (m *MockTimelineUseCase) ToggleLike(ctx context.Context, session *entity.Session, postID int64, currentlyLiked bool) (*entity.LikeResult, error) {
	args := m.Called(ctx, session, postID, currentlyLiked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

func (m *MockTimelineUseCase) DeletePost(ctx context.Context, session *entity.Session, postID int64, ui usecase.Prompter) error {
	args := m.Called(ctx, session, postID, ui)
	return args.Error(0)
}

func (m *MockTimelineUseCase) Logout(ctx context.Context, accessToken string) {
	m.Called(ctx, accessToken)
}

func (m *MockTimelineUseCase) SelectImage(session *entity.Session, text string, file *entity.ImageFile, ui usecase.Prompter) bool {
	args := m.Called(session, text, file, ui)
	return args.Bool(0)
}

func (m *MockTimelineUseCase) ClearImage(session *entity.Session, text string) {
	m.Called(session, text)
}

func (m *MockTimelineUseCase) SubmitDraft(ctx context.Context, session *entity.Session, text string, ui usecase.Prompter) error {
	args := m.Called(ctx, session, text, ui)
	return args.Error(0)
}

func (m *MockTimelineUseCase) Page(ctx context.Context, session *entity.Session, now time.Time) *view.Page {
	args := m.Called(ctx, session, now)
	return args.Get(0).(*view.Page)
}

func (m *MockTimelineUseCase) Animating(ctx context.Context, session *entity.Session, postID int64) bool {
	args := m.Called(ctx, session, postID)
	return args.Bool(0)
}

func (m *MockTimelineUseCase) LikePhase(session *entity.Session, postID int64) usecase.MutationPhase {
	args := m.Called(session, postID)
	return args.Get(0).(usecase.MutationPhase)
}

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockAuthUseCase) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}
