package usecase

import (
	"context"

	"sns-app/services/timeline/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockPostsAPI struct {
	mock.Mock
}

func (m *MockPostsAPI) List(ctx context.Context, userID string) ([]*entity.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostsAPI) Create(ctx context.Context, post entity.NewPost) (*entity.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostsAPI) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostsAPI) Like(ctx context.Context, postID int64, userID string) (*entity.LikeResult, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

func (m *MockPostsAPI) Unlike(ctx context.Context, postID int64, userID string) (*entity.LikeResult, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockAuthAPI) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockAuthAPI) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *MockAuthAPI) CurrentIdentity(ctx context.Context, accessToken string) (*entity.Session, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Upload(ctx context.Context, bucket, key string, file *entity.ImageFile) (string, error) {
	args := m.Called(ctx, bucket, key, file)
	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) PublicURL(bucket, path string) string {
	args := m.Called(bucket, path)
	return args.String(0)
}

// fakePrompter records alerts and answers confirmations with confirm.
type fakePrompter struct {
	confirm  bool
	alerts   []string
	confirms []string
}

func (p *fakePrompter) Alert(message string) {
	p.alerts = append(p.alerts, message)
}

func (p *fakePrompter) Confirm(message string) bool {
	p.confirms = append(p.confirms, message)
	return p.confirm
}
