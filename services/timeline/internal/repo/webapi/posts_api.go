package webapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/model"
)

type PostsAPI interface {
	List(ctx context.Context, userID string) ([]*entity.Post, error)
	Create(ctx context.Context, post entity.NewPost) (*entity.Post, error)
	Delete(ctx context.Context, postID int64) error
	Like(ctx context.Context, postID int64, userID string) (*entity.LikeResult, error)
	Unlike(ctx context.Context, postID int64, userID string) (*entity.LikeResult, error)
}

type postsAPI struct {
	baseURL    string
	httpClient *http.Client
}

func NewPostsAPI(baseURL string, timeout time.Duration) PostsAPI {
	return &postsAPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *postsAPI) List(ctx context.Context, userID string) ([]*entity.Post, error) {
	endpoint := a.baseURL + "/api/posts"
	if userID != "" {
		endpoint += "?userId=" + url.QueryEscape(userID)
	}

	var result []model.PostModel
	if err := a.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(result))
	for i := range result {
		posts[i] = ToPostEntity(&result[i])
	}
	return posts, nil
}

func (a *postsAPI) Create(ctx context.Context, post entity.NewPost) (*entity.Post, error) {
	var created model.PostModel
	if err := a.do(ctx, http.MethodPost, a.baseURL+"/api/posts", ToCreatePostRequest(post), &created); err != nil {
		return nil, err
	}
	return ToPostEntity(&created), nil
}

func (a *postsAPI) Delete(ctx context.Context, postID int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("%s/api/posts/%d", a.baseURL, postID), nil, nil)
}

func (a *postsAPI) Like(ctx context.Context, postID int64, userID string) (*entity.LikeResult, error) {
	return a.like(ctx, http.MethodPost, postID, userID)
}

func (a *postsAPI) Unlike(ctx context.Context, postID int64, userID string) (*entity.LikeResult, error) {
	return a.like(ctx, http.MethodDelete, postID, userID)
}

func (a *postsAPI) like(ctx context.Context, method string, postID int64, userID string) (*entity.LikeResult, error) {
	var result model.LikeResponse
	endpoint := fmt.Sprintf("%s/api/posts/%d/like", a.baseURL, postID)
	if err := a.do(ctx, method, endpoint, &model.LikeRequest{UserID: userID}, &result); err != nil {
		return nil, err
	}
	return ToLikeResult(&result), nil
}

func (a *postsAPI) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	req, err := newJSONRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	return send(a.httpClient, req, out)
}
