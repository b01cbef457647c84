package webapi

import (
	"time"

	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		AuthorID:  m.UserID,
		CreatedAt: parseTime(m.CreatedAt),
		UpdatedAt: parseTime(m.UpdatedAt),
		LikeCount: m.LikeCount,
		IsLiked:   m.IsLiked,
	}
}

func ToCreatePostRequest(e entity.NewPost) *model.CreatePostRequest {
	return &model.CreatePostRequest{
		Content:  e.Content,
		ImageURL: e.ImageURL,
		UserID:   e.UserID,
	}
}

func ToLikeResult(m *model.LikeResponse) *entity.LikeResult {
	if m == nil {
		return nil
	}

	return &entity.LikeResult{
		LikeCount: m.LikeCount,
		IsLiked:   m.IsLiked,
	}
}

func ToSession(user *model.UserModel, accessToken string) *entity.Session {
	if user == nil || user.ID == "" {
		return nil
	}

	return &entity.Session{
		UserID:      user.ID,
		Email:       user.Email,
		AccessToken: accessToken,
	}
}

func parseTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return parsed
	}
	if parsed, err := time.Parse("2006-01-02 15:04:05.999999999-07:00", v); err == nil {
		return parsed
	}
	if parsed, err := time.Parse("2006-01-02T15:04:05.999999999", v); err == nil {
		return parsed
	}
	return time.Time{}
}
