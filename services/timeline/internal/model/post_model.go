package model

// PostModel is the JSON shape of a post on the posts API.
type PostModel struct {
	ID        int64   `json:"id"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	UserID    *string `json:"userId"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	LikeCount int     `json:"likeCount"`
	IsLiked   bool    `json:"isLiked"`
}

type CreatePostRequest struct {
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl"`
	UserID   string  `json:"userId"`
}

type LikeRequest struct {
	UserID string `json:"userId"`
}

type LikeResponse struct {
	LikeCount int  `json:"likeCount"`
	IsLiked   bool `json:"isLiked"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
