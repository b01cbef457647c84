package entity

import "time"

// Post is a timeline entry as served by the posts API. LikeCount and IsLiked
// are relative to the viewer the collection was fetched for.
type Post struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	AuthorID  *string   `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	LikeCount int       `json:"likeCount"`
	IsLiked   bool      `json:"isLiked"`
}

func (p *Post) HasImage() bool {
	return p.ImageURL != nil && *p.ImageURL != ""
}

type NewPost struct {
	Content  string
	ImageURL *string
	UserID   string
}

// LikeResult carries the authoritative like state returned by like/unlike.
type LikeResult struct {
	LikeCount int  `json:"likeCount"`
	IsLiked   bool `json:"isLiked"`
}
