package view

import (
	"fmt"
	"time"

	"sns-app/services/timeline/internal/entity"
)

const (
	LikedGlyph     = "❤️"
	NotLikedGlyph  = "🤍"
	AnimationClass = "heart-animation"
)

// Card is the render model of one post.
type Card struct {
	ID             int64  `json:"id"`
	Content        string `json:"content"`
	ImageURL       string `json:"imageUrl,omitempty"`
	AvatarInitial  string `json:"avatarInitial"`
	DisplayDate    string `json:"displayDate"`
	LikeCount      int    `json:"likeCount"`
	IsLiked        bool   `json:"isLiked"`
	LikeGlyph      string `json:"likeGlyph"`
	Animating      bool   `json:"animating"`
	AnimationClass string `json:"-"`
	LikePending    bool   `json:"likePending"`
	ShowDelete     bool   `json:"showDelete"`
}

type CardOptions struct {
	Identity DisplayIdentity
	// AllowDelete exposes the delete action; the ownership decision is the
	// caller's.
	AllowDelete bool
	Animating   bool
	LikePending bool
	Now         time.Time
	// FormatDate replaces RelativeTime when set.
	FormatDate func(createdAt time.Time) string
}

func NewCard(post *entity.Post, opts CardOptions) Card {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	displayDate := ""
	if opts.FormatDate != nil {
		displayDate = opts.FormatDate(post.CreatedAt)
	} else {
		displayDate = RelativeTime(post.CreatedAt, now)
	}

	card := Card{
		ID:            post.ID,
		Content:       post.Content,
		AvatarInitial: opts.Identity.Initial,
		DisplayDate:   displayDate,
		LikeCount:     post.LikeCount,
		IsLiked:       post.IsLiked,
		LikeGlyph:     NotLikedGlyph,
		Animating:     opts.Animating,
		LikePending:   opts.LikePending,
		ShowDelete:    opts.AllowDelete,
	}
	if post.HasImage() {
		card.ImageURL = *post.ImageURL
	}
	if post.IsLiked {
		card.LikeGlyph = LikedGlyph
	}
	if opts.Animating {
		card.AnimationClass = AnimationClass
	}
	return card
}

// RelativeTime labels createdAt relative to now. Older than a day falls back
// to the calendar date in now's location.
func RelativeTime(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return ""
	}

	diff := now.Sub(createdAt)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff/time.Hour))
	default:
		return createdAt.In(now.Location()).Format("2006/1/2")
	}
}
