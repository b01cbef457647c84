package view

import (
	"strings"
	"unicode"

	"sns-app/services/timeline/internal/entity"
)

// PlaceholderInitial stands in for authors other than the viewer.
const PlaceholderInitial = "U"

// DisplayIdentity is how a post's author is shown to the current viewer.
type DisplayIdentity struct {
	Initial   string
	CanDelete bool
}

// ResolveDisplayIdentity decides the avatar initial and delete permission of
// a post for the viewer: own posts show the viewer's initial and may be
// deleted, other authors show the placeholder, unknown authors show nothing.
func ResolveDisplayIdentity(post *entity.Post, session *entity.Session) DisplayIdentity {
	if post == nil || post.AuthorID == nil {
		return DisplayIdentity{}
	}
	if session != nil && session.UserID != "" && *post.AuthorID == session.UserID {
		return DisplayIdentity{Initial: Initial(session.Email), CanDelete: true}
	}
	return DisplayIdentity{Initial: PlaceholderInitial}
}

// Initial is the upper-cased first letter of email, or the placeholder.
func Initial(email string) string {
	email = strings.TrimSpace(email)
	for _, r := range email {
		return string(unicode.ToUpper(r))
	}
	return PlaceholderInitial
}
