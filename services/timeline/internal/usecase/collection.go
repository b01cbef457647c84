package usecase

import "sns-app/services/timeline/internal/entity"

// PostCollection is the viewer's copy of the timeline. It is replaced
// wholesale by a fetch and patched by id from like responses; nothing else
// mutates it. Callers serialize access.
type PostCollection struct {
	posts []entity.Post
	index map[int64]int
}

func NewPostCollection() *PostCollection {
	return &PostCollection{index: make(map[int64]int)}
}

func (c *PostCollection) ReplaceAll(posts []*entity.Post) {
	c.posts = make([]entity.Post, 0, len(posts))
	c.index = make(map[int64]int, len(posts))
	for _, post := range posts {
		if post == nil {
			continue
		}
		c.index[post.ID] = len(c.posts)
		c.posts = append(c.posts, *post)
	}
}

// PatchLike overwrites the like fields of the post with the given id. It
// reports false when the post is not in the collection.
func (c *PostCollection) PatchLike(id int64, result entity.LikeResult) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.posts[i].LikeCount = result.LikeCount
	c.posts[i].IsLiked = result.IsLiked
	return true
}

func (c *PostCollection) Get(id int64) (entity.Post, bool) {
	i, ok := c.index[id]
	if !ok {
		return entity.Post{}, false
	}
	return c.posts[i], true
}

// Snapshot returns a copy in server order.
func (c *PostCollection) Snapshot() []entity.Post {
	out := make([]entity.Post, len(c.posts))
	copy(out, c.posts)
	return out
}

func (c *PostCollection) Len() int {
	return len(c.posts)
}
