package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"sns-app/pkg/logger"
	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/repo/storage"
	"sns-app/services/timeline/internal/repo/webapi"
	"sns-app/services/timeline/internal/view"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errors.New("no authenticated session")
	ErrLikeInFlight    = errors.New("like already in flight for this post")
)

// StateIdleTTL is how long a viewer's page state survives without a request.
const (
	StateIdleTTL       = 30 * time.Minute
	stateSweepInterval = time.Minute
)

// MutationPhase tracks a like request for one post, apart from its animation.
type MutationPhase int

const (
	MutationIdle MutationPhase = iota
	MutationPending
	MutationSettled
)

type TimelineUseCase interface {
	// Mount resolves the viewer and loads the timeline. It returns
	// ErrUnauthenticated, without fetching, when the token has no identity.
	Mount(ctx context.Context, accessToken string) (*entity.Session, error)
	CurrentSession(ctx context.Context, accessToken string) (*entity.Session, error)
	FetchPosts(ctx context.Context, session *entity.Session)
	SubmitPost(ctx context.Context, session *entity.Session, text string, image *entity.ImageFile, ui Prompter) error
	ToggleLike(ctx context.Context, session *entity.Session, postID int64, currentlyLiked bool) (*entity.LikeResult, error)
	DeletePost(ctx context.Context, session *entity.Session, postID int64, ui Prompter) error
	// Logout revokes accessToken with the auth provider even when it no
	// longer resolves to a user. Page state is dropped when the user is known.
	Logout(ctx context.Context, accessToken string)

	SelectImage(session *entity.Session, text string, file *entity.ImageFile, ui Prompter) bool
	ClearImage(session *entity.Session, text string)
	SubmitDraft(ctx context.Context, session *entity.Session, text string, ui Prompter) error

	Page(ctx context.Context, session *entity.Session, now time.Time) *view.Page
	Animating(ctx context.Context, session *entity.Session, postID int64) bool
	LikePhase(session *entity.Session, postID int64) MutationPhase
}

// pageState is one viewer's timeline. mu guards the fields and is never
// held across a network call.
type pageState struct {
	mu         sync.Mutex
	session    entity.Session
	loading    bool
	posts      *PostCollection
	likes      map[int64]MutationPhase
	submitting bool
	composer   *Composer

	// lastSeen is guarded by timelineUseCase.mu.
	lastSeen time.Time
}

func newPageState(session entity.Session) *pageState {
	return &pageState{
		session:  session,
		loading:  true,
		posts:    NewPostCollection(),
		likes:    make(map[int64]MutationPhase),
		composer: NewComposer(),
	}
}

type timelineUseCase struct {
	postsAPI webapi.PostsAPI
	authAPI  webapi.AuthAPI
	images   storage.ImageStorage
	animator Animator
	bucket   string
	logger   *logger.Logger

	now     func() time.Time
	idleTTL time.Duration

	mu        sync.Mutex
	states    map[string]*pageState
	lastSweep time.Time
}

func NewTimelineUseCase(
	postsAPI webapi.PostsAPI,
	authAPI webapi.AuthAPI,
	images storage.ImageStorage,
	animator Animator,
	bucket string,
	logger *logger.Logger,
) TimelineUseCase {
	return &timelineUseCase{
		postsAPI: postsAPI,
		authAPI:  authAPI,
		images:   images,
		animator: animator,
		bucket:   bucket,
		logger:   logger,
		now:      time.Now,
		idleTTL:  StateIdleTTL,
		states:   make(map[string]*pageState),
	}
}

func (uc *timelineUseCase) state(session *entity.Session) *pageState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	if now.Sub(uc.lastSweep) >= stateSweepInterval {
		uc.sweepLocked(now)
	}

	st, ok := uc.states[session.UserID]
	if !ok {
		st = newPageState(*session)
		uc.states[session.UserID] = st
	}
	st.lastSeen = now
	return st
}

// sweepLocked drops states idle longer than idleTTL. uc.mu must be held.
func (uc *timelineUseCase) sweepLocked(now time.Time) {
	uc.lastSweep = now
	for userID, st := range uc.states {
		if now.Sub(st.lastSeen) > uc.idleTTL {
			delete(uc.states, userID)
			uc.logger.Info("Evicted idle page state for %s", userID)
		}
	}
}

func (uc *timelineUseCase) CurrentSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	if accessToken == "" {
		return nil, ErrUnauthenticated
	}

	session, err := uc.authAPI.CurrentIdentity(ctx, accessToken)
	if err != nil {
		uc.logger.Warn("Failed to resolve session: %v", err)
		return nil, ErrUnauthenticated
	}
	if session == nil || session.UserID == "" {
		return nil, ErrUnauthenticated
	}

	session.AccessToken = accessToken
	return session, nil
}

func (uc *timelineUseCase) Mount(ctx context.Context, accessToken string) (*entity.Session, error) {
	session, err := uc.CurrentSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	st := uc.state(session)
	st.mu.Lock()
	st.session = *session
	st.loading = false
	st.mu.Unlock()

	uc.FetchPosts(ctx, session)
	return session, nil
}

func (uc *timelineUseCase) FetchPosts(ctx context.Context, session *entity.Session) {
	userID := ""
	if session != nil {
		userID = session.UserID
	}

	posts, err := uc.postsAPI.List(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to fetch posts for %s: %v", userID, err)
		return
	}
	if session == nil {
		return
	}

	st := uc.state(session)
	st.mu.Lock()
	st.posts.ReplaceAll(posts)
	st.mu.Unlock()
}

func (uc *timelineUseCase) SubmitPost(ctx context.Context, session *entity.Session, text string, image *entity.ImageFile, ui Prompter) error {
	if session == nil || session.UserID == "" || strings.TrimSpace(text) == "" {
		return nil
	}

	st := uc.state(session)
	st.mu.Lock()
	if st.submitting {
		st.mu.Unlock()
		return nil
	}
	st.submitting = true
	st.mu.Unlock()

	defer func() {
		st.mu.Lock()
		st.submitting = false
		st.mu.Unlock()
	}()

	var imageURL *string
	if image != nil {
		url, err := uc.uploadImage(ctx, session.UserID, image)
		if err != nil {
			uc.logger.Error("Failed to upload image for %s: %v", session.UserID, err)
			ui.Alert(MsgUploadFailed)
			return fmt.Errorf("upload image: %w", err)
		}
		imageURL = &url
	}

	_, err := uc.postsAPI.Create(ctx, entity.NewPost{
		Content:  text,
		ImageURL: imageURL,
		UserID:   session.UserID,
	})
	if err != nil {
		uc.logger.Error("Failed to create post for %s: %v", session.UserID, err)
		return fmt.Errorf("create post: %w", err)
	}

	st.composer.Reset()
	uc.FetchPosts(ctx, session)
	return nil
}

func (uc *timelineUseCase) uploadImage(ctx context.Context, userID string, image *entity.ImageFile) (string, error) {
	key := fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), image.Extension())

	path, err := uc.images.Upload(ctx, uc.bucket, key, image)
	if err != nil {
		return "", err
	}
	return uc.images.PublicURL(uc.bucket, path), nil
}

func (uc *timelineUseCase) ToggleLike(ctx context.Context, session *entity.Session, postID int64, currentlyLiked bool) (*entity.LikeResult, error) {
	if session == nil || session.UserID == "" {
		return nil, ErrUnauthenticated
	}

	st := uc.state(session)
	st.mu.Lock()
	if st.likes[postID] == MutationPending {
		st.mu.Unlock()
		return nil, ErrLikeInFlight
	}
	st.likes[postID] = MutationPending
	st.mu.Unlock()

	uc.animator.Trigger(ctx, AnimationKey(session.UserID, postID))

	var (
		result *entity.LikeResult
		err    error
	)
	if currentlyLiked {
		result, err = uc.postsAPI.Unlike(ctx, postID, session.UserID)
	} else {
		result, err = uc.postsAPI.Like(ctx, postID, session.UserID)
	}
	if err == nil && result == nil {
		err = errors.New("empty like response")
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.likes[postID] = MutationSettled

	if err != nil {
		uc.logger.Error("Failed to toggle like on post %d for %s: %v", postID, session.UserID, err)
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	st.posts.PatchLike(postID, *result)
	return result, nil
}

func (uc *timelineUseCase) DeletePost(ctx context.Context, session *entity.Session, postID int64, ui Prompter) error {
	if session == nil || session.UserID == "" {
		return ErrUnauthenticated
	}
	if !ui.Confirm(MsgConfirmDelete) {
		return nil
	}

	if err := uc.postsAPI.Delete(ctx, postID); err != nil {
		uc.logger.Error("Failed to delete post %d: %v", postID, err)
		return fmt.Errorf("delete post: %w", err)
	}

	uc.FetchPosts(ctx, session)
	return nil
}

func (uc *timelineUseCase) Logout(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}

	// Resolve first; the token stops resolving once it is revoked.
	session, _ := uc.CurrentSession(ctx, accessToken)

	if err := uc.authAPI.SignOut(ctx, accessToken); err != nil {
		uc.logger.Warn("Sign out failed: %v", err)
	}

	if session == nil {
		return
	}
	uc.mu.Lock()
	delete(uc.states, session.UserID)
	uc.mu.Unlock()
}

func (uc *timelineUseCase) SelectImage(session *entity.Session, text string, file *entity.ImageFile, ui Prompter) bool {
	composer := uc.state(session).composer
	composer.SetText(text)
	return composer.SelectImage(file, ui)
}

func (uc *timelineUseCase) ClearImage(session *entity.Session, text string) {
	composer := uc.state(session).composer
	composer.SetText(text)
	composer.Clear()
}

func (uc *timelineUseCase) SubmitDraft(ctx context.Context, session *entity.Session, text string, ui Prompter) error {
	composer := uc.state(session).composer
	composer.SetText(text)
	return composer.Submit(ctx, func(ctx context.Context, text string, image *entity.ImageFile) error {
		return uc.SubmitPost(ctx, session, text, image, ui)
	})
}

func (uc *timelineUseCase) Page(ctx context.Context, session *entity.Session, now time.Time) *view.Page {
	st := uc.state(session)

	st.mu.Lock()
	current := st.session
	loading := st.loading
	submitting := st.submitting
	posts := st.posts.Snapshot()
	phases := make(map[int64]MutationPhase, len(st.likes))
	for id, phase := range st.likes {
		phases[id] = phase
	}
	st.mu.Unlock()

	header := view.NewHeader(&current)
	page := &view.Page{
		Header:   header,
		Composer: st.composer.View(header.UserInitial, submitting),
		Cards:    make([]view.Card, 0, len(posts)),
		Loading:  loading,
	}

	for i := range posts {
		post := &posts[i]
		identity := view.ResolveDisplayIdentity(post, &current)
		page.Cards = append(page.Cards, view.NewCard(post, view.CardOptions{
			Identity:    identity,
			AllowDelete: identity.CanDelete,
			Animating:   uc.animator.Active(ctx, AnimationKey(current.UserID, post.ID)),
			LikePending: phases[post.ID] == MutationPending,
			Now:         now,
		}))
	}
	return page
}

func (uc *timelineUseCase) Animating(ctx context.Context, session *entity.Session, postID int64) bool {
	return uc.animator.Active(ctx, AnimationKey(session.UserID, postID))
}

func (uc *timelineUseCase) LikePhase(session *entity.Session, postID int64) MutationPhase {
	st := uc.state(session)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.likes[postID]
}
