package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"sns-app/pkg/logger"
	"sns-app/pkg/middleware"
	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/usecase"
	"sns-app/services/timeline/internal/view"

	"github.com/gin-gonic/gin"
)

type TimelineHandler struct {
	timelineUseCase usecase.TimelineUseCase
	logger          *logger.Logger
	now             func() time.Time
}

func NewTimelineHandler(timelineUseCase usecase.TimelineUseCase, logger *logger.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineUseCase: timelineUseCase,
		logger:          logger,
		now:             time.Now,
	}
}

// Index mounts the timeline for the viewer, or sends them to log in.
func (h *TimelineHandler) Index(c *gin.Context) {
	session, err := h.timelineUseCase.Mount(c.Request.Context(), middleware.AccessToken(c))
	if err != nil {
		redirectToLogin(c)
		return
	}

	page := h.timelineUseCase.Page(c.Request.Context(), session, h.now())
	page.Alerts = takeFlash(c)
	c.HTML(http.StatusOK, "timeline.html", gin.H{"Page": page})
}

// Composer handles the draft form: attaching or clearing an image and
// submitting the post.
func (h *TimelineHandler) Composer(c *gin.Context) {
	session, err := sessionFrom(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	ctx := c.Request.Context()
	text := c.PostForm("content")
	ui := newFlashPrompter(c, false)

	image, err := formImage(c)
	if err != nil {
		h.logger.Warn("Failed to read image upload: %v", err)
	}

	switch c.PostForm("action") {
	case "attach":
		if image != nil {
			h.timelineUseCase.SelectImage(session, text, image, ui)
		}
	case "clear":
		h.timelineUseCase.ClearImage(session, text)
	default:
		if image != nil && !h.timelineUseCase.SelectImage(session, text, image, ui) {
			break
		}
		if err := h.timelineUseCase.SubmitDraft(ctx, session, text, ui); err != nil {
			h.logger.Warn("Post submission by %s did not complete: %v", session.UserID, err)
		}
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *TimelineHandler) ToggleLike(c *gin.Context) {
	session, err := sessionFrom(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}
	liked, _ := strconv.ParseBool(c.PostForm("liked"))

	if _, err := h.timelineUseCase.ToggleLike(c.Request.Context(), session, postID, liked); err != nil {
		h.logger.Warn("Like toggle on post %d did not complete: %v", postID, err)
	}
	c.Redirect(http.StatusSeeOther, "/#post-"+strconv.FormatInt(postID, 10))
}

// ConfirmDelete renders the confirmation step for deleting a post.
func (h *TimelineHandler) ConfirmDelete(c *gin.Context) {
	session, err := sessionFrom(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	c.HTML(http.StatusOK, "confirm_delete.html", gin.H{
		"Header":  view.NewHeader(session),
		"PostID":  postID,
		"Message": usecase.MsgConfirmDelete,
	})
}

func (h *TimelineHandler) DeletePost(c *gin.Context) {
	session, err := sessionFrom(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ui := newFlashPrompter(c, c.PostForm("confirm") == "yes")
	if err := h.timelineUseCase.DeletePost(c.Request.Context(), session, postID, ui); err != nil {
		h.logger.Warn("Delete of post %d did not complete: %v", postID, err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// GetTimeline godoc
// @Summary      Current timeline
// @Description  Render model of the viewer's timeline: header, composer draft and post cards
// @Tags         timeline
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  view.Page
// @Failure      401  {object}  map[string]string
// @Router       /timeline [get]
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	session, err := sessionFrom(c)
	if err != nil {
		unauthorizedJSON(c)
		return
	}

	ctx := c.Request.Context()
	h.timelineUseCase.FetchPosts(ctx, session)
	c.JSON(http.StatusOK, h.timelineUseCase.Page(ctx, session, h.now()))
}

type LikeRequest struct {
	IsLiked bool `json:"isLiked"`
}

type LikeResponse struct {
	LikeCount int  `json:"likeCount"`
	IsLiked   bool `json:"isLiked"`
	Animating bool `json:"animating"`
}

// ToggleLikeJSON godoc
// @Summary      Toggle like
// @Description  Like the post when isLiked is false, unlike it when true. Returns the server's like state.
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int          true  "Post ID"
// @Param        request  body  LikeRequest  true  "Current like state"
// @Success      200  {object}  LikeResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /timeline/posts/{id}/like [post]
func (h *TimelineHandler) ToggleLikeJSON(c *gin.Context) {
	session, err := sessionFrom(c)
	if err != nil {
		unauthorizedJSON(c)
		return
	}

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	result, err := h.timelineUseCase.ToggleLike(ctx, session, postID, req.IsLiked)
	if err != nil {
		if errors.Is(err, usecase.ErrLikeInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "Like already in progress"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update like"})
		return
	}

	c.JSON(http.StatusOK, LikeResponse{
		LikeCount: result.LikeCount,
		IsLiked:   result.IsLiked,
		Animating: h.timelineUseCase.Animating(ctx, session, postID),
	})
}

func formImage(c *gin.Context) (*entity.ImageFile, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if header.Filename == "" && header.Size == 0 {
		return nil, nil
	}
	return readImage(header)
}

// readImage loads an upload into memory. Oversized files are read only up to
// the limit; validation rejects them by their declared size.
func readImage(header *multipart.FileHeader) (*entity.ImageFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, usecase.MaxImageSize+1))
	if err != nil {
		return nil, err
	}

	return &entity.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
