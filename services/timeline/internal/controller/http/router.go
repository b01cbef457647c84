package http

import (
	"html/template"

	"sns-app/pkg/middleware"
	"sns-app/services/timeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Timeline *TimelineHandler
	Auth     *AuthHandler
}

// RegisterRoutes mounts the HTML pages and the JSON timeline on r.
// mutation middleware, when given, runs after the viewer is resolved.
func RegisterRoutes(r *gin.Engine, tmpl *template.Template, uc usecase.TimelineUseCase, h Handlers, cookieName string, mutation ...gin.HandlerFunc) {
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.TokenMiddleware(cookieName))

	r.GET("/", h.Timeline.Index)
	r.GET("/login", h.Auth.LoginPage)
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)

	pages := r.Group("")
	pages.Use(RequireSession(uc, redirectToLogin))
	pages.Use(mutation...)
	{
		pages.POST("/composer", h.Timeline.Composer)
		pages.POST("/posts/:id/like", h.Timeline.ToggleLike)
		pages.GET("/posts/:id/delete", h.Timeline.ConfirmDelete)
		pages.POST("/posts/:id/delete", h.Timeline.DeletePost)
	}

	api := r.Group("/api")
	api.Use(middleware.RequireToken(unauthorizedJSON))
	api.Use(RequireSession(uc, unauthorizedJSON))
	{
		api.GET("/timeline", h.Timeline.GetTimeline)

		likeChain := append(append([]gin.HandlerFunc{}, mutation...), h.Timeline.ToggleLikeJSON)
		api.POST("/timeline/posts/:id/like", likeChain...)
	}
}
