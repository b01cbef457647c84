package http

import (
	"net/http"

	"sns-app/pkg/logger"
	"sns-app/pkg/middleware"
	"sns-app/services/timeline/internal/usecase"
	"sns-app/services/timeline/internal/view"

	"github.com/gin-gonic/gin"
)

const (
	modeLogin  = "login"
	modeSignup = "signup"
)

type AuthHandler struct {
	authUseCase     usecase.AuthUseCase
	timelineUseCase usecase.TimelineUseCase
	cookieName      string
	logger          *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, timelineUseCase usecase.TimelineUseCase, cookieName string, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase:     authUseCase,
		timelineUseCase: timelineUseCase,
		cookieName:      cookieName,
		logger:          logger,
	}
}

type LoginForm struct {
	Mode     string `form:"mode"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

func formMode(mode string) string {
	if mode == modeSignup {
		return modeSignup
	}
	return modeLogin
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, mode, email, message string) {
	c.HTML(status, "login.html", gin.H{
		"Title": view.AppTitle,
		"Mode":  mode,
		"Email": email,
		"Error": message,
	})
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, formMode(c.Query("mode")), "", "")
}

// Login signs in or signs up depending on the form's mode. Every failure is
// reported with the same generic message.
func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderLogin(c, http.StatusBadRequest, formMode(c.PostForm("mode")), c.PostForm("email"), usecase.MsgAuthFailed)
		return
	}
	mode := formMode(form.Mode)

	ctx := c.Request.Context()
	var err error
	var token string
	if mode == modeSignup {
		session, signUpErr := h.authUseCase.SignUp(ctx, form.Email, form.Password)
		err = signUpErr
		if session != nil {
			token = session.AccessToken
		}
	} else {
		session, signInErr := h.authUseCase.SignIn(ctx, form.Email, form.Password)
		err = signInErr
		if session != nil {
			token = session.AccessToken
		}
	}
	if err != nil {
		h.renderLogin(c, http.StatusUnauthorized, mode, form.Email, usecase.MsgAuthFailed)
		return
	}

	if token != "" {
		c.SetCookie(h.cookieName, token, 0, "/", "", false, true)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout always lands on the login page, whatever the provider answered.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.timelineUseCase.Logout(c.Request.Context(), middleware.AccessToken(c))

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	redirectToLogin(c)
}
