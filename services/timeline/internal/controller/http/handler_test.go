package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"sns-app/pkg/logger"
	"sns-app/services/timeline/internal/entity"
	"sns-app/services/timeline/internal/usecase"
	"sns-app/services/timeline/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookie = "sb-access-token"

var testSession = &entity.Session{UserID: "u1", Email: "yamada@example.com", AccessToken: "token"}

func setupRouter(tuc *MockTimelineUseCase, auc *MockAuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	tmpl, err := LoadTemplates()
	if err != nil {
		panic(err)
	}

	log := logger.NewNop()
	RegisterRoutes(r, tmpl, tuc, Handlers{
		Timeline: NewTimelineHandler(tuc, log),
		Auth:     NewAuthHandler(auc, tuc, testCookie, log),
	}, testCookie)
	return r
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "token"})
	return req
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, fields map[string]string, fileName, contentType string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/composer", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func samplePage() *view.Page {
	return &view.Page{
		Header:   view.NewHeader(testSession),
		Composer: view.Composer{UserInitial: "Y", SubmitDisabled: true},
		Cards: []view.Card{
			{ID: 1, Content: "mine", AvatarInitial: "Y", DisplayDate: "just now", LikeCount: 4, IsLiked: true,
				LikeGlyph: view.LikedGlyph, Animating: true, AnimationClass: view.AnimationClass, ShowDelete: true},
			{ID: 2, Content: "theirs", AvatarInitial: "U", DisplayDate: "3 hours ago", LikeCount: 1,
				LikeGlyph: view.NotLikedGlyph},
		},
	}
}

func TestIndex_UnauthenticatedRedirectsWithoutFetch(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("Mount", mock.Anything, "").Return(nil, usecase.ErrUnauthenticated)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	tuc.AssertNotCalled(t, "FetchPosts", mock.Anything, mock.Anything)
	tuc.AssertNotCalled(t, "Page", mock.Anything, mock.Anything, mock.Anything)
}

func TestIndex_RendersTimeline(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("Mount", mock.Anything, "token").Return(testSession, nil)
	tuc.On("Page", mock.Anything, testSession, mock.Anything).Return(samplePage())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "mine")
	assert.Contains(t, body, "theirs")
	assert.Contains(t, body, "3 hours ago")
	assert.Contains(t, body, view.AnimationClass)
	assert.Contains(t, body, `/posts/1/delete`)
	assert.NotContains(t, body, `/posts/2/delete`)
	assert.Contains(t, body, view.LikedGlyph+" 4")
	assert.Contains(t, body, view.NotLikedGlyph+" 1")
}

func TestIndex_ShowsFlashOnce(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("Mount", mock.Anything, "token").Return(testSession, nil)
	tuc.On("Page", mock.Anything, testSession, mock.Anything).Return(samplePage())

	req := withSession(httptest.NewRequest(http.MethodGet, "/", nil))
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: url.QueryEscape(usecase.MsgUploadFailed)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), usecase.MsgUploadFailed)
	assert.Contains(t, w.Header().Get("Set-Cookie"), flashCookie+"=;")
}

func TestComposer_Submit(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("SubmitDraft", mock.Anything, testSession, "hello", mock.Anything).Return(nil)

	req := withSession(multipartRequest(t, map[string]string{"action": "submit", "content": "hello"}, "", "", nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	tuc.AssertExpectations(t)
}

func TestComposer_AttachImage(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("SelectImage", testSession, "draft", mock.MatchedBy(func(f *entity.ImageFile) bool {
		return f.Name == "cat.png" && f.ContentType == "image/png" && f.Size == 3 && string(f.Data) == "png"
	}), mock.Anything).Return(true)

	req := withSession(multipartRequest(t, map[string]string{"action": "attach", "content": "draft"}, "cat.png", "image/png", []byte("png")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	tuc.AssertExpectations(t)
	tuc.AssertNotCalled(t, "SubmitDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComposer_Clear(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("ClearImage", testSession, "draft").Return()

	req := withSession(multipartRequest(t, map[string]string{"action": "clear", "content": "draft"}, "", "", nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	tuc.AssertExpectations(t)
}

func TestComposer_SubmitWithRejectedImageDoesNotPost(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("SelectImage", testSession, "hello", mock.Anything, mock.Anything).Return(false)

	req := withSession(multipartRequest(t, map[string]string{"action": "submit", "content": "hello"}, "doc.pdf", "application/pdf", []byte("%PDF")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	tuc.AssertNotCalled(t, "SubmitDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComposer_NoSessionRedirects(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "").Return(nil, usecase.ErrUnauthenticated)

	req := multipartRequest(t, map[string]string{"action": "submit", "content": "hello"}, "", "", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	tuc.AssertNotCalled(t, "SubmitDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLike_Form(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("ToggleLike", mock.Anything, testSession, int64(1), false).
		Return(&entity.LikeResult{LikeCount: 4, IsLiked: true}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(formRequest(http.MethodPost, "/posts/1/like", url.Values{"liked": {"false"}})))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/#post-1", w.Header().Get("Location"))
	tuc.AssertExpectations(t)
}

func TestToggleLike_InvalidID(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(formRequest(http.MethodPost, "/posts/abc/like", url.Values{"liked": {"true"}})))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	tuc.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmDelete_Page(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/posts/7/delete", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), usecase.MsgConfirmDelete)
	assert.Contains(t, w.Body.String(), `action="/posts/7/delete"`)
	tuc.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePost_Confirmation(t *testing.T) {
	cases := []struct {
		name    string
		form    url.Values
		confirm bool
	}{
		{"confirmed", url.Values{"confirm": {"yes"}}, true},
		{"not confirmed", url.Values{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tuc := new(MockTimelineUseCase)
			router := setupRouter(tuc, new(MockAuthUseCase))
			tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
			tuc.On("DeletePost", mock.Anything, testSession, int64(7), mock.MatchedBy(func(p usecase.Prompter) bool {
				return p.Confirm(usecase.MsgConfirmDelete) == tc.confirm
			})).Return(nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, withSession(formRequest(http.MethodPost, "/posts/7/delete", tc.form)))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))
			tuc.AssertExpectations(t)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	auc := new(MockAuthUseCase)
	router := setupRouter(new(MockTimelineUseCase), auc)
	auc.On("SignIn", mock.Anything, "a@example.com", "secret1").
		Return(&entity.Session{UserID: "u1", Email: "a@example.com", AccessToken: "fresh"}, nil)

	form := url.Values{"mode": {"login"}, "email": {"a@example.com"}, "password": {"secret1"}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, formRequest(http.MethodPost, "/login", form))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), testCookie+"=fresh")
}

func TestLogin_FailureShowsGenericMessage(t *testing.T) {
	auc := new(MockAuthUseCase)
	router := setupRouter(new(MockTimelineUseCase), auc)
	auc.On("SignIn", mock.Anything, "a@example.com", "wrongpw").
		Return(nil, errors.New("authentication failed: invalid_grant: Invalid login credentials"))

	form := url.Values{"mode": {"login"}, "email": {"a@example.com"}, "password": {"wrongpw"}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, formRequest(http.MethodPost, "/login", form))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication failed. Please try again.")
	assert.NotContains(t, w.Body.String(), "invalid_grant")
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestLogin_InvalidFormSkipsProvider(t *testing.T) {
	auc := new(MockAuthUseCase)
	router := setupRouter(new(MockTimelineUseCase), auc)

	form := url.Values{"mode": {"signup"}, "email": {"a@example.com"}, "password": {"123"}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, formRequest(http.MethodPost, "/login", form))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), usecase.MsgAuthFailed)
	auc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUp_AwaitingConfirmation(t *testing.T) {
	auc := new(MockAuthUseCase)
	router := setupRouter(new(MockTimelineUseCase), auc)
	auc.On("SignUp", mock.Anything, "new@example.com", "secret1").Return(nil, nil)

	form := url.Values{"mode": {"signup"}, "email": {"new@example.com"}, "password": {"secret1"}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, formRequest(http.MethodPost, "/login", form))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestLoginPage_SignupTab(t *testing.T) {
	router := setupRouter(new(MockTimelineUseCase), new(MockAuthUseCase))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login?mode=signup", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="mode" value="signup"`)
}

func TestLogout_SignsOut(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("Logout", mock.Anything, "token").Return()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodPost, "/logout", nil)))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), testCookie+"=;")
	tuc.AssertExpectations(t)
	tuc.AssertNotCalled(t, "CurrentSession", mock.Anything, mock.Anything)
}

func TestLogout_WithoutCookie(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("Logout", mock.Anything, "").Return()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), testCookie+"=;")
}

func TestAPI_TimelineRequiresToken(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/timeline", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	tuc.AssertNotCalled(t, "CurrentSession", mock.Anything, mock.Anything)
}

func TestAPI_Timeline(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("FetchPosts", mock.Anything, testSession).Return()
	tuc.On("Page", mock.Anything, testSession, mock.Anything).Return(samplePage())

	req := httptest.NewRequest(http.MethodGet, "/api/timeline", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var page view.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Cards, 2)
	assert.True(t, page.Cards[0].ShowDelete)
	assert.False(t, page.Cards[1].ShowDelete)
}

func TestAPI_ToggleLike(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("ToggleLike", mock.Anything, testSession, int64(1), false).
		Return(&entity.LikeResult{LikeCount: 4, IsLiked: true}, nil)
	tuc.On("Animating", mock.Anything, testSession, int64(1)).Return(true)

	req := httptest.NewRequest(http.MethodPost, "/api/timeline/posts/1/like", strings.NewReader(`{"isLiked":false}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp LikeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, LikeResponse{LikeCount: 4, IsLiked: true, Animating: true}, resp)
}

func TestAPI_ToggleLikeInFlight(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("ToggleLike", mock.Anything, testSession, int64(1), true).Return(nil, usecase.ErrLikeInFlight)

	req := httptest.NewRequest(http.MethodPost, "/api/timeline/posts/1/like", strings.NewReader(`{"isLiked":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPI_ToggleLikeUpstreamFailure(t *testing.T) {
	tuc := new(MockTimelineUseCase)
	router := setupRouter(tuc, new(MockAuthUseCase))
	tuc.On("CurrentSession", mock.Anything, "token").Return(testSession, nil)
	tuc.On("ToggleLike", mock.Anything, testSession, int64(1), false).Return(nil, errors.New("toggle like: 500"))

	req := httptest.NewRequest(http.MethodPost, "/api/timeline/posts/1/like", strings.NewReader(`{"isLiked":false}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
