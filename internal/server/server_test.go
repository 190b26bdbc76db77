package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/forumapi/internal/config"
	"anoa.com/forumapi/pkg/ratelimiter"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testClient struct {
	t       *testing.T
	handler http.Handler
}

func newTestClient(t *testing.T, ready func(ctx context.Context) error) *testClient {
	return newTestClientWith(t, newMemoryStore().repositories(), ready)
}

func newTestClientWith(t *testing.T, repos Repositories, ready func(ctx context.Context) error) *testClient {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := NewServer(ctx, Options{
		Config: &config.Config{
			Port:            "5000",
			AccessTokenKey:  "access-secret",
			RefreshTokenKey: "refresh-secret",
			AccessTokenAge:  time.Hour,
		},
		Repos:    repos,
		Cooldown: ratelimiter.NewCooldown(nil),
		Ready:    ready,
	})
	return &testClient{t: t, handler: srv.Handler()}
}

func (c *testClient) do(method, path, token string, body any) (int, envelope) {
	c.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w.Code, env
}

func (c *testClient) login(username string) string {
	c.t.Helper()
	code, _ := c.do(http.MethodPost, "/users", "", map[string]any{
		"username": username,
		"password": "secret",
		"fullname": "Dicoding Indonesia",
	})
	require.Equal(c.t, http.StatusCreated, code)

	code, env := c.do(http.MethodPost, "/authentications", "", map[string]any{
		"username": username,
		"password": "secret",
	})
	require.Equal(c.t, http.StatusCreated, code)

	var tokens struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &tokens))
	require.NotEmpty(c.t, tokens.AccessToken)
	return tokens.AccessToken
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

type threadView struct {
	Thread struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Username string `json:"username"`
		Comments []struct {
			ID        string `json:"id"`
			Username  string `json:"username"`
			Content   string `json:"content"`
			LikeCount int    `json:"likeCount"`
			Replies   []struct {
				ID       string `json:"id"`
				Username string `json:"username"`
				Content  string `json:"content"`
			} `json:"replies"`
		} `json:"comments"`
	} `json:"thread"`
}

func TestThreadLifecycle(t *testing.T) {
	runThreadLifecycle(t, newTestClient(t, nil))
}

func runThreadLifecycle(t *testing.T, c *testClient) {
	dicoding := c.login("dicoding")
	johndoe := c.login("johndoe")

	code, env := c.do(http.MethodPost, "/threads", dicoding, map[string]any{"title": "sebuah thread", "body": "sebuah body thread"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", env.Status)
	added := decode[struct {
		AddedThread struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Owner string `json:"owner"`
		} `json:"addedThread"`
	}](t, env.Data)
	threadID := added.AddedThread.ID
	assert.Equal(t, "sebuah thread", added.AddedThread.Title)

	code, env = c.do(http.MethodGet, "/threads/"+threadID, "", nil)
	require.Equal(t, http.StatusOK, code)
	view := decode[threadView](t, env.Data)
	assert.Equal(t, "dicoding", view.Thread.Username)
	assert.NotNil(t, view.Thread.Comments)
	assert.Empty(t, view.Thread.Comments)

	code, env = c.do(http.MethodPost, "/threads/"+threadID+"/comments", johndoe, map[string]any{"content": "sebuah comment"})
	require.Equal(t, http.StatusCreated, code)
	commentID := decode[struct {
		AddedComment struct {
			ID string `json:"id"`
		} `json:"addedComment"`
	}](t, env.Data).AddedComment.ID

	code, env = c.do(http.MethodPost, "/threads/"+threadID+"/comments/"+commentID+"/replies", dicoding, map[string]any{"content": "sebuah balasan"})
	require.Equal(t, http.StatusCreated, code)
	replyID := decode[struct {
		AddedReply struct {
			ID string `json:"id"`
		} `json:"addedReply"`
	}](t, env.Data).AddedReply.ID

	code, _ = c.do(http.MethodPut, "/threads/"+threadID+"/comments/"+commentID+"/likes", dicoding, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodGet, "/threads/"+threadID, "", nil)
	require.Equal(t, http.StatusOK, code)
	view = decode[threadView](t, env.Data)
	require.Len(t, view.Thread.Comments, 1)
	assert.Equal(t, "johndoe", view.Thread.Comments[0].Username)
	assert.Equal(t, 1, view.Thread.Comments[0].LikeCount)
	require.Len(t, view.Thread.Comments[0].Replies, 1)
	assert.Equal(t, "sebuah balasan", view.Thread.Comments[0].Replies[0].Content)

	// liking twice toggles back
	code, _ = c.do(http.MethodPut, "/threads/"+threadID+"/comments/"+commentID+"/likes", dicoding, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodDelete, "/threads/"+threadID+"/comments/"+commentID+"/replies/"+replyID, johndoe, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "fail", env.Status)

	code, _ = c.do(http.MethodDelete, "/threads/"+threadID+"/comments/"+commentID+"/replies/"+replyID, dicoding, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodDelete, "/threads/"+threadID+"/comments/"+commentID, dicoding, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "fail", env.Status)

	code, env = c.do(http.MethodDelete, "/threads/"+threadID+"/comments/"+commentID, johndoe, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)

	code, env = c.do(http.MethodGet, "/threads/"+threadID, "", nil)
	require.Equal(t, http.StatusOK, code)
	view = decode[threadView](t, env.Data)
	require.Len(t, view.Thread.Comments, 1)
	assert.Equal(t, "**komentar telah dihapus**", view.Thread.Comments[0].Content)
	assert.Equal(t, 0, view.Thread.Comments[0].LikeCount)
	require.Len(t, view.Thread.Comments[0].Replies, 1)
	assert.Equal(t, "**balasan telah dihapus**", view.Thread.Comments[0].Replies[0].Content)

	// a deleted comment can no longer be targeted
	code, _ = c.do(http.MethodDelete, "/threads/"+threadID+"/comments/"+commentID, johndoe, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestThreadValidationErrors(t *testing.T) {
	c := newTestClient(t, nil)
	token := c.login("dicoding")

	code, env := c.do(http.MethodPost, "/threads", token, map[string]any{"title": "sebuah thread"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada", env.Message)

	code, env = c.do(http.MethodPost, "/threads", token, map[string]any{"title": 123, "body": true})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "tidak dapat membuat thread baru karena tipe data tidak sesuai", env.Message)

	code, env = c.do(http.MethodPost, "/threads", token, map[string]any{
		"title": "judul yang sangat panjang sekali melebihi lima puluh karakter",
		"body":  "body",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "tidak dapat membuat thread baru karena karakter judul melebihi batas limit", env.Message)
}

func TestNotFoundAndUnauthorized(t *testing.T) {
	c := newTestClient(t, nil)

	code, env := c.do(http.MethodPost, "/threads", "", map[string]any{"title": "t", "body": "b"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "fail", env.Status)

	code, env = c.do(http.MethodGet, "/threads/thread-404", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "thread tidak ditemukan", env.Message)

	token := c.login("dicoding")
	code, _ = c.do(http.MethodPost, "/threads/thread-404/comments", token, map[string]any{"content": "x"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = c.do(http.MethodPut, "/threads/thread-404/comments/comment-404/likes", token, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = c.do(http.MethodPost, "/threads/thread-404/comments/comment-404/replies", token, map[string]any{"content": "x"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAuthenticationFlow(t *testing.T) {
	c := newTestClient(t, nil)

	code, _ := c.do(http.MethodPost, "/users", "", map[string]any{"username": "dicoding", "password": "secret", "fullname": "Dicoding"})
	require.Equal(t, http.StatusCreated, code)

	code, env := c.do(http.MethodPost, "/users", "", map[string]any{"username": "dicoding", "password": "secret", "fullname": "Dicoding"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "username tidak tersedia", env.Message)

	code, _ = c.do(http.MethodPost, "/authentications", "", map[string]any{"username": "dicoding", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env = c.do(http.MethodPost, "/authentications", "", map[string]any{"username": "dicoding", "password": "secret"})
	require.Equal(t, http.StatusCreated, code)
	tokens := decode[struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}](t, env.Data)

	code, env = c.do(http.MethodPut, "/authentications", "", map[string]any{"refreshToken": tokens.RefreshToken})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, decode[struct {
		AccessToken string `json:"accessToken"`
	}](t, env.Data).AccessToken)

	code, _ = c.do(http.MethodDelete, "/authentications", "", map[string]any{"refreshToken": tokens.RefreshToken})
	require.Equal(t, http.StatusOK, code)

	code, _ = c.do(http.MethodPut, "/authentications", "", map[string]any{"refreshToken": tokens.RefreshToken})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestProbes(t *testing.T) {
	c := newTestClient(t, nil)
	code, _ := c.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = c.do(http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, code)

	down := newTestClient(t, func(context.Context) error { return errors.New("db down") })
	code, _ = down.do(http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
