package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

func setupRouter(t *testing.T) (*gin.Engine, *session.RedisStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})

	store := session.NewRedisStore(rdb)
	manager := session.NewManager(store, nil, time.Hour)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/private", SessionAuth(manager, "sid"), func(c *gin.Context) {
		sess := CurrentSession(c)
		c.JSON(http.StatusOK, gin.H{
			"user":    sess.User.Nome,
			"role":    c.GetString(ContextUserRole),
			"shop_id": c.GetInt64(ContextBarbershopID),
		})
	})
	return r, store
}

func saveSession(t *testing.T, store *session.RedisStore, id string, expires time.Time) {
	t.Helper()
	shop := int64(9)
	require.NoError(t, store.Save(context.Background(), &session.Session{
		ID:        id,
		Token:     "tok",
		User:      models.User{ID: 1, Nome: "Ana", Role: "dono", BarbeariaID: &shop},
		CreatedAt: time.Now(),
		ExpiresAt: expires,
	}, time.Hour))
}

func TestSessionAuth_Cookie(t *testing.T) {
	r, store := setupRouter(t)
	saveSession(t, store, "abc", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "abc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ana", body["user"])
	assert.Equal(t, "dono", body["role"])
	assert.Equal(t, float64(9), body["shop_id"])
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestSessionAuth_Bearer(t *testing.T) {
	r, store := setupRouter(t)
	saveSession(t, store, "xyz", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer xyz")
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestSessionAuth_Failures(t *testing.T) {
	r, store := setupRouter(t)
	saveSession(t, store, "old", time.Now().Add(-time.Minute))

	tests := []struct {
		name   string
		cookie string
		code   string
	}{
		{"missing", "", "missing_session"},
		{"unknown", "nope", "invalid_session"},
		{"expired", "old", "session_expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["error_code"])
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
