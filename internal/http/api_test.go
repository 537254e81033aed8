package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitstand/internal/repository/memory"
	"fruitstand/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewSeededStore()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewHandler(
		service.NewItemService(store),
		service.NewUserService(store),
		service.NewStatsService(store, store),
		service.NewAuthService(),
		logger,
		"test",
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, contentType, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestListItems(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/api/items", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items, ok := body["items"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Apple", "Banana", "Cherry", "Date", "Elderberry"}, items)
}

func TestAddItem(t *testing.T) {
	t.Run("appends trimmed name", func(t *testing.T) {
		router := newTestRouter(t)

		rec, body := doRequest(t, router, http.MethodPost, "/api/items", "application/json", `{"name": "  Fig  "}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Item 'Fig' added successfully", body["message"])

		items, ok := body["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 6)
		assert.Equal(t, "Fig", items[len(items)-1])
	})

	t.Run("rejects missing and blank names", func(t *testing.T) {
		router := newTestRouter(t)

		for _, payload := range []string{`{}`, `{"name": ""}`, `{"name": "   "}`} {
			rec, body := doRequest(t, router, http.MethodPost, "/api/items", "application/json", payload, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "payload %s", payload)
			assert.Equal(t, "item name is required", body["error"], "payload %s", payload)
		}

		// Failed adds must leave the store untouched.
		rec, body := doRequest(t, router, http.MethodGet, "/api/items", "", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, body["items"].([]any), 5)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		router := newTestRouter(t)

		rec, body := doRequest(t, router, http.MethodPost, "/api/items", "application/json", `{"name": `, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, body["error"])
	})
}

func TestListUsers(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/api/users", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	users, ok := body["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 3)

	first, ok := users[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Alice", first["name"])
	assert.Equal(t, "alice@example.com", first["email"])
}

func TestGetStats(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/api/stats", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), body["total_items"])
	assert.Equal(t, float64(3), body["total_users"])
	assert.Equal(t, "active", body["status"])

	// Stats reflect mutations immediately.
	rec, _ = doRequest(t, router, http.MethodPost, "/api/items", "application/json", `{"name": "Fig"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = doRequest(t, router, http.MethodGet, "/api/stats", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(6), body["total_items"])
	assert.Equal(t, float64(3), body["total_users"])
}

func TestLogin(t *testing.T) {
	t.Run("form credentials", func(t *testing.T) {
		router := newTestRouter(t)
		form := url.Values{"username": {"admin"}, "password": {"secret"}}

		rec, body := doRequest(t, router, http.MethodPost, "/token", "application/x-www-form-urlencoded", form.Encode(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "demo_token_12345", body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
		assert.Equal(t, "Login successful", body["message"])
	})

	t.Run("query credentials", func(t *testing.T) {
		router := newTestRouter(t)

		rec, body := doRequest(t, router, http.MethodPost, "/token?username=admin&password=secret", "", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "demo_token_12345", body["access_token"])
	})

	t.Run("wrong credentials", func(t *testing.T) {
		router := newTestRouter(t)

		for _, pair := range [][2]string{
			{"admin", "wrong"},
			{"Admin", "secret"},
			{"", ""},
			{"admin", ""},
		} {
			form := url.Values{"username": {pair[0]}, "password": {pair[1]}}
			rec, body := doRequest(t, router, http.MethodPost, "/token", "application/x-www-form-urlencoded", form.Encode(), nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "pair %v", pair)
			assert.Equal(t, "invalid credentials", body["error"], "pair %v", pair)
		}
	})
}

func TestProtected(t *testing.T) {
	t.Run("accepts the issued token", func(t *testing.T) {
		router := newTestRouter(t)

		rec, body := doRequest(t, router, http.MethodGet, "/api/protected", "", "", map[string]string{
			"Authorization": "Bearer demo_token_12345",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "This is a protected endpoint", body["message"])
		assert.Equal(t, "admin", body["user"])
	})

	t.Run("rejects missing header", func(t *testing.T) {
		router := newTestRouter(t)

		rec, body := doRequest(t, router, http.MethodGet, "/api/protected", "", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing bearer token", body["error"])
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("rejects non-bearer scheme", func(t *testing.T) {
		router := newTestRouter(t)

		rec, body := doRequest(t, router, http.MethodGet, "/api/protected", "", "", map[string]string{
			"Authorization": "Basic demo_token_12345",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing bearer token", body["error"])
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		router := newTestRouter(t)

		rec, body := doRequest(t, router, http.MethodGet, "/api/protected", "", "", map[string]string{
			"Authorization": "Bearer not_the_token",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid token", body["error"])
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/api/health", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodOptions, "/api/items", "", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/items", "", "", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, _ = doRequest(t, router, http.MethodGet, "/api/items", "", "", map[string]string{
		"X-Request-ID": "abc-123",
	})
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestBearerToken(t *testing.T) {
	for _, tc := range []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer demo_token_12345", "demo_token_12345", true},
		{"bearer demo_token_12345", "demo_token_12345", true},
		{"Bearer ", "", false},
		{"Bearer", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	} {
		token, ok := bearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, "header %q", tc.header)
		assert.Equal(t, tc.token, token, "header %q", tc.header)
	}
}
