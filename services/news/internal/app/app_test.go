package internal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsboard/pkg/config"
	"newsboard/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := NewApp(&config.Config{
		NewsServerPort: "0",
		CORSOrigins:    []string{"http://localhost:3000"},
		DBDriver:       "sqlite",
		DBPath:         ":memory:",
		DBAutoMigrate:  true,
		JWTSecret:      "test-secret",
		BcryptCost:     4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { app.Shutdown() })
	return app
}

func call(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	w := call(app.Router(), http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNewsLifecycle(t *testing.T) {
	app := newTestApp(t)
	r := app.Router()

	user := &models.User{Username: "alice", Password: "x"}
	require.NoError(t, app.db.Create(user).Error)
	token, err := app.jwtService.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	w := call(r, http.MethodPost, "/api/v1/news", token, map[string]string{
		"title":   "Launch",
		"content": "We shipped",
		"url":     "https://example.com/launch",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)
	assert.Equal(t, "alice", created["username"])

	w = call(r, http.MethodPost, "/api/v1/news/"+id+"/like", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(r, http.MethodGet, "/api/v1/news/liked", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var liked []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	require.Len(t, liked, 1)
	assert.Equal(t, float64(1), liked[0]["like_count"])

	w = call(r, http.MethodPost, "/api/v1/news/"+id+"/comment", token, map[string]string{"content": "first"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(r, http.MethodDelete, "/api/v1/news/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pk":"`+id+` is deleted."}`, w.Body.String())

	w = call(r, http.MethodGet, "/api/v1/news/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(r, http.MethodGet, "/api/v1/news/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No News matches the given query."}`, w.Body.String())

	var remaining int64
	require.NoError(t, app.db.Model(&models.Comment{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestDeletedAccountTokenStopsWorking(t *testing.T) {
	app := newTestApp(t)
	r := app.Router()

	user := &models.User{Username: "bob", Password: "x"}
	require.NoError(t, app.db.Create(user).Error)
	token, err := app.jwtService.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	w := call(r, http.MethodDelete, "/api/v1/accounts/bob", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = call(r, http.MethodPost, "/api/v1/news", token, map[string]string{
		"title":   "ghost",
		"content": "boo",
		"url":     "https://example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
