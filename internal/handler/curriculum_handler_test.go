package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/curriforge/internal/model"
	"github.com/stemsi/curriforge/internal/repository"
	"github.com/stemsi/curriforge/internal/service"
	"github.com/stemsi/curriforge/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory CurriculumRepository. Setting fail makes every
// call return a StorageError.
type memoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []model.Curriculum
	fail    bool
	err     error
	deleted []int64
}

var errDisk = errors.New("disk I/O error")

func (r *memoryRepo) List(ctx context.Context) ([]model.Curriculum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, r.failure("list curricula")
	}
	out := make([]model.Curriculum, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *memoryRepo) Create(ctx context.Context, c *model.Curriculum) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return r.failure("create curriculum")
	}
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now().UTC()
	r.records = append(r.records, *c)
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return r.failure("delete curriculum")
	}
	r.deleted = append(r.deleted, id)
	for i, c := range r.records {
		if c.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryRepo) Ping(ctx context.Context) error {
	if r.fail {
		return &repository.StorageError{Op: "ping", Err: errDisk}
	}
	return nil
}

func (r *memoryRepo) Close() error { return nil }

func (r *memoryRepo) failure(op string) error {
	if r.err != nil {
		return r.err
	}
	return &repository.StorageError{Op: op, Err: errDisk}
}

func setupEngine(repo *memoryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	log := zerolog.New(io.Discard)
	h := NewCurriculumHandler(service.NewCurriculumService(repo, log))
	health := NewHealthHandler(repo, log)

	r := gin.New()
	r.GET("/health", health.Health)
	r.GET("/api/curricula", h.List)
	r.POST("/api/curricula", h.Create)
	r.DELETE("/api/curricula/:id", h.Delete)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const introBody = `{"title":"Intro to X","subject":"X","audience":"Beginners","duration":"2 weeks","content":"# Overview\n..."}`

func TestListEmptyIsArray(t *testing.T) {
	r := setupEngine(&memoryRepo{})

	w := do(r, http.MethodGet, "/api/curricula", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateListDeleteFlow(t *testing.T) {
	r := setupEngine(&memoryRepo{})

	w := do(r, http.MethodPost, "/api/curricula", introBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/curricula", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.EqualValues(t, 1, list[0]["id"])
	assert.Equal(t, "Intro to X", list[0]["title"])
	assert.Equal(t, "# Overview\n...", list[0]["content"])
	assert.Contains(t, list[0], "created_at")

	w = do(r, http.MethodDelete, "/api/curricula/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/curricula/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/curricula", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateAcceptsEmptyStrings(t *testing.T) {
	r := setupEngine(&memoryRepo{})

	w := do(r, http.MethodPost, "/api/curricula", `{"title":"","subject":"","audience":"","duration":"","content":""}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	repo := &memoryRepo{}
	r := setupEngine(repo)

	w := do(r, http.MethodPost, "/api/curricula", `{"title":"Intro to X"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid curriculum payload", body.Error)
	assert.Contains(t, body.Fields, "content")
	assert.Empty(t, repo.records, "store is not called for invalid payloads")
}

func TestDeleteRejectsNonNumericID(t *testing.T) {
	repo := &memoryRepo{}
	r := setupEngine(repo)

	w := do(r, http.MethodDelete, "/api/curricula/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid curriculum id"}`, w.Body.String())
	assert.Empty(t, repo.deleted)
}

func TestDeleteUnknownIDSucceeds(t *testing.T) {
	repo := &memoryRepo{}
	r := setupEngine(repo)
	do(r, http.MethodPost, "/api/curricula", introBody)

	w := do(r, http.MethodDelete, "/api/curricula/999999", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, []int64{999999}, repo.deleted)
}

func TestStorageErrorsMapTo500(t *testing.T) {
	r := setupEngine(&memoryRepo{fail: true})

	tests := []struct {
		method, path, body, want string
	}{
		{http.MethodGet, "/api/curricula", "", `{"error":"Failed to fetch curricula"}`},
		{http.MethodPost, "/api/curricula", introBody, `{"error":"Failed to save curriculum"}`},
		{http.MethodDelete, "/api/curricula/1", "", `{"error":"Failed to delete curriculum"}`},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			assert.NotContains(t, w.Body.String(), "disk I/O", "driver errors are not leaked")
		})
	}
}

func TestUnexpectedErrorsMapToGeneric500(t *testing.T) {
	r := setupEngine(&memoryRepo{fail: true, err: errors.New("boom")})

	for _, tt := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/curricula", ""},
		{http.MethodPost, "/api/curricula", introBody},
		{http.MethodDelete, "/api/curricula/1", ""},
	} {
		t.Run(tt.method, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
		})
	}
}

func TestHealth(t *testing.T) {
	w := do(setupEngine(&memoryRepo{}), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = do(setupEngine(&memoryRepo{fail: true}), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Database unavailable"}`, w.Body.String())
}
