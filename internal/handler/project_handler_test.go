package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"focalflow/internal/event"
	"focalflow/internal/model"
	"focalflow/internal/service/projects"
)

type memStore struct {
	records map[string]*model.Project
}

func (f *memStore) Insert(_ context.Context, p *model.Project) error {
	cp := *p
	f.records[p.ID] = &cp
	return nil
}

func (f *memStore) FindByID(_ context.Context, id, userID string) (*model.Project, error) {
	p, ok := f.records[id]
	if !ok || p.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (f *memStore) ListByUser(_ context.Context, userID string) ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.records {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *memStore) Update(_ context.Context, p *model.Project) error {
	if _, ok := f.records[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *p
	f.records[p.ID] = &cp
	return nil
}

func (f *memStore) UpdateStatus(_ context.Context, id, userID string, status model.ProjectStatus) error {
	p, ok := f.records[id]
	if !ok || p.UserID != userID {
		return pgx.ErrNoRows
	}
	p.Status = status
	return nil
}

func (f *memStore) UpdateSteps(_ context.Context, p *model.Project) error {
	cur, ok := f.records[p.ID]
	if !ok || cur.UserID != p.UserID {
		return pgx.ErrNoRows
	}
	cur.VideoSteps = p.VideoSteps
	cur.ThumbnailSteps = p.ThumbnailSteps
	return nil
}

func (f *memStore) Delete(_ context.Context, id, userID string) error {
	p, ok := f.records[id]
	if !ok || p.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.records, id)
	return nil
}

func newTestRouter(userID string) (*gin.Engine, *memStore) {
	gin.SetMode(gin.TestMode)

	store := &memStore{records: make(map[string]*model.Project)}
	logger := zap.NewNop()
	svc := projects.NewService(store, event.NewNotifier(nil, logger), nil, logger)
	h := NewProjectHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/projects", h.ListProjects)
	r.POST("/projects", h.CreateProject)
	r.GET("/projects/:id", h.GetProject)
	r.PATCH("/projects/:id/steps", h.ToggleStep)
	r.PATCH("/projects/:id/status", h.SetStatus)
	r.DELETE("/projects/:id", h.DeleteProject)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProjectEndpoint(t *testing.T) {
	r, _ := newTestRouter("u1")

	w := doJSON(t, r, http.MethodPost, "/projects", gin.H{
		"title":       "Launch video",
		"type":        "video",
		"client_name": "Acme",
		"price":       1200,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var view struct {
		ID         string          `json:"id"`
		Status     string          `json:"status"`
		VideoSteps map[string]bool `json:"video_steps"`
		Derived    struct {
			Stage           string  `json:"stage"`
			RemainingAmount float64 `json:"remaining_amount"`
		} `json:"derived"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "not_started", view.Status)
	assert.Len(t, view.VideoSteps, 13)
	assert.Equal(t, "Client Brief", view.Derived.Stage)
	assert.Equal(t, 1200.0, view.Derived.RemainingAmount)
}

func TestCreateProjectRejectsBadType(t *testing.T) {
	r, _ := newTestRouter("u1")

	w := doJSON(t, r, http.MethodPost, "/projects", gin.H{
		"title": "x",
		"type":  "podcast",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleStepEndpoint(t *testing.T) {
	r, _ := newTestRouter("u1")

	w := doJSON(t, r, http.MethodPost, "/projects", gin.H{
		"title": "Thumb pack",
		"type":  "thumbnail",
		"price": 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/projects/"+created.ID+"/steps", gin.H{
		"key":  "brief",
		"done": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Derived struct {
			Stage string `json:"stage"`
		} `json:"derived"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Concept", view.Derived.Stage)

	// key outside the thumbnail catalog
	w = doJSON(t, r, http.MethodPatch, "/projects/"+created.ID+"/steps", gin.H{
		"key":  "cuts",
		"done": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProjectScopedToOwner(t *testing.T) {
	r, store := newTestRouter("u1")
	store.records["p-foreign"] = &model.Project{ID: "p-foreign", UserID: "someone-else", Type: model.TypeOther}

	w := doJSON(t, r, http.MethodGet, "/projects/p-foreign", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetStatusEndpoint(t *testing.T) {
	r, _ := newTestRouter("u1")

	w := doJSON(t, r, http.MethodPost, "/projects", gin.H{
		"title": "Edit",
		"type":  "other",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/projects/"+created.ID+"/status", gin.H{"status": "complete"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/projects/"+created.ID+"/status", gin.H{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
