package projects

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"focalflow/internal/event"
	"focalflow/internal/model"
)

// fakeStore keeps projects in memory, keyed by id.
type fakeStore struct {
	records map[string]*model.Project
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*model.Project)}
}

func (f *fakeStore) Insert(_ context.Context, p *model.Project) error {
	cp := *p
	f.records[p.ID] = &cp
	return nil
}

func (f *fakeStore) FindByID(_ context.Context, id, userID string) (*model.Project, error) {
	p, ok := f.records[id]
	if !ok || p.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.records {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, p *model.Project) error {
	if _, ok := f.records[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *p
	f.records[p.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id, userID string, status model.ProjectStatus) error {
	p, ok := f.records[id]
	if !ok || p.UserID != userID {
		return pgx.ErrNoRows
	}
	p.Status = status
	return nil
}

func (f *fakeStore) UpdateSteps(_ context.Context, p *model.Project) error {
	cur, ok := f.records[p.ID]
	if !ok || cur.UserID != p.UserID {
		return pgx.ErrNoRows
	}
	cur.VideoSteps = p.VideoSteps
	cur.ThumbnailSteps = p.ThumbnailSteps
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id, userID string) error {
	p, ok := f.records[id]
	if !ok || p.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.records, id)
	return nil
}

func newTestService(store *fakeStore) *Service {
	logger := zap.NewNop()
	return NewService(store, event.NewNotifier(nil, logger), nil, logger)
}

func TestCreateInitializesStepMap(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	view, err := svc.Create(context.Background(), &model.Project{
		UserID:     "u1",
		Title:      "Launch video",
		Type:       model.TypeVideo,
		ClientName: "Acme",
		Price:      900,
		Quantity:   1,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, model.StatusNotStarted, view.Status)
	assert.Len(t, view.VideoSteps, 13)
	for key, done := range view.VideoSteps {
		assert.False(t, done, "step %s should start false", key)
	}
	assert.Nil(t, view.ThumbnailSteps)
	assert.Equal(t, "Client Brief", view.Derived.Stage)
	assert.Equal(t, 0, view.Derived.Progress)
	assert.False(t, view.Derived.Invoice.Paid)
	assert.Equal(t, 900.0, view.Derived.RemainingAmount)
}

func TestCreateOtherTypeHasNoSteps(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	view, err := svc.Create(context.Background(), &model.Project{
		UserID: "u1",
		Title:  "Consulting",
		Type:   model.TypeOther,
	})
	require.NoError(t, err)
	assert.Nil(t, view.VideoSteps)
	assert.Nil(t, view.ThumbnailSteps)
	assert.Equal(t, "Not started", view.Derived.Stage)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Create(context.Background(), &model.Project{UserID: "u1", Type: "podcast"})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestToggleStep(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, err := svc.Create(context.Background(), &model.Project{
		UserID: "u1", Type: model.TypeVideo, Price: 500,
	})
	require.NoError(t, err)

	view, err := svc.ToggleStep(context.Background(), "u1", created.ID, "brief", true)
	require.NoError(t, err)
	assert.True(t, view.VideoSteps["brief"])
	assert.Equal(t, "Script / Plan", view.Derived.Stage)

	view, err = svc.ToggleStep(context.Background(), "u1", created.ID, "get_paid", true)
	require.NoError(t, err)
	assert.True(t, view.Derived.Invoice.Paid)
	assert.Equal(t, 0.0, view.Derived.RemainingAmount)
	// last true flag wins: stage resolves past the unfinished middle steps
	assert.Equal(t, "Collect Feedback", view.Derived.Stage)
}

func TestToggleStepRejectsForeignKey(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, err := svc.Create(context.Background(), &model.Project{
		UserID: "u1", Type: model.TypeThumbnail,
	})
	require.NoError(t, err)

	_, err = svc.ToggleStep(context.Background(), "u1", created.ID, "cuts", true)
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestSetStatusIndependentOfSteps(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, err := svc.Create(context.Background(), &model.Project{
		UserID: "u1", Type: model.TypeVideo,
	})
	require.NoError(t, err)

	// complete can be set while every step is still false
	view, err := svc.SetStatus(context.Background(), "u1", created.ID, model.StatusComplete)
	require.NoError(t, err)
	assert.Equal(t, model.StatusComplete, view.Status)
	assert.Equal(t, "Client Brief", view.Derived.Stage)

	_, err = svc.SetStatus(context.Background(), "u1", created.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateTypeChangeResetsSteps(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, err := svc.Create(context.Background(), &model.Project{
		UserID: "u1", Type: model.TypeVideo,
	})
	require.NoError(t, err)

	_, err = svc.ToggleStep(context.Background(), "u1", created.ID, "brief", true)
	require.NoError(t, err)

	updated := created.Project
	updated.Type = model.TypeThumbnail
	view, err := svc.Update(context.Background(), &updated)
	require.NoError(t, err)

	assert.Nil(t, view.VideoSteps)
	assert.Len(t, view.ThumbnailSteps, 10)
	for key, done := range view.ThumbnailSteps {
		assert.False(t, done, "step %s should reset to false", key)
	}
}

func TestGetUnknownProject(t *testing.T) {
	svc := newTestService(newFakeStore())
	_, err := svc.Get(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestDelete(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, err := svc.Create(context.Background(), &model.Project{
		UserID: "u1", Type: model.TypeOther,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "u1", created.ID))
	_, err = svc.Get(context.Background(), "u1", created.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
