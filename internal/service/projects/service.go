package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"focalflow/internal/derive"
	"focalflow/internal/event"
	"focalflow/internal/model"
	"focalflow/internal/repository"
)

var (
	ErrInvalidType   = errors.New("invalid project type")
	ErrInvalidStatus = errors.New("invalid project status")
	ErrUnknownStep   = errors.New("unknown step key for project type")
)

// Store is the persistence surface the service writes through. Satisfied
// by repository.ProjectRepository; handlers and tests never see the pool.
type Store interface {
	Insert(ctx context.Context, p *model.Project) error
	FindByID(ctx context.Context, id, userID string) (*model.Project, error)
	ListByUser(ctx context.Context, userID string) ([]model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	UpdateStatus(ctx context.Context, id, userID string, status model.ProjectStatus) error
	UpdateSteps(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id, userID string) error
}

var _ Store = (*repository.ProjectRepository)(nil)

// StatsInvalidator drops cached dashboard aggregates after a write.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

type Service struct {
	repo     Store
	notifier *event.Notifier
	stats    StatsInvalidator
	logger   *zap.Logger
}

func NewService(repo Store, notifier *event.Notifier, stats StatsInvalidator, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		stats:    stats,
		logger:   logger,
	}
}

// Derived is the display state computed per project snapshot. Values are
// plain descriptors; formatting belongs to the presentation layer.
type Derived struct {
	Stage           string             `json:"stage"`
	Status          derive.StatusMeta  `json:"status_meta"`
	Invoice         derive.InvoiceMeta `json:"invoice_meta"`
	RemainingAmount float64            `json:"remaining_amount"`
	CompletionDays  *int               `json:"completion_days"`
	Progress        int                `json:"progress"`
}

// View is a project record together with its derived block.
type View struct {
	model.Project
	Derived Derived `json:"derived"`
}

func buildView(p *model.Project, now time.Time) *View {
	d := Derived{
		Stage:           derive.StageLabel(p),
		Status:          derive.ClassifyStatus(p),
		Invoice:         derive.ClassifyInvoice(p),
		RemainingAmount: derive.RemainingAmount(p),
		Progress:        derive.Progress(p),
	}
	if days, ok := derive.CompletionDays(p, now); ok {
		d.CompletionDays = &days
	}
	return &View{Project: *p, Derived: d}
}

func validType(t model.ProjectType) bool {
	switch t {
	case model.TypeVideo, model.TypeThumbnail, model.TypeOther:
		return true
	}
	return false
}

func validStatus(s model.ProjectStatus) bool {
	switch s {
	case model.StatusNotStarted, model.StatusWorking, model.StatusDelay,
		model.StatusComplete, model.StatusCancel:
		return true
	}
	return false
}

// List returns the user's projects narrowed to the window by creation date,
// each with its derived block.
func (s *Service) List(ctx context.Context, userID string, window derive.Window) ([]View, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	now := time.Now()
	records = derive.FilterByWindow(records, func(p model.Project) (time.Time, bool) {
		return p.CreatedAt, !p.CreatedAt.IsZero()
	}, window, now)

	views := make([]View, 0, len(records))
	for i := range records {
		views = append(views, *buildView(&records[i], now))
	}
	return views, nil
}

// Get returns one project with its derived block.
func (s *Service) Get(ctx context.Context, userID, id string) (*View, error) {
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return buildView(p, time.Now()), nil
}

// Create stores a new project with an all-false step map for its type.
func (s *Service) Create(ctx context.Context, p *model.Project) (*View, error) {
	if !validType(p.Type) {
		return nil, ErrInvalidType
	}
	if p.Status == "" {
		p.Status = model.StatusNotStarted
	}
	if !validStatus(p.Status) {
		return nil, ErrInvalidStatus
	}

	p.ID = uuid.NewString()
	p.VideoSteps = nil
	p.ThumbnailSteps = nil
	switch p.Type {
	case model.TypeVideo:
		p.VideoSteps = derive.NewStepMap(model.TypeVideo)
	case model.TypeThumbnail:
		p.ThumbnailSteps = derive.NewStepMap(model.TypeThumbnail)
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.afterWrite(ctx, event.ActionCreated, p)
	return s.Get(ctx, p.UserID, p.ID)
}

// Update replaces editable fields. Changing the type resets the step map
// so its key set matches the new catalog.
func (s *Service) Update(ctx context.Context, p *model.Project) (*View, error) {
	if !validType(p.Type) {
		return nil, ErrInvalidType
	}
	if !validStatus(p.Status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.FindByID(ctx, p.ID, p.UserID)
	if err != nil {
		return nil, err
	}

	if current.Type == p.Type {
		p.VideoSteps = current.VideoSteps
		p.ThumbnailSteps = current.ThumbnailSteps
	} else {
		p.VideoSteps = nil
		p.ThumbnailSteps = nil
		switch p.Type {
		case model.TypeVideo:
			p.VideoSteps = derive.NewStepMap(model.TypeVideo)
		case model.TypeThumbnail:
			p.ThumbnailSteps = derive.NewStepMap(model.TypeThumbnail)
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.afterWrite(ctx, event.ActionUpdated, p)
	return s.Get(ctx, p.UserID, p.ID)
}

// ToggleStep sets one workflow flag. The derived stage and invoice state
// follow from the map; status is untouched.
func (s *Service) ToggleStep(ctx context.Context, userID, id, key string, done bool) (*View, error) {
	p, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !derive.ValidStepKey(p.Type, key) {
		return nil, ErrUnknownStep
	}

	steps := p.Steps()
	if steps == nil {
		steps = derive.NewStepMap(p.Type)
		switch p.Type {
		case model.TypeVideo:
			p.VideoSteps = steps
		case model.TypeThumbnail:
			p.ThumbnailSteps = steps
		}
	}
	steps[key] = done

	if err := s.repo.UpdateSteps(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update steps: %w", err)
	}

	s.afterWrite(ctx, event.ActionUpdated, p)
	return s.Get(ctx, userID, id)
}

// SetStatus changes the lifecycle status. No transition graph is enforced:
// any status can follow any other, regardless of step completion.
func (s *Service) SetStatus(ctx context.Context, userID, id string, status model.ProjectStatus) (*View, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, userID, status); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, event.ActionUpdated, &model.Project{ID: id, UserID: userID})
	return s.Get(ctx, userID, id)
}

// Delete removes a project permanently.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.afterWrite(ctx, event.ActionDeleted, &model.Project{ID: id, UserID: userID})
	return nil
}

func (s *Service) afterWrite(ctx context.Context, action string, p *model.Project) {
	s.logger.Debug("project changed",
		zap.String("action", action),
		zap.String("project_id", p.ID))
	s.notifier.Changed("project", action, p.ID, p.UserID)
	if s.stats != nil {
		s.stats.Invalidate(ctx, p.UserID)
	}
}
