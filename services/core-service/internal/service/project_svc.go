package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gh-aakash/BillionBrains/services/core-service/internal/domain"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStore interface {
	Create(ctx context.Context, p *domain.Project) error
	ByID(ctx context.Context, id string) (*domain.Project, error)
	ByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	ListPublic(ctx context.Context, industry string) ([]domain.Project, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Project, error)
}

type TaskStore interface {
	Create(ctx context.Context, t *domain.Task) error
	ByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Task, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
	ByUser(ctx context.Context, userID string) ([]domain.Notification, error)
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// RKProjectLaunched is the routing key for launch events.
const RKProjectLaunched = "project.launched"

// Seed tasks created for every launched project.
var seedTasks = []struct{ title, desc string }{
	{"Market Research", "Identify target demographics and competitors."},
	{"MVP Prototype", "Build the core functionality of the solution."},
	{"Investor Deck", "Prepare slides for the first funding round."},
}

type ProjectSvc struct {
	ideas    IdeaStore
	projects ProjectStore
	tasks    TaskStore
	notes    NotificationStore
	pub      EventPublisher // nil when the broker is unavailable
	log      zerolog.Logger
}

func NewProjectSvc(ideas IdeaStore, projects ProjectStore, tasks TaskStore, notes NotificationStore, pub EventPublisher, log zerolog.Logger) *ProjectSvc {
	return &ProjectSvc{ideas: ideas, projects: projects, tasks: tasks, notes: notes, pub: pub, log: log}
}

func (s *ProjectSvc) CreateProject(ctx context.Context, ownerID, name, description string) (*domain.Project, error) {
	if ownerID == "" || name == "" {
		return nil, ErrMissingField
	}
	p := &domain.Project{OwnerID: ownerID, Name: name, Description: description, Status: domain.ProjectStatusActive}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

func (s *ProjectSvc) ListProjects(ctx context.Context, ownerID string) ([]domain.Project, error) {
	if ownerID == "" {
		return nil, ErrMissingField
	}
	return s.projects.ByOwner(ctx, ownerID)
}

func (s *ProjectSvc) ListPublicProjects(ctx context.Context, industry string) ([]domain.Project, error) {
	return s.projects.ListPublic(ctx, industry)
}

// ProjectUpdate carries a partial update. Zero values mean "leave
// alone" except IsPublic, which has no absent state and is always
// written, and EquityOffered, whose absent sentinel is negative.
type ProjectUpdate struct {
	Description   string
	FundingGoal   float64
	EquityOffered float64
	IsPublic      bool
	Industry      string
}

func (s *ProjectSvc) UpdateProject(ctx context.Context, id string, upd ProjectUpdate) (*domain.Project, error) {
	if id == "" {
		return nil, ErrMissingField
	}
	fields := map[string]any{"is_public": upd.IsPublic}
	if upd.Description != "" {
		fields["description"] = upd.Description
	}
	if upd.FundingGoal > 0 {
		fields["funding_goal"] = upd.FundingGoal
	}
	if upd.EquityOffered >= 0 {
		fields["equity_offered"] = upd.EquityOffered
	}
	if upd.Industry != "" {
		fields["industry"] = upd.Industry
	}
	p, err := s.projects.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (s *ProjectSvc) CreateTask(ctx context.Context, projectID, title, description, priority, assigneeID string) (*domain.Task, error) {
	if projectID == "" || title == "" {
		return nil, ErrMissingField
	}
	t := &domain.Task{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Priority:    priority,
		AssigneeID:  assigneeID,
		Status:      domain.TaskStatusTodo,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *ProjectSvc) ListTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	if projectID == "" {
		return nil, ErrMissingField
	}
	return s.tasks.ByProject(ctx, projectID)
}

// TaskUpdate carries a partial update. Position uses a negative value
// as the no-change sentinel.
type TaskUpdate struct {
	Status   string
	Priority string
	Position int32
}

func (s *ProjectSvc) UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*domain.Task, error) {
	if id == "" {
		return nil, ErrMissingField
	}
	fields := map[string]any{}
	if upd.Status != "" {
		fields["status"] = upd.Status
	}
	if upd.Priority != "" {
		fields["priority"] = upd.Priority
	}
	if upd.Position >= 0 {
		fields["position"] = upd.Position
	}
	t, err := s.tasks.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

// Launch turns an idea into an active project. Only the idea fetch and
// the project insert are required; the seed tasks, the idea status
// flip and the event publish are best-effort and never fail the call.
func (s *ProjectSvc) Launch(ctx context.Context, ideaID, title, description, industry string) (*domain.Project, error) {
	if ideaID == "" {
		return nil, ErrMissingField
	}
	idea, err := s.ideas.ByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch idea: %w", err)
	}

	p := &domain.Project{
		OwnerID:     idea.CreatorID,
		Name:        title,
		Description: description,
		Industry:    industry,
		Status:      domain.ProjectStatusActive,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	for _, seed := range seedTasks {
		t := &domain.Task{
			ProjectID:   p.ID,
			Title:       seed.title,
			Description: seed.desc,
			Status:      domain.TaskStatusTodo,
			Priority:    domain.PriorityHigh,
		}
		if err := s.tasks.Create(ctx, t); err != nil {
			s.log.Warn().Err(err).Str("project_id", p.ID).Str("task", seed.title).Msg("seed task skipped")
		}
	}

	if err := s.ideas.SetStatus(ctx, ideaID, domain.IdeaStatusLaunched); err != nil {
		s.log.Warn().Err(err).Str("idea_id", ideaID).Msg("idea status not updated")
	}

	if s.pub != nil {
		ev := map[string]any{
			"project_id": p.ID,
			"idea_id":    ideaID,
			"owner_id":   p.OwnerID,
			"name":       p.Name,
		}
		if err := s.pub.PublishJSON(ctx, RKProjectLaunched, ev); err != nil {
			s.log.Warn().Err(err).Str("project_id", p.ID).Msg("launch event not published")
		}
	}

	return p, nil
}

func (s *ProjectSvc) CreateNotification(ctx context.Context, userID, typ, content, payloadJSON string) (*domain.Notification, error) {
	if userID == "" {
		return nil, ErrMissingField
	}
	if !json.Valid([]byte(payloadJSON)) {
		payloadJSON = "{}"
	}
	n := &domain.Notification{
		UserID:  userID,
		Type:    typ,
		Content: content,
		Payload: datatypes.JSON(payloadJSON),
	}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *ProjectSvc) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	if userID == "" {
		return nil, ErrMissingField
	}
	return s.notes.ByUser(ctx, userID)
}
