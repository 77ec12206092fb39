package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gh-aakash/BillionBrains/services/core-service/internal/domain"
)

type fakeIdeaStore struct {
	ideas        map[string]*domain.Idea
	setStatusErr error
}

func (f *fakeIdeaStore) Create(_ context.Context, i *domain.Idea) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	cp := *i
	f.ideas[i.ID] = &cp
	return nil
}

func (f *fakeIdeaStore) ByID(_ context.Context, id string) (*domain.Idea, error) {
	i, ok := f.ideas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *i
	return &cp, nil
}

func (f *fakeIdeaStore) ListRecent(_ context.Context, limit int) ([]domain.Idea, error) {
	var out []domain.Idea
	for _, i := range f.ideas {
		out = append(out, *i)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeIdeaStore) SetStatus(_ context.Context, id, status string) error {
	if f.setStatusErr != nil {
		return f.setStatusErr
	}
	if i, ok := f.ideas[id]; ok {
		i.Status = status
	}
	return nil
}

type fakeProjectStore struct {
	projects map[string]*domain.Project
}

func (f *fakeProjectStore) Create(_ context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	cp := *p
	f.projects[p.ID] = &cp
	return nil
}

func (f *fakeProjectStore) ByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjectStore) ByOwner(_ context.Context, ownerID string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range f.projects {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) ListPublic(_ context.Context, industry string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range f.projects {
		if p.IsPublic && (industry == "" || p.Industry == industry) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) UpdateFields(_ context.Context, id string, fields map[string]any) (*domain.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "description":
			p.Description = v.(string)
		case "funding_goal":
			p.FundingGoal = v.(float64)
		case "equity_offered":
			p.EquityOffered = v.(float64)
		case "is_public":
			p.IsPublic = v.(bool)
		case "industry":
			p.Industry = v.(string)
		}
	}
	cp := *p
	return &cp, nil
}

type fakeTaskStore struct {
	tasks      []*domain.Task
	failTitles map[string]bool
}

func (f *fakeTaskStore) Create(_ context.Context, t *domain.Task) error {
	if f.failTitles[t.Title] {
		return errors.New("insert failed")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	f.tasks = append(f.tasks, &cp)
	return nil
}

func (f *fakeTaskStore) ByProject(_ context.Context, projectID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range f.tasks {
		if t.ProjectID == projectID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) UpdateFields(_ context.Context, id string, fields map[string]any) (*domain.Task, error) {
	for _, t := range f.tasks {
		if t.ID != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "status":
				t.Status = v.(string)
			case "priority":
				t.Priority = v.(string)
			case "position":
				t.Position = v.(int32)
			}
		}
		cp := *t
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeNotificationStore struct {
	notes []*domain.Notification
}

func (f *fakeNotificationStore) Create(_ context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	cp := *n
	f.notes = append(f.notes, &cp)
	return nil
}

func (f *fakeNotificationStore) ByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

type fakePublisher struct {
	keys []string
	err  error
}

func (f *fakePublisher) PublishJSON(_ context.Context, key string, _ any) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	return nil
}

type fixture struct {
	ideas    *fakeIdeaStore
	projects *fakeProjectStore
	tasks    *fakeTaskStore
	notes    *fakeNotificationStore
	pub      *fakePublisher
	svc      *ProjectSvc
}

func newFixture() *fixture {
	f := &fixture{
		ideas:    &fakeIdeaStore{ideas: map[string]*domain.Idea{}},
		projects: &fakeProjectStore{projects: map[string]*domain.Project{}},
		tasks:    &fakeTaskStore{failTitles: map[string]bool{}},
		notes:    &fakeNotificationStore{},
		pub:      &fakePublisher{},
	}
	f.svc = NewProjectSvc(f.ideas, f.projects, f.tasks, f.notes, f.pub, zerolog.Nop())
	return f
}

func seedIdea(f *fixture, id, creatorID string) {
	f.ideas.ideas[id] = &domain.Idea{ID: id, CreatorID: creatorID, Title: "idea", Status: domain.IdeaStatusOpen}
}

func TestLaunchHappyPath(t *testing.T) {
	f := newFixture()
	seedIdea(f, "I1", "U1")

	p, err := f.svc.Launch(context.Background(), "I1", "Acme", "d", "tech")
	require.NoError(t, err)

	assert.Equal(t, "U1", p.OwnerID)
	assert.Equal(t, domain.ProjectStatusActive, p.Status)
	assert.Equal(t, "tech", p.Industry)
	assert.Equal(t, "Acme", p.Name)

	tasks, err := f.svc.ListTasks(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	var titles []string
	for _, task := range tasks {
		titles = append(titles, task.Title)
		assert.Equal(t, domain.PriorityHigh, task.Priority)
		assert.Equal(t, domain.TaskStatusTodo, task.Status)
	}
	assert.Equal(t, []string{"Market Research", "MVP Prototype", "Investor Deck"}, titles)

	assert.Equal(t, domain.IdeaStatusLaunched, f.ideas.ideas["I1"].Status)
	assert.Equal(t, []string{RKProjectLaunched}, f.pub.keys)
}

func TestLaunchIdeaNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Launch(context.Background(), "missing", "Acme", "d", "tech")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.projects.projects)
}

func TestLaunchSeedTaskFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	seedIdea(f, "I1", "U1")
	f.tasks.failTitles["MVP Prototype"] = true

	p, err := f.svc.Launch(context.Background(), "I1", "Acme", "d", "tech")
	require.NoError(t, err)

	tasks, err := f.svc.ListTasks(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2, "a failed seed task must not abort the launch")
	assert.Equal(t, domain.IdeaStatusLaunched, f.ideas.ideas["I1"].Status)
}

func TestLaunchStatusFlipFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	seedIdea(f, "I1", "U1")
	f.ideas.setStatusErr = errors.New("connection reset")

	p, err := f.svc.Launch(context.Background(), "I1", "Acme", "d", "tech")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.IdeaStatusOpen, f.ideas.ideas["I1"].Status, "status flip is best-effort")
}

func TestLaunchPublishFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	seedIdea(f, "I1", "U1")
	f.pub.err = errors.New("broker gone")

	_, err := f.svc.Launch(context.Background(), "I1", "Acme", "d", "tech")
	require.NoError(t, err)
}

func TestLaunchWithoutPublisher(t *testing.T) {
	f := newFixture()
	seedIdea(f, "I1", "U1")
	f.svc = NewProjectSvc(f.ideas, f.projects, f.tasks, f.notes, nil, zerolog.Nop())

	_, err := f.svc.Launch(context.Background(), "I1", "Acme", "d", "tech")
	require.NoError(t, err)
}

func TestUpdateProjectSuppliedFieldsOnly(t *testing.T) {
	f := newFixture()
	f.projects.projects["P1"] = &domain.Project{
		ID: "P1", OwnerID: "U1", Name: "Acme", Description: "keep",
		FundingGoal: 500, EquityOffered: 10, IsPublic: true, Industry: "tech",
	}

	// Everything absent except is_public; equity uses the negative
	// sentinel for "no change".
	p, err := f.svc.UpdateProject(context.Background(), "P1", ProjectUpdate{IsPublic: false, EquityOffered: -1})
	require.NoError(t, err)

	assert.False(t, p.IsPublic, "is_public is always written")
	assert.Equal(t, "keep", p.Description)
	assert.Equal(t, 500.0, p.FundingGoal)
	assert.Equal(t, 10.0, p.EquityOffered)
	assert.Equal(t, "tech", p.Industry)

	// Idempotent under a no-op delta.
	again, err := f.svc.UpdateProject(context.Background(), "P1", ProjectUpdate{IsPublic: false, EquityOffered: -1})
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestUpdateProjectWritesSupplied(t *testing.T) {
	f := newFixture()
	f.projects.projects["P1"] = &domain.Project{ID: "P1", Name: "Acme"}

	p, err := f.svc.UpdateProject(context.Background(), "P1", ProjectUpdate{
		Description:   "new desc",
		FundingGoal:   1000,
		EquityOffered: 5,
		IsPublic:      true,
		Industry:      "fintech",
	})
	require.NoError(t, err)
	assert.Equal(t, "new desc", p.Description)
	assert.Equal(t, 1000.0, p.FundingGoal)
	assert.Equal(t, 5.0, p.EquityOffered)
	assert.True(t, p.IsPublic)
	assert.Equal(t, "fintech", p.Industry)
}

func TestUpdateProjectNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.svc.UpdateProject(context.Background(), "missing", ProjectUpdate{EquityOffered: -1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTaskPositionSentinel(t *testing.T) {
	f := newFixture()
	f.tasks.tasks = append(f.tasks.tasks, &domain.Task{ID: "T1", ProjectID: "P1", Title: "t", Status: "todo", Priority: "low", Position: 3})

	task, err := f.svc.UpdateTask(context.Background(), "T1", TaskUpdate{Status: "doing", Position: -1})
	require.NoError(t, err)
	assert.Equal(t, "doing", task.Status)
	assert.Equal(t, "low", task.Priority, "empty priority left alone")
	assert.Equal(t, int32(3), task.Position, "negative position means no change")

	task, err = f.svc.UpdateTask(context.Background(), "T1", TaskUpdate{Position: 0})
	require.NoError(t, err)
	assert.Equal(t, int32(0), task.Position, "zero is a valid position")
}

func TestCreateNotificationDefaultsPayload(t *testing.T) {
	f := newFixture()

	n, err := f.svc.CreateNotification(context.Background(), "U1", "project.launched", "hi", "not json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(n.Payload))
	assert.False(t, n.Read)

	n, err = f.svc.CreateNotification(context.Background(), "U1", "project.launched", "hi", `{"project_id":"P1"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"project_id":"P1"}`, string(n.Payload))

	notes, err := f.svc.ListNotifications(context.Background(), "U1")
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}
