package grpc

import (
	"context"
	"time"

	taskv1 "github.com/gh-aakash/BillionBrains/rpc/task/v1"
	"github.com/gh-aakash/BillionBrains/services/core-service/internal/domain"
	"github.com/gh-aakash/BillionBrains/services/core-service/internal/service"

	"github.com/rs/zerolog"
)

type TaskServer struct {
	taskv1.UnimplementedTaskServiceServer
	svc *service.ProjectSvc
	log zerolog.Logger
}

func NewTaskServer(svc *service.ProjectSvc, log zerolog.Logger) *TaskServer {
	return &TaskServer{svc: svc, log: log}
}

func (s *TaskServer) CreateProject(ctx context.Context, in *taskv1.CreateProjectRequest) (*taskv1.Project, error) {
	p, err := s.svc.CreateProject(ctx, in.OwnerId, in.Name, in.Description)
	if err != nil {
		return nil, toStatus(s.log, "CreateProject", err)
	}
	return projectToPB(p), nil
}

func (s *TaskServer) ListProjects(ctx context.Context, in *taskv1.ListProjectsRequest) (*taskv1.ListProjectsResponse, error) {
	projects, err := s.svc.ListProjects(ctx, in.OwnerId)
	if err != nil {
		return nil, toStatus(s.log, "ListProjects", err)
	}
	return projectsToPB(projects), nil
}

func (s *TaskServer) ListPublicProjects(ctx context.Context, in *taskv1.ListPublicProjectsRequest) (*taskv1.ListProjectsResponse, error) {
	projects, err := s.svc.ListPublicProjects(ctx, in.IndustryFilter)
	if err != nil {
		return nil, toStatus(s.log, "ListPublicProjects", err)
	}
	return projectsToPB(projects), nil
}

func (s *TaskServer) UpdateProject(ctx context.Context, in *taskv1.UpdateProjectRequest) (*taskv1.Project, error) {
	p, err := s.svc.UpdateProject(ctx, in.Id, service.ProjectUpdate{
		Description:   in.Description,
		FundingGoal:   in.FundingGoal,
		EquityOffered: in.EquityOffered,
		IsPublic:      in.IsPublic,
		Industry:      in.Industry,
	})
	if err != nil {
		return nil, toStatus(s.log, "UpdateProject", err)
	}
	return projectToPB(p), nil
}

func (s *TaskServer) CreateTask(ctx context.Context, in *taskv1.CreateTaskRequest) (*taskv1.Task, error) {
	t, err := s.svc.CreateTask(ctx, in.ProjectId, in.Title, in.Description, in.Priority, in.AssigneeId)
	if err != nil {
		return nil, toStatus(s.log, "CreateTask", err)
	}
	return taskToPB(t), nil
}

func (s *TaskServer) ListTasks(ctx context.Context, in *taskv1.ListTasksRequest) (*taskv1.ListTasksResponse, error) {
	tasks, err := s.svc.ListTasks(ctx, in.ProjectId)
	if err != nil {
		return nil, toStatus(s.log, "ListTasks", err)
	}
	resp := &taskv1.ListTasksResponse{}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, taskToPB(&tasks[i]))
	}
	return resp, nil
}

func (s *TaskServer) UpdateTask(ctx context.Context, in *taskv1.UpdateTaskRequest) (*taskv1.UpdateTaskResponse, error) {
	t, err := s.svc.UpdateTask(ctx, in.Id, service.TaskUpdate{
		Status:   in.Status,
		Priority: in.Priority,
		Position: in.Position,
	})
	if err != nil {
		return nil, toStatus(s.log, "UpdateTask", err)
	}
	return &taskv1.UpdateTaskResponse{Task: taskToPB(t)}, nil
}

func (s *TaskServer) LaunchProject(ctx context.Context, in *taskv1.LaunchProjectRequest) (*taskv1.Project, error) {
	p, err := s.svc.Launch(ctx, in.IdeaId, in.Title, in.Description, in.Industry)
	if err != nil {
		return nil, toStatus(s.log, "LaunchProject", err)
	}
	return projectToPB(p), nil
}

func (s *TaskServer) CreateNotification(ctx context.Context, in *taskv1.CreateNotificationRequest) (*taskv1.Notification, error) {
	n, err := s.svc.CreateNotification(ctx, in.UserId, in.Type, in.Content, in.PayloadJson)
	if err != nil {
		return nil, toStatus(s.log, "CreateNotification", err)
	}
	return notificationToPB(n), nil
}

func (s *TaskServer) ListNotifications(ctx context.Context, in *taskv1.ListNotificationsRequest) (*taskv1.ListNotificationsResponse, error) {
	notes, err := s.svc.ListNotifications(ctx, in.UserId)
	if err != nil {
		return nil, toStatus(s.log, "ListNotifications", err)
	}
	resp := &taskv1.ListNotificationsResponse{}
	for i := range notes {
		resp.Notifications = append(resp.Notifications, notificationToPB(&notes[i]))
	}
	return resp, nil
}

func projectToPB(p *domain.Project) *taskv1.Project {
	return &taskv1.Project{
		Id:            p.ID,
		OwnerId:       p.OwnerID,
		Name:          p.Name,
		Description:   p.Description,
		Status:        p.Status,
		FundingGoal:   p.FundingGoal,
		EquityOffered: p.EquityOffered,
		IsPublic:      p.IsPublic,
		Industry:      p.Industry,
	}
}

func projectsToPB(projects []domain.Project) *taskv1.ListProjectsResponse {
	resp := &taskv1.ListProjectsResponse{}
	for i := range projects {
		resp.Projects = append(resp.Projects, projectToPB(&projects[i]))
	}
	return resp
}

func taskToPB(t *domain.Task) *taskv1.Task {
	return &taskv1.Task{
		Id:          t.ID,
		ProjectId:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssigneeId:  t.AssigneeID,
		Position:    t.Position,
	}
}

func notificationToPB(n *domain.Notification) *taskv1.Notification {
	return &taskv1.Notification{
		Id:          n.ID,
		UserId:      n.UserID,
		Type:        n.Type,
		Content:     n.Content,
		PayloadJson: string(n.Payload),
		Read:        n.Read,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339),
	}
}
