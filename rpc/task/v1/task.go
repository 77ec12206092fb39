// Package taskv1 holds the hand-maintained gRPC bindings for the
// project/task/notification surface of the core service. See pkg/rpc
// for the wire codec.
package taskv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "billionbrains.task.v1.TaskService"

type Project struct {
	Id            string  `json:"id"`
	OwnerId       string  `json:"owner_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	FundingGoal   float64 `json:"funding_goal"`
	EquityOffered float64 `json:"equity_offered"`
	IsPublic      bool    `json:"is_public"`
	Industry      string  `json:"industry"`
}

type Task struct {
	Id          string `json:"id"`
	ProjectId   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssigneeId  string `json:"assignee_id"`
	Position    int32  `json:"position"`
}

type Notification struct {
	Id          string `json:"id"`
	UserId      string `json:"user_id"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	PayloadJson string `json:"payload_json"`
	Read        bool   `json:"read"`
	CreatedAt   string `json:"created_at"` // RFC 3339
}

type CreateProjectRequest struct {
	OwnerId     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListProjectsRequest struct {
	OwnerId string `json:"owner_id"`
}

type ListProjectsResponse struct {
	Projects []*Project `json:"projects"`
}

type ListPublicProjectsRequest struct {
	IndustryFilter string `json:"industry_filter"`
}

// UpdateProjectRequest applies only supplied fields: empty strings,
// funding_goal <= 0 and equity_offered < 0 are left untouched.
// IsPublic has no absent state and is always written.
type UpdateProjectRequest struct {
	Id            string  `json:"id"`
	Description   string  `json:"description"`
	FundingGoal   float64 `json:"funding_goal"`
	EquityOffered float64 `json:"equity_offered"`
	IsPublic      bool    `json:"is_public"`
	Industry      string  `json:"industry"`
}

type CreateTaskRequest struct {
	ProjectId   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	AssigneeId  string `json:"assignee_id"`
}

type ListTasksRequest struct {
	ProjectId string `json:"project_id"`
}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

// UpdateTaskRequest applies only supplied fields. Position uses a
// negative value as the no-change sentinel, so callers that do not mean
// to reorder must send -1.
type UpdateTaskRequest struct {
	Id       string `json:"id"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Position int32  `json:"position"`
}

type UpdateTaskResponse struct {
	Task *Task `json:"task"`
}

type LaunchProjectRequest struct {
	IdeaId      string `json:"idea_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
}

type CreateNotificationRequest struct {
	UserId      string `json:"user_id"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	PayloadJson string `json:"payload_json"`
}

type ListNotificationsRequest struct {
	UserId string `json:"user_id"`
}

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
}

type TaskServiceClient interface {
	CreateProject(ctx context.Context, in *CreateProjectRequest, opts ...grpc.CallOption) (*Project, error)
	ListProjects(ctx context.Context, in *ListProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error)
	ListPublicProjects(ctx context.Context, in *ListPublicProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error)
	UpdateProject(ctx context.Context, in *UpdateProjectRequest, opts ...grpc.CallOption) (*Project, error)
	CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*Task, error)
	ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error)
	LaunchProject(ctx context.Context, in *LaunchProjectRequest, opts ...grpc.CallOption) (*Project, error)
	CreateNotification(ctx context.Context, in *CreateNotificationRequest, opts ...grpc.CallOption) (*Notification, error)
	ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error)
}

type taskServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTaskServiceClient(cc grpc.ClientConnInterface) TaskServiceClient {
	return &taskServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskServiceClient) CreateProject(ctx context.Context, in *CreateProjectRequest, opts ...grpc.CallOption) (*Project, error) {
	return invoke[Project](ctx, c.cc, "CreateProject", in, opts)
}

func (c *taskServiceClient) ListProjects(ctx context.Context, in *ListProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error) {
	return invoke[ListProjectsResponse](ctx, c.cc, "ListProjects", in, opts)
}

func (c *taskServiceClient) ListPublicProjects(ctx context.Context, in *ListPublicProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error) {
	return invoke[ListProjectsResponse](ctx, c.cc, "ListPublicProjects", in, opts)
}

func (c *taskServiceClient) UpdateProject(ctx context.Context, in *UpdateProjectRequest, opts ...grpc.CallOption) (*Project, error) {
	return invoke[Project](ctx, c.cc, "UpdateProject", in, opts)
}

func (c *taskServiceClient) CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*Task, error) {
	return invoke[Task](ctx, c.cc, "CreateTask", in, opts)
}

func (c *taskServiceClient) ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	return invoke[ListTasksResponse](ctx, c.cc, "ListTasks", in, opts)
}

func (c *taskServiceClient) UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error) {
	return invoke[UpdateTaskResponse](ctx, c.cc, "UpdateTask", in, opts)
}

func (c *taskServiceClient) LaunchProject(ctx context.Context, in *LaunchProjectRequest, opts ...grpc.CallOption) (*Project, error) {
	return invoke[Project](ctx, c.cc, "LaunchProject", in, opts)
}

func (c *taskServiceClient) CreateNotification(ctx context.Context, in *CreateNotificationRequest, opts ...grpc.CallOption) (*Notification, error) {
	return invoke[Notification](ctx, c.cc, "CreateNotification", in, opts)
}

func (c *taskServiceClient) ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	return invoke[ListNotificationsResponse](ctx, c.cc, "ListNotifications", in, opts)
}

type TaskServiceServer interface {
	CreateProject(ctx context.Context, in *CreateProjectRequest) (*Project, error)
	ListProjects(ctx context.Context, in *ListProjectsRequest) (*ListProjectsResponse, error)
	ListPublicProjects(ctx context.Context, in *ListPublicProjectsRequest) (*ListProjectsResponse, error)
	UpdateProject(ctx context.Context, in *UpdateProjectRequest) (*Project, error)
	CreateTask(ctx context.Context, in *CreateTaskRequest) (*Task, error)
	ListTasks(ctx context.Context, in *ListTasksRequest) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, in *UpdateTaskRequest) (*UpdateTaskResponse, error)
	LaunchProject(ctx context.Context, in *LaunchProjectRequest) (*Project, error)
	CreateNotification(ctx context.Context, in *CreateNotificationRequest) (*Notification, error)
	ListNotifications(ctx context.Context, in *ListNotificationsRequest) (*ListNotificationsResponse, error)
}

type UnimplementedTaskServiceServer struct{}

func (UnimplementedTaskServiceServer) CreateProject(context.Context, *CreateProjectRequest) (*Project, error) {
	return nil, status.Error(codes.Unimplemented, "CreateProject not implemented")
}
func (UnimplementedTaskServiceServer) ListProjects(context.Context, *ListProjectsRequest) (*ListProjectsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "ListProjects not implemented")
}
func (UnimplementedTaskServiceServer) ListPublicProjects(context.Context, *ListPublicProjectsRequest) (*ListProjectsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "ListPublicProjects not implemented")
}
func (UnimplementedTaskServiceServer) UpdateProject(context.Context, *UpdateProjectRequest) (*Project, error) {
	return nil, status.Error(codes.Unimplemented, "UpdateProject not implemented")
}
func (UnimplementedTaskServiceServer) CreateTask(context.Context, *CreateTaskRequest) (*Task, error) {
	return nil, status.Error(codes.Unimplemented, "CreateTask not implemented")
}
func (UnimplementedTaskServiceServer) ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "ListTasks not implemented")
}
func (UnimplementedTaskServiceServer) UpdateTask(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "UpdateTask not implemented")
}
func (UnimplementedTaskServiceServer) LaunchProject(context.Context, *LaunchProjectRequest) (*Project, error) {
	return nil, status.Error(codes.Unimplemented, "LaunchProject not implemented")
}
func (UnimplementedTaskServiceServer) CreateNotification(context.Context, *CreateNotificationRequest) (*Notification, error) {
	return nil, status.Error(codes.Unimplemented, "CreateNotification not implemented")
}
func (UnimplementedTaskServiceServer) ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "ListNotifications not implemented")
}

func RegisterTaskServiceServer(s grpc.ServiceRegistrar, srv TaskServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func unary[Req any](method string, invoke func(ctx context.Context, srv TaskServiceServer, in *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	full := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(ctx, srv.(TaskServiceServer), in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return invoke(ctx, srv.(TaskServiceServer), req.(*Req))
		})
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TaskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateProject", Handler: unary("CreateProject", func(ctx context.Context, srv TaskServiceServer, in *CreateProjectRequest) (any, error) {
			return srv.CreateProject(ctx, in)
		})},
		{MethodName: "ListProjects", Handler: unary("ListProjects", func(ctx context.Context, srv TaskServiceServer, in *ListProjectsRequest) (any, error) {
			return srv.ListProjects(ctx, in)
		})},
		{MethodName: "ListPublicProjects", Handler: unary("ListPublicProjects", func(ctx context.Context, srv TaskServiceServer, in *ListPublicProjectsRequest) (any, error) {
			return srv.ListPublicProjects(ctx, in)
		})},
		{MethodName: "UpdateProject", Handler: unary("UpdateProject", func(ctx context.Context, srv TaskServiceServer, in *UpdateProjectRequest) (any, error) {
			return srv.UpdateProject(ctx, in)
		})},
		{MethodName: "CreateTask", Handler: unary("CreateTask", func(ctx context.Context, srv TaskServiceServer, in *CreateTaskRequest) (any, error) {
			return srv.CreateTask(ctx, in)
		})},
		{MethodName: "ListTasks", Handler: unary("ListTasks", func(ctx context.Context, srv TaskServiceServer, in *ListTasksRequest) (any, error) {
			return srv.ListTasks(ctx, in)
		})},
		{MethodName: "UpdateTask", Handler: unary("UpdateTask", func(ctx context.Context, srv TaskServiceServer, in *UpdateTaskRequest) (any, error) {
			return srv.UpdateTask(ctx, in)
		})},
		{MethodName: "LaunchProject", Handler: unary("LaunchProject", func(ctx context.Context, srv TaskServiceServer, in *LaunchProjectRequest) (any, error) {
			return srv.LaunchProject(ctx, in)
		})},
		{MethodName: "CreateNotification", Handler: unary("CreateNotification", func(ctx context.Context, srv TaskServiceServer, in *CreateNotificationRequest) (any, error) {
			return srv.CreateNotification(ctx, in)
		})},
		{MethodName: "ListNotifications", Handler: unary("ListNotifications", func(ctx context.Context, srv TaskServiceServer, in *ListNotificationsRequest) (any, error) {
			return srv.ListNotifications(ctx, in)
		})},
	},
	Streams: []grpc.StreamDesc{},
}
