// Package ideav1 holds the hand-maintained gRPC bindings for the idea
// surface of the core service. See pkg/rpc for the wire codec.
package ideav1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "billionbrains.idea.v1.IdeaService"

type Idea struct {
	Id        string `json:"id"`
	CreatorId string `json:"creator_id"`
	Title     string `json:"title"`
	Problem   string `json:"problem"`
	Solution  string `json:"solution"`
	Status    string `json:"status"` // "open" | "launched"
}

type CreateIdeaRequest struct {
	Title     string `json:"title"`
	Problem   string `json:"problem"`
	Solution  string `json:"solution"`
	CreatorId string `json:"creator_id"`
}

type GetIdeaRequest struct {
	Id string `json:"id"`
}

type ListIdeasRequest struct {
	PageSize  int32  `json:"page_size"`
	PageToken string `json:"page_token"`
}

type ListIdeasResponse struct {
	Ideas         []*Idea `json:"ideas"`
	NextPageToken string  `json:"next_page_token"`
}

type IdeaServiceClient interface {
	CreateIdea(ctx context.Context, in *CreateIdeaRequest, opts ...grpc.CallOption) (*Idea, error)
	GetIdea(ctx context.Context, in *GetIdeaRequest, opts ...grpc.CallOption) (*Idea, error)
	ListIdeas(ctx context.Context, in *ListIdeasRequest, opts ...grpc.CallOption) (*ListIdeasResponse, error)
}

type ideaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIdeaServiceClient(cc grpc.ClientConnInterface) IdeaServiceClient {
	return &ideaServiceClient{cc: cc}
}

func (c *ideaServiceClient) CreateIdea(ctx context.Context, in *CreateIdeaRequest, opts ...grpc.CallOption) (*Idea, error) {
	out := new(Idea)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/CreateIdea", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ideaServiceClient) GetIdea(ctx context.Context, in *GetIdeaRequest, opts ...grpc.CallOption) (*Idea, error) {
	out := new(Idea)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetIdea", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ideaServiceClient) ListIdeas(ctx context.Context, in *ListIdeasRequest, opts ...grpc.CallOption) (*ListIdeasResponse, error) {
	out := new(ListIdeasResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/ListIdeas", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type IdeaServiceServer interface {
	CreateIdea(ctx context.Context, in *CreateIdeaRequest) (*Idea, error)
	GetIdea(ctx context.Context, in *GetIdeaRequest) (*Idea, error)
	ListIdeas(ctx context.Context, in *ListIdeasRequest) (*ListIdeasResponse, error)
}

type UnimplementedIdeaServiceServer struct{}

func (UnimplementedIdeaServiceServer) CreateIdea(context.Context, *CreateIdeaRequest) (*Idea, error) {
	return nil, status.Error(codes.Unimplemented, "CreateIdea not implemented")
}
func (UnimplementedIdeaServiceServer) GetIdea(context.Context, *GetIdeaRequest) (*Idea, error) {
	return nil, status.Error(codes.Unimplemented, "GetIdea not implemented")
}
func (UnimplementedIdeaServiceServer) ListIdeas(context.Context, *ListIdeasRequest) (*ListIdeasResponse, error) {
	return nil, status.Error(codes.Unimplemented, "ListIdeas not implemented")
}

func RegisterIdeaServiceServer(s grpc.ServiceRegistrar, srv IdeaServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func unary[Req any](method string, invoke func(ctx context.Context, srv IdeaServiceServer, in *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	full := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(ctx, srv.(IdeaServiceServer), in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return invoke(ctx, srv.(IdeaServiceServer), req.(*Req))
		})
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IdeaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateIdea", Handler: unary("CreateIdea", func(ctx context.Context, srv IdeaServiceServer, in *CreateIdeaRequest) (any, error) {
			return srv.CreateIdea(ctx, in)
		})},
		{MethodName: "GetIdea", Handler: unary("GetIdea", func(ctx context.Context, srv IdeaServiceServer, in *GetIdeaRequest) (any, error) {
			return srv.GetIdea(ctx, in)
		})},
		{MethodName: "ListIdeas", Handler: unary("ListIdeas", func(ctx context.Context, srv IdeaServiceServer, in *ListIdeasRequest) (any, error) {
			return srv.ListIdeas(ctx, in)
		})},
	},
	Streams: []grpc.StreamDesc{},
}
