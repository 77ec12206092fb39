// Package identityv1 holds the hand-maintained gRPC bindings for the
// identity service. Messages travel over the JSON codec in pkg/rpc;
// clients must dial with grpc.CallContentSubtype(rpc.Name).
package identityv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "billionbrains.identity.v1.IdentityService"

// User is the public-safe projection of an identity. The password hash
// never crosses this boundary.
type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
}

type RegisterRequest struct {
	Username string `json:"username"` // login email
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Password string `json:"password"`
	Role     string `json:"role"` // defaults to "creator" when empty
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type GetUserRequest struct {
	Id string `json:"id"`
}

type IdentityServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error)
}

type identityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIdentityServiceClient(cc grpc.ClientConnInterface) IdentityServiceClient {
	return &identityServiceClient{cc: cc}
}

func (c *identityServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Register", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *identityServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Login", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *identityServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetUser", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type IdentityServiceServer interface {
	Register(ctx context.Context, in *RegisterRequest) (*User, error)
	Login(ctx context.Context, in *LoginRequest) (*LoginResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest) (*User, error)
}

// UnimplementedIdentityServiceServer may be embedded for forward
// compatibility.
type UnimplementedIdentityServiceServer struct{}

func (UnimplementedIdentityServiceServer) Register(context.Context, *RegisterRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "Register not implemented")
}
func (UnimplementedIdentityServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "Login not implemented")
}
func (UnimplementedIdentityServiceServer) GetUser(context.Context, *GetUserRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "GetUser not implemented")
}

func RegisterIdentityServiceServer(s grpc.ServiceRegistrar, srv IdentityServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func unary[Req any](method string, invoke func(ctx context.Context, srv IdentityServiceServer, in *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	full := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(ctx, srv.(IdentityServiceServer), in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return invoke(ctx, srv.(IdentityServiceServer), req.(*Req))
		})
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IdentityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary("Register", func(ctx context.Context, srv IdentityServiceServer, in *RegisterRequest) (any, error) {
			return srv.Register(ctx, in)
		})},
		{MethodName: "Login", Handler: unary("Login", func(ctx context.Context, srv IdentityServiceServer, in *LoginRequest) (any, error) {
			return srv.Login(ctx, in)
		})},
		{MethodName: "GetUser", Handler: unary("GetUser", func(ctx context.Context, srv IdentityServiceServer, in *GetUserRequest) (any, error) {
			return srv.GetUser(ctx, in)
		})},
	},
	Streams: []grpc.StreamDesc{},
}
