package grpc

import (
	"context"
	"errors"

	identityv1 "github.com/gh-aakash/BillionBrains/rpc/identity/v1"
	"github.com/gh-aakash/BillionBrains/services/identity-service/internal/domain"
	"github.com/gh-aakash/BillionBrains/services/identity-service/internal/service"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	identityv1.UnimplementedIdentityServiceServer
	svc *service.IdentitySvc
	log zerolog.Logger
}

func NewServer(svc *service.IdentitySvc, log zerolog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) Register(ctx context.Context, in *identityv1.RegisterRequest) (*identityv1.User, error) {
	u, err := s.svc.Register(ctx, in.Username, in.Password, in.FullName, in.Bio, in.Role)
	if err != nil {
		return nil, s.toStatus("Register", err)
	}
	return toPB(u), nil
}

func (s *Server) Login(ctx context.Context, in *identityv1.LoginRequest) (*identityv1.LoginResponse, error) {
	u, token, err := s.svc.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, s.toStatus("Login", err)
	}
	return &identityv1.LoginResponse{Token: token, User: toPB(u)}, nil
}

func (s *Server) GetUser(ctx context.Context, in *identityv1.GetUserRequest) (*identityv1.User, error) {
	u, err := s.svc.Get(ctx, in.Id)
	if err != nil {
		return nil, s.toStatus("GetUser", err)
	}
	return toPB(u), nil
}

func toPB(u *domain.User) *identityv1.User {
	return &identityv1.User{Id: u.ID, Username: u.Email, FullName: u.FullName, Bio: u.Bio}
}

func (s *Server) toStatus(op string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrMissingField):
		return status.Error(codes.InvalidArgument, service.ErrMissingField.Error())
	default:
		s.log.Error().Err(err).Str("op", op).Msg("internal error")
		return status.Error(codes.Internal, "internal error")
	}
}
