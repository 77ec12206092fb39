package grpc

import (
	"context"

	ideav1 "github.com/gh-aakash/BillionBrains/rpc/idea/v1"
	"github.com/gh-aakash/BillionBrains/services/core-service/internal/domain"
	"github.com/gh-aakash/BillionBrains/services/core-service/internal/service"

	"github.com/rs/zerolog"
)

const listIdeasLimit = 20

type IdeaServer struct {
	ideav1.UnimplementedIdeaServiceServer
	svc *service.IdeaSvc
	log zerolog.Logger
}

func NewIdeaServer(svc *service.IdeaSvc, log zerolog.Logger) *IdeaServer {
	return &IdeaServer{svc: svc, log: log}
}

func (s *IdeaServer) CreateIdea(ctx context.Context, in *ideav1.CreateIdeaRequest) (*ideav1.Idea, error) {
	i, err := s.svc.Create(ctx, in.CreatorId, in.Title, in.Problem, in.Solution)
	if err != nil {
		return nil, toStatus(s.log, "CreateIdea", err)
	}
	return ideaToPB(i), nil
}

func (s *IdeaServer) GetIdea(ctx context.Context, in *ideav1.GetIdeaRequest) (*ideav1.Idea, error) {
	i, err := s.svc.Get(ctx, in.Id)
	if err != nil {
		return nil, toStatus(s.log, "GetIdea", err)
	}
	return ideaToPB(i), nil
}

func (s *IdeaServer) ListIdeas(ctx context.Context, in *ideav1.ListIdeasRequest) (*ideav1.ListIdeasResponse, error) {
	limit := int(in.PageSize)
	if limit <= 0 || limit > listIdeasLimit {
		limit = listIdeasLimit
	}
	ideas, err := s.svc.List(ctx, limit)
	if err != nil {
		return nil, toStatus(s.log, "ListIdeas", err)
	}
	resp := &ideav1.ListIdeasResponse{}
	for i := range ideas {
		resp.Ideas = append(resp.Ideas, ideaToPB(&ideas[i]))
	}
	return resp, nil
}

func ideaToPB(i *domain.Idea) *ideav1.Idea {
	return &ideav1.Idea{
		Id:        i.ID,
		CreatorId: i.CreatorID,
		Title:     i.Title,
		Problem:   i.Problem,
		Solution:  i.Solution,
		Status:    i.Status,
	}
}
