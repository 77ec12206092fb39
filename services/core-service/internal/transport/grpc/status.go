package grpc

import (
	"errors"

	"github.com/gh-aakash/BillionBrains/services/core-service/internal/service"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatus(log zerolog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrMissingField):
		return status.Error(codes.InvalidArgument, service.ErrMissingField.Error())
	default:
		log.Error().Err(err).Str("op", op).Msg("internal error")
		return status.Error(codes.Internal, "internal error")
	}
}
