package main

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/gh-aakash/BillionBrains/pkg/auth"
	"github.com/gh-aakash/BillionBrains/pkg/db"
	"github.com/gh-aakash/BillionBrains/pkg/obs"
	_ "github.com/gh-aakash/BillionBrains/pkg/rpc"
	identityv1 "github.com/gh-aakash/BillionBrains/rpc/identity/v1"
	"github.com/gh-aakash/BillionBrains/services/identity-service/internal/repository"
	"github.com/gh-aakash/BillionBrains/services/identity-service/internal/service"
	tgrpc "github.com/gh-aakash/BillionBrains/services/identity-service/internal/transport/grpc"
)

type Cfg struct {
	PGIdentityDSN    string `envconfig:"PG_IDENTITY_DSN" required:"true"`
	JWTSecret        string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin     int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`
	IdentityGRPCAddr string `envconfig:"IDENTITY_GRPC_ADDR" default:":50051"`
}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "identity").Logger()

	_ = godotenv.Load(".env")
	var cfg Cfg
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	shutdown := obs.InitTracer("identity-service")
	defer func() { _ = shutdown(context.Background()) }()

	gdb, err := db.Open(cfg.PGIdentityDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open db")
	}

	repo := repository.NewUserRepo(gdb)
	if err := repo.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	issuer := auth.NewIssuer([]byte(cfg.JWTSecret), time.Duration(cfg.JWTExpireMin)*time.Minute)
	svc := service.NewIdentitySvc(repo, issuer)

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	identityv1.RegisterIdentityServiceServer(grpcServer, tgrpc.NewServer(svc, log))

	lis, err := net.Listen("tcp", cfg.IdentityGRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
	log.Info().Str("addr", cfg.IdentityGRPCAddr).Msg("identity gRPC up")

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}
