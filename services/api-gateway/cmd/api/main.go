package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/gh-aakash/BillionBrains/pkg/obs"
	"github.com/gh-aakash/BillionBrains/services/api-gateway/internal/clients"
	"github.com/gh-aakash/BillionBrains/services/api-gateway/internal/handlers"
)

type Cfg struct {
	IdentityGRPCAddr string `envconfig:"IDENTITY_GRPC_ADDR" default:"svc-identity:50051"`
	CoreGRPCAddr     string `envconfig:"CORE_GRPC_ADDR" default:"svc-core:50052"`
	GatewayHTTPAddr  string `envconfig:"GATEWAY_HTTP_ADDR" default:":4000"`
}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "gateway").Logger()

	_ = godotenv.Load(".env")
	var cfg Cfg
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	shutdown := obs.InitTracer("api-gateway")
	defer func() { _ = shutdown(context.Background()) }()

	c, err := clients.New(cfg.IdentityGRPCAddr, cfg.CoreGRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("build clients")
	}

	r := handlers.NewRouter(c)
	log.Info().Str("addr", cfg.GatewayHTTPAddr).Msg("gateway up")
	if err := r.Run(cfg.GatewayHTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}
