package clients

import (
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gh-aakash/BillionBrains/pkg/rpc"
	ideav1 "github.com/gh-aakash/BillionBrains/rpc/idea/v1"
	identityv1 "github.com/gh-aakash/BillionBrains/rpc/identity/v1"
	taskv1 "github.com/gh-aakash/BillionBrains/rpc/task/v1"
)

type Clients struct {
	Identity identityv1.IdentityServiceClient
	Idea     ideav1.IdeaServiceClient
	Task     taskv1.TaskServiceClient
}

// New builds lazy connections: nothing is dialed until the first call,
// so the gateway starts fine with every downstream unreachable.
func New(identityAddr, coreAddr string) (*Clients, error) {
	id, err := dial(identityAddr)
	if err != nil {
		return nil, fmt.Errorf("identity client: %w", err)
	}
	core, err := dial(coreAddr)
	if err != nil {
		return nil, fmt.Errorf("core client: %w", err)
	}
	return &Clients{
		Identity: identityv1.NewIdentityServiceClient(id),
		Idea:     ideav1.NewIdeaServiceClient(core),
		Task:     taskv1.NewTaskServiceClient(core),
	}, nil
}

func dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.Name)),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
}
