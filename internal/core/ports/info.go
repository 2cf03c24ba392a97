package ports

import (
	"context"

	"github.com/melih/lighthouse-info/internal/core/domain"
)

// InfoService reports what the docker engine knows about this node.
// Implementations may talk to Docker, Podman, or a fake in tests.
type InfoService interface {
	DockerInfo(ctx context.Context) (domain.DockerInfo, error)
	HostInfo(ctx context.Context) (domain.HostInfo, error)
}

// InfoFetcher retrieves a DockerInfo payload from a remote info service.
type InfoFetcher interface {
	Fetch(ctx context.Context) (domain.DockerInfo, error)
}
