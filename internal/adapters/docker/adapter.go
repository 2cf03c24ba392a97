package docker

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/swarm"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/client"
	"github.com/melih/lighthouse-info/internal/config"
	"github.com/melih/lighthouse-info/internal/core/domain"
)

// engine is the subset of the Docker SDK client the adapter uses.
type engine interface {
	Info(ctx context.Context) (system.Info, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	NodeInspectWithRaw(ctx context.Context, nodeID string) (swarm.Node, []byte, error)
	Close() error
}

// Adapter implements ports.InfoService using the Docker SDK.
type Adapter struct {
	cli    engine
	nodeIP string

	// Overridable in tests.
	hostname  func() (string, error)
	resolveIP func() string
}

// NewAdapter creates a new Docker adapter instance.
func NewAdapter(cfg config.DockerConfig) (*Adapter, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}
	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return newAdapter(cli, cfg.NodeIP), nil
}

func newAdapter(cli engine, nodeIP string) *Adapter {
	return &Adapter{
		cli:       cli,
		nodeIP:    nodeIP,
		hostname:  os.Hostname,
		resolveIP: LocalIP,
	}
}

// Close closes the Docker client.
func (a *Adapter) Close() error {
	return a.cli.Close()
}

// DockerInfo reports the runtime mode, this node, and its running containers.
func (a *Adapter) DockerInfo(ctx context.Context) (domain.DockerInfo, error) {
	info, err := a.cli.Info(ctx)
	if err != nil {
		return domain.DockerInfo{}, fmt.Errorf("failed to get docker info: %w", err)
	}

	list, err := a.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return domain.DockerInfo{}, fmt.Errorf("failed to list containers: %w", err)
	}

	containers := make([]domain.Container, 0, len(list))
	for _, c := range list {
		containers = append(containers, toContainer(c))
	}

	name := info.Name
	if name == "" {
		name = "Unknown"
	}

	return domain.DockerInfo{
		Mode:       modeOf(info.Swarm),
		NodeName:   name,
		NodeIP:     a.localIP(),
		Containers: containers,
	}, nil
}

// HostInfo gathers the host summary shown on the index page.
func (a *Adapter) HostInfo(ctx context.Context) (domain.HostInfo, error) {
	info, err := a.cli.Info(ctx)
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("failed to get docker info: %w", err)
	}

	self, gateway, err := a.selfInfo(ctx)
	if err != nil {
		return domain.HostInfo{}, err
	}

	return domain.HostInfo{
		HostName:      orNA(info.Name),
		HostIP:        a.hostIP(gateway),
		DockerVersion: orNA(info.ServerVersion),
		OS:            orNA(info.OperatingSystem),
		CPUs:          info.NCPU,
		MemTotal:      info.MemTotal,
		Swarm:         a.swarmInfo(ctx, info.Swarm),
		Self:          self,
	}, nil
}

// hostIP is the docker host's address as seen from this process. Inside a
// container that is the gateway of its network; outside, the node's own IP.
func (a *Adapter) hostIP(gateway string) string {
	if a.nodeIP == "" && gateway != "" {
		return gateway
	}
	return a.localIP()
}

func (a *Adapter) localIP() string {
	if a.nodeIP != "" {
		return a.nodeIP
	}
	if ip := a.resolveIP(); ip != "" {
		return ip
	}
	return "Unknown"
}

// swarmInfo resolves the node role. Telling a leader from a plain manager
// needs a node inspect, which only managers are allowed to do. A manager
// whose inspect fails (lost quorum, for one) is reported as a plain manager.
func (a *Adapter) swarmInfo(ctx context.Context, s swarm.Info) domain.SwarmInfo {
	leader := false
	if s.ControlAvailable && s.NodeID != "" {
		node, _, err := a.cli.NodeInspectWithRaw(ctx, s.NodeID)
		if err != nil {
			slog.Warn("failed to inspect swarm node", "node", s.NodeID, "error", err)
		} else {
			leader = node.ManagerStatus != nil && node.ManagerStatus.Leader
		}
	}
	return swarmRole(s, leader)
}

// selfInfo looks up the container this process runs in by its hostname,
// which docker sets to the short container ID. It also returns the gateway
// of the container's network, empty when not containerized.
func (a *Adapter) selfInfo(ctx context.Context) (domain.SelfInfo, string, error) {
	na := domain.SelfInfo{Name: "N/A", ID: "N/A", IP: "N/A", Network: "N/A"}

	host, err := a.hostname()
	if err != nil || host == "" {
		return na, "", nil
	}

	c, err := a.cli.ContainerInspect(ctx, host)
	if err != nil {
		if client.IsErrNotFound(err) {
			return na, "", nil
		}
		return domain.SelfInfo{}, "", fmt.Errorf("failed to inspect container %s: %w", host, err)
	}
	self, gateway := toSelf(c)
	return self, gateway, nil
}
