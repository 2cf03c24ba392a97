package docker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/swarm"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/errdefs"
)

type fakeEngine struct {
	info       system.Info
	infoErr    error
	containers []types.Container
	listErr    error
	inspect    map[string]types.ContainerJSON
	node       swarm.Node
	nodeErr    error
	listOpts   container.ListOptions
	inspected  []string
}

func (f *fakeEngine) Info(context.Context) (system.Info, error) { return f.info, f.infoErr }

func (f *fakeEngine) ContainerList(_ context.Context, opts container.ListOptions) ([]types.Container, error) {
	f.listOpts = opts
	return f.containers, f.listErr
}

func (f *fakeEngine) ContainerInspect(_ context.Context, id string) (types.ContainerJSON, error) {
	f.inspected = append(f.inspected, id)
	c, ok := f.inspect[id]
	if !ok {
		return types.ContainerJSON{}, errdefs.NotFound(errors.New("no such container"))
	}
	return c, nil
}

func (f *fakeEngine) NodeInspectWithRaw(context.Context, string) (swarm.Node, []byte, error) {
	return f.node, nil, f.nodeErr
}

func (f *fakeEngine) Close() error { return nil }

func newTestAdapter(f *fakeEngine) *Adapter {
	a := newAdapter(f, "")
	a.hostname = func() (string, error) { return "abc123", nil }
	a.resolveIP = func() string { return "10.0.0.5" }
	return a
}

func endpoints(pairs ...string) map[string]*network.EndpointSettings {
	m := make(map[string]*network.EndpointSettings)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = &network.EndpointSettings{IPAddress: pairs[i+1]}
	}
	return m
}

func TestDockerInfoStandalone(t *testing.T) {
	f := &fakeEngine{
		info: system.Info{Name: "host1", Swarm: swarm.Info{LocalNodeState: swarm.LocalNodeStateInactive}},
		containers: []types.Container{
			{Names: []string{"/web"}, NetworkSettings: &types.SummaryNetworkSettings{Networks: endpoints("bridge", "172.17.0.2")}},
			{Names: []string{"/db"}, NetworkSettings: &types.SummaryNetworkSettings{Networks: endpoints("bridge", "172.17.0.3")}},
		},
	}

	info, err := newTestAdapter(f).DockerInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if info.Mode != "Standalone Node" {
		t.Errorf("mode = %q, want Standalone Node", info.Mode)
	}
	if info.NodeName != "host1" {
		t.Errorf("nodeName = %q, want host1", info.NodeName)
	}
	if info.NodeIP != "10.0.0.5" {
		t.Errorf("nodeIP = %q, want 10.0.0.5", info.NodeIP)
	}
	if len(info.Containers) != 2 {
		t.Fatalf("containers = %d, want 2", len(info.Containers))
	}
	if info.Containers[0].Name != "web" || info.Containers[0].IP != "172.17.0.2" {
		t.Errorf("containers[0] = %+v", info.Containers[0])
	}
	if info.Containers[1].Name != "db" || info.Containers[1].IP != "172.17.0.3" {
		t.Errorf("containers[1] = %+v", info.Containers[1])
	}
	if f.listOpts.All {
		t.Error("only running containers should be listed")
	}
}

func TestDockerInfoSwarmAndDefaults(t *testing.T) {
	f := &fakeEngine{info: system.Info{Swarm: swarm.Info{LocalNodeState: swarm.LocalNodeStateActive}}}
	a := newTestAdapter(f)
	a.resolveIP = func() string { return "" }

	info, err := a.DockerInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode != "Swarm Mode" {
		t.Errorf("mode = %q, want Swarm Mode", info.Mode)
	}
	if info.NodeName != "Unknown" {
		t.Errorf("nodeName = %q, want Unknown", info.NodeName)
	}
	if info.NodeIP != "Unknown" {
		t.Errorf("nodeIP = %q, want Unknown", info.NodeIP)
	}
	if info.Containers == nil || len(info.Containers) != 0 {
		t.Errorf("containers = %#v, want empty non-nil slice", info.Containers)
	}
}

func TestDockerInfoNodeIPOverride(t *testing.T) {
	a := newTestAdapter(&fakeEngine{})
	a.nodeIP = "192.168.1.10"

	info, err := a.DockerInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if info.NodeIP != "192.168.1.10" {
		t.Errorf("nodeIP = %q, want override", info.NodeIP)
	}
}

func TestDockerInfoErrors(t *testing.T) {
	_, err := newTestAdapter(&fakeEngine{infoErr: errors.New("daemon down")}).DockerInfo(context.Background())
	if err == nil || !strings.Contains(err.Error(), "daemon down") {
		t.Errorf("info err = %v", err)
	}

	_, err = newTestAdapter(&fakeEngine{listErr: errors.New("list failed")}).DockerInfo(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to list containers") {
		t.Errorf("list err = %v", err)
	}
}

func TestHostInfo(t *testing.T) {
	f := &fakeEngine{
		info: system.Info{
			Name:            "host1",
			ServerVersion:   "25.0.6",
			OperatingSystem: "Ubuntu 24.04",
			NCPU:            4,
			MemTotal:        8 << 30,
			Swarm:           swarm.Info{LocalNodeState: swarm.LocalNodeStateActive, ControlAvailable: true, NodeID: "n1"},
		},
		node: swarm.Node{ManagerStatus: &swarm.ManagerStatus{Leader: true}},
		inspect: map[string]types.ContainerJSON{
			"abc123": {
				ContainerJSONBase: &types.ContainerJSONBase{ID: "abc123def456789", Name: "/info"},
				NetworkSettings:   &types.NetworkSettings{Networks: endpoints("front", "172.18.0.4", "back", "172.19.0.4")},
			},
		},
	}

	h, err := newTestAdapter(f).HostInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if h.HostName != "host1" || h.DockerVersion != "25.0.6" || h.OS != "Ubuntu 24.04" {
		t.Errorf("host = %+v", h)
	}
	if h.CPUs != 4 || h.MemTotal != 8<<30 {
		t.Errorf("cpus/mem = %d/%d", h.CPUs, h.MemTotal)
	}
	if h.Swarm.NodeType != "Cluster (Swarm Mode)" || h.Swarm.NodeRole != "Leader" {
		t.Errorf("swarm = %+v", h.Swarm)
	}
	want := "info abc123def456 172.19.0.4 back"
	got := strings.Join([]string{h.Self.Name, h.Self.ID, h.Self.IP, h.Self.Network}, " ")
	if got != want {
		t.Errorf("self = %q, want %q", got, want)
	}
}

func TestHostInfoNotContainerized(t *testing.T) {
	f := &fakeEngine{info: system.Info{Swarm: swarm.Info{LocalNodeState: swarm.LocalNodeStateInactive}}}

	h, err := newTestAdapter(f).HostInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if h.Self.Name != "N/A" || h.Self.ID != "N/A" || h.Self.IP != "N/A" || h.Self.Network != "N/A" {
		t.Errorf("self = %+v, want all N/A", h.Self)
	}
	if h.HostName != "N/A" || h.DockerVersion != "N/A" {
		t.Errorf("host = %+v, want N/A placeholders", h)
	}
	if len(f.inspected) != 1 || f.inspected[0] != "abc123" {
		t.Errorf("inspected = %v, want [abc123]", f.inspected)
	}
}

func TestSwarmRole(t *testing.T) {
	tests := []struct {
		name   string
		info   swarm.Info
		leader bool
		typ    string
		role   string
	}{
		{"inactive", swarm.Info{LocalNodeState: swarm.LocalNodeStateInactive}, false, "Standalone Node", "N/A (Not in a Swarm)"},
		{"leader", swarm.Info{LocalNodeState: swarm.LocalNodeStateActive, ControlAvailable: true}, true, "Cluster (Swarm Mode)", "Leader"},
		{"manager", swarm.Info{LocalNodeState: swarm.LocalNodeStateActive, ControlAvailable: true}, false, "Cluster (Swarm Mode)", "Manager"},
		{"worker", swarm.Info{LocalNodeState: swarm.LocalNodeStateActive}, false, "Cluster (Swarm Mode)", "Worker"},
		{"pending", swarm.Info{LocalNodeState: swarm.LocalNodeStatePending}, false, "Cluster (Swarm Mode)", "Unknown (pending)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := swarmRole(tt.info, tt.leader)
			if got.NodeType != tt.typ || got.NodeRole != tt.role {
				t.Errorf("swarmRole = %+v, want %s/%s", got, tt.typ, tt.role)
			}
		})
	}
}

func TestToContainerNoNetwork(t *testing.T) {
	c := toContainer(types.Container{Names: []string{"/lonely"}})
	if c.Name != "lonely" || c.IP != "" {
		t.Errorf("container = %+v", c)
	}
	c = toContainer(types.Container{})
	if c.Name != "" {
		t.Errorf("unnamed container = %+v", c)
	}
}

func TestHostInfoGatewayInsideContainer(t *testing.T) {
	f := &fakeEngine{
		info: system.Info{Swarm: swarm.Info{LocalNodeState: swarm.LocalNodeStateInactive}},
		inspect: map[string]types.ContainerJSON{
			"abc123": {
				ContainerJSONBase: &types.ContainerJSONBase{ID: "abc123def456789", Name: "/info"},
				NetworkSettings: &types.NetworkSettings{Networks: map[string]*network.EndpointSettings{
					"bridge": {IPAddress: "172.17.0.4", Gateway: "172.17.0.1"},
				}},
			},
		},
	}

	h, err := newTestAdapter(f).HostInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if h.HostIP != "172.17.0.1" {
		t.Errorf("hostIP = %q, want gateway 172.17.0.1", h.HostIP)
	}
	if h.Self.IP != "172.17.0.4" {
		t.Errorf("self ip = %q, want 172.17.0.4", h.Self.IP)
	}
}

func TestHostInfoHostIPOutsideContainer(t *testing.T) {
	f := &fakeEngine{info: system.Info{Swarm: swarm.Info{LocalNodeState: swarm.LocalNodeStateInactive}}}

	h, err := newTestAdapter(f).HostInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if h.HostIP != "10.0.0.5" {
		t.Errorf("hostIP = %q, want resolved node IP 10.0.0.5", h.HostIP)
	}
}

func TestHostInfoNodeIPOverridesGateway(t *testing.T) {
	f := &fakeEngine{
		info: system.Info{Swarm: swarm.Info{LocalNodeState: swarm.LocalNodeStateInactive}},
		inspect: map[string]types.ContainerJSON{
			"abc123": {
				ContainerJSONBase: &types.ContainerJSONBase{ID: "abc123"},
				NetworkSettings: &types.NetworkSettings{Networks: map[string]*network.EndpointSettings{
					"bridge": {IPAddress: "172.17.0.4", Gateway: "172.17.0.1"},
				}},
			},
		},
	}
	a := newTestAdapter(f)
	a.nodeIP = "192.168.1.10"

	h, err := a.HostInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if h.HostIP != "192.168.1.10" {
		t.Errorf("hostIP = %q, want configured 192.168.1.10", h.HostIP)
	}
}

func TestHostInfoNodeInspectFailure(t *testing.T) {
	f := &fakeEngine{
		info: system.Info{
			Swarm: swarm.Info{LocalNodeState: swarm.LocalNodeStateActive, ControlAvailable: true, NodeID: "n1"},
		},
		nodeErr: errors.New("rpc error: context deadline exceeded"),
	}

	h, err := newTestAdapter(f).HostInfo(context.Background())
	if err != nil {
		t.Fatalf("node inspect failure should not fail the page: %v", err)
	}
	if h.Swarm.NodeType != "Cluster (Swarm Mode)" || h.Swarm.NodeRole != "Manager" {
		t.Errorf("swarm = %+v, want Cluster (Swarm Mode)/Manager", h.Swarm)
	}
}
