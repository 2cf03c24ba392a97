package docker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/swarm"
	"github.com/melih/lighthouse-info/internal/core/domain"
)

func modeOf(s swarm.Info) string {
	if s.LocalNodeState == swarm.LocalNodeStateActive {
		return domain.ModeSwarm
	}
	return domain.ModeStandalone
}

func swarmRole(s swarm.Info, leader bool) domain.SwarmInfo {
	if s.LocalNodeState == swarm.LocalNodeStateInactive {
		return domain.SwarmInfo{NodeType: "Standalone Node", NodeRole: "N/A (Not in a Swarm)"}
	}

	info := domain.SwarmInfo{NodeType: "Cluster (Swarm Mode)"}
	switch {
	case s.ControlAvailable && leader:
		info.NodeRole = "Leader"
	case s.ControlAvailable:
		info.NodeRole = "Manager"
	case s.LocalNodeState == swarm.LocalNodeStateActive:
		info.NodeRole = "Worker"
	default:
		info.NodeRole = fmt.Sprintf("Unknown (%s)", s.LocalNodeState)
	}
	return info
}

func toContainer(c types.Container) domain.Container {
	var networks map[string]*network.EndpointSettings
	if c.NetworkSettings != nil {
		networks = c.NetworkSettings.Networks
	}
	_, ip := firstNetwork(networks)
	return domain.Container{Name: containerName(c.Names), IP: ip}
}

// toSelf converts an inspect result and returns the gateway of the same
// network the reported IP comes from.
func toSelf(c types.ContainerJSON) (self domain.SelfInfo, gateway string) {
	self = domain.SelfInfo{Name: "N/A", ID: "N/A", IP: "N/A", Network: "N/A"}
	if c.ContainerJSONBase != nil {
		self.Name = orNA(strings.TrimPrefix(c.Name, "/"))
		self.ID = orNA(shortID(c.ID))
	}
	if c.NetworkSettings != nil {
		networks := c.NetworkSettings.Networks
		if name, ip := firstNetwork(networks); name != "" {
			self.Network = name
			self.IP = orNA(ip)
			if ep := networks[name]; ep != nil {
				gateway = ep.Gateway
			}
		}
	}
	return self, gateway
}

// firstNetwork picks the alphabetically first network so the reported IP is
// stable across calls.
func firstNetwork(networks map[string]*network.EndpointSettings) (name, ip string) {
	if len(networks) == 0 {
		return "", ""
	}
	names := make([]string, 0, len(networks))
	for n := range networks {
		names = append(names, n)
	}
	sort.Strings(names)
	name = names[0]
	if ep := networks[name]; ep != nil {
		ip = ep.IPAddress
	}
	return name, ip
}

func containerName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimPrefix(names[0], "/")
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
