package domain

// ModeDetecting is shown until the first docker info payload arrives.
const ModeDetecting = "Detecting..."

// Modes reported by the info service.
const (
	ModeSwarm      = "Swarm Mode"
	ModeStandalone = "Standalone Node"
)

// DockerInfo is the payload of GET /api/docker-info. The viewer renders it
// as-is, so it doubles as the view's display state.
type DockerInfo struct {
	Mode       string      `json:"mode"`
	NodeName   string      `json:"nodeName"`
	NodeIP     string      `json:"nodeIP"`
	Containers []Container `json:"containers"`
}

// Detecting returns the placeholder state shown before any data is loaded.
func Detecting() DockerInfo {
	return DockerInfo{Mode: ModeDetecting, Containers: []Container{}}
}

// HostInfo summarizes the docker host and the container serving the request.
type HostInfo struct {
	HostName      string    `json:"hostName"`
	HostIP        string    `json:"hostIP"`
	DockerVersion string    `json:"dockerVersion"`
	OS            string    `json:"os"`
	CPUs          int       `json:"cpus"`
	MemTotal      int64     `json:"memTotal"`
	Swarm         SwarmInfo `json:"swarm"`
	Self          SelfInfo  `json:"self"`
}

// SwarmInfo describes the node's place in a swarm, if any.
type SwarmInfo struct {
	NodeType string `json:"nodeType"`
	NodeRole string `json:"nodeRole"`
}

// SelfInfo is the container this process runs in. Fields are "N/A" when the
// process is not containerized.
type SelfInfo struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	IP      string `json:"ip"`
	Network string `json:"network"`
}
