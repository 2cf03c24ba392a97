package domain

// Container is a running container as shown in the containers section.
type Container struct {
	Name string `json:"name"`
	IP   string `json:"ip"`
}
