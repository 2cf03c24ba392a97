package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration for TOML string parsing ("10s", "1m").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	return nil
}

type Config struct {
	Server ServerConfig `toml:"server"`
	Docker DockerConfig `toml:"docker"`
	Viewer ViewerConfig `toml:"viewer"`
}

type ServerConfig struct {
	Listen      string   `toml:"listen"`
	ReadTimeout Duration `toml:"read_timeout"`
}

type DockerConfig struct {
	// Host is a docker daemon address such as unix:///var/run/docker.sock.
	// Empty means DOCKER_HOST and friends from the environment.
	Host   string `toml:"host"`
	NodeIP string `toml:"node_ip"`
}

type ViewerConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg, toml.MetaData{})
	return cfg
}

// LoadConfig reads a TOML config file. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(cfg, md)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// setDefaults fills unset fields. read_timeout is checked against md so an
// explicit "0s" disables the timeout instead of restoring the default.
func setDefaults(cfg *Config, md toml.MetaData) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":5000"
	}
	if !md.IsDefined("server", "read_timeout") {
		cfg.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if cfg.Viewer.URL == "" {
		cfg.Viewer.URL = "http://localhost:5000"
	}
}

func validate(cfg *Config) error {
	if cfg.Server.ReadTimeout.Duration < 0 {
		return fmt.Errorf("read_timeout must be >= 0, got %s", cfg.Server.ReadTimeout.Duration)
	}
	if cfg.Viewer.Timeout.Duration < 0 {
		return fmt.Errorf("viewer timeout must be >= 0, got %s", cfg.Viewer.Timeout.Duration)
	}
	return ValidateURL(cfg.Viewer.URL)
}

// ValidateURL checks that u is an absolute http(s) URL.
func ValidateURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("viewer url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("viewer url scheme must be http or https, got %q", u)
	}
	if parsed.Host == "" {
		return fmt.Errorf("viewer url %q has no host", u)
	}
	return nil
}
