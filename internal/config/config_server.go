package config

import "fmt"

// ServerConfig is the relay's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Workers Workers
}

// GetServerConfig builds and validates the relay configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}
