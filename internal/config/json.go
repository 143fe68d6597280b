package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version         string `json:"version"`
		DisableSessions bool   `json:"disable_sessions"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		WriteTimeout   Duration `json:"write_timeout"`
		PingInterval   Duration `json:"ping_interval"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		WriteTimeout   Duration `json:"write_timeout"`
		PingInterval   Duration `json:"ping_interval"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionIdleTTL Duration `json:"session_idle_ttl"`
		ReapInterval   Duration `json:"reap_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:         jsonCfg.App.Version,
			DisableSessions: jsonCfg.App.DisableSessions,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			WriteTimeout:   time.Duration(jsonCfg.Server.WriteTimeout),
			PingInterval:   time.Duration(jsonCfg.Server.PingInterval),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			WriteTimeout:   time.Duration(jsonCfg.Adapter.WriteTimeout),
			PingInterval:   time.Duration(jsonCfg.Adapter.PingInterval),
		},
		Workers: Workers{
			SessionIdleTTL: time.Duration(jsonCfg.Workers.SessionIdleTTL),
			ReapInterval:   time.Duration(jsonCfg.Workers.ReapInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
