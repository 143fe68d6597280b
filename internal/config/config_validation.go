// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Per-binary checks live in
// [ClientConfig.validate] and [ServerConfig.validate]; this one only rejects
// values that are wrong for both.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.WriteTimeout < 0 || cfg.Adapter.WriteTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.WriteTimeout <= 0 || cfg.Adapter.PingInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.WriteTimeout <= 0 || cfg.Server.PingInterval <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.ReapInterval <= 0 || cfg.Workers.SessionIdleTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
