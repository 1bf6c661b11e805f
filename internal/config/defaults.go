package config

import "github.com/bayurmdn/garuda-saham-insight/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 4250,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/garuda",
			},
		},
		Maintenance: MaintenanceConfig{
			Enabled:    true,
			GCSchedule: "0 3 * * *",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console", "file"},
		},
	}
}
