package config

import "time"

type Config struct {
	General  `mapstructure:"general"`
	Rest     `mapstructure:"rest"`
	DB       `mapstructure:"db"`
	Tracing  `mapstructure:"tracing"`
	Snapshot `mapstructure:"snapshot"`
}

type General struct {
	DataDir string `mapstructure:"data_dir"`
	Debug   bool   `mapstructure:"debug"`
}

type Rest struct {
	Addr string `mapstructure:"addr"`
	Port int    `mapstructure:"port"`
}

type DB struct {
	Driver      string        `mapstructure:"driver"`       // sqlite, clover or memory
	Path        string        `mapstructure:"path"`         // sqlite file or clover directory; empty means under data_dir
	LockTimeout time.Duration `mapstructure:"lock_timeout"` // how long to wait for a clover store held by another process
}

type Tracing struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	Insecure    bool   `mapstructure:"insecure"`
	ServiceName string `mapstructure:"service_name"`
}

type Snapshot struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"` // standard cron expression
	Dir      string `mapstructure:"dir"`
	Keep     int    `mapstructure:"keep"` // snapshots kept after each run, 0 keeps all
}
