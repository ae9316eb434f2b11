package config

import "time"

// Config is the scalekit configuration file.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `yaml:"driver" validate:"required,storage_driver"`
	Path   string `yaml:"path" validate:"required_unless=Driver memory"`
}

// HistoryConfig tunes undo grouping and depth.
type HistoryConfig struct {
	Limit    int           `yaml:"limit" validate:"min=1,max=1000"`
	Debounce time.Duration `yaml:"debounce" validate:"min=0,max=10s"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,log_level"`
	Human bool   `yaml:"human"`
}

// MetricsConfig enables the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Storage: StorageConfig{Driver: "file"},
		History: HistoryConfig{Limit: 25, Debounce: 200 * time.Millisecond},
		Log:     LogConfig{Level: "info", Human: true},
		Metrics: MetricsConfig{Addr: "127.0.0.1:9464"},
	}
}
