package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Display    DisplayConfig  `mapstructure:"display"`
	Log        LogConfig      `mapstructure:"log"`
	Events     EventsConfig   `mapstructure:"events"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

// DefaultsConfig holds the ledger and caller identity used when the
// --ledger and --from flags are omitted.
type DefaultsConfig struct {
	Ledger   string `mapstructure:"ledger"`
	Identity string `mapstructure:"identity"`
}

type DisplayConfig struct {
	Decimals int32  `mapstructure:"decimals"`
	Symbol   string `mapstructure:"symbol"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type EventsConfig struct {
	Kafka KafkaConfig `mapstructure:"kafka"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "sqlite", Path: ""},
		Display:  DisplayConfig{Decimals: 0, Symbol: "wei"},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Events: EventsConfig{
			Kafka: KafkaConfig{Topic: "splitter.events"},
		},
	}
}
