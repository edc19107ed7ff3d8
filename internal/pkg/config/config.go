package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	AppName       string              `yaml:"app_name"`
	Server        ServerConfig        `yaml:"server"`
	Agent         AgentConfig         `yaml:"agent"`
	Checker       CheckerConfig       `yaml:"checker"`
	Monitoring    MonitoringConfig    `yaml:"monitoring"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logs          LogsConfig          `yaml:"logs"`
	API           API                 `yaml:"api"`
}

// ServerConfig holds server related configuration
type ServerConfig struct {
	Port           int    `yaml:"port"`
	Host           string `yaml:"host"`
	ReadTimeout    int    `yaml:"read_timeout"`
	WriteTimeout   int    `yaml:"write_timeout"`
	IdleTimeout    int    `yaml:"idle_timeout"`
	MaxHeaderBytes int    `yaml:"max_header_bytes"`
}

// AgentConfig holds the agent related configuration
type AgentConfig struct {
	Auth AuthConfig `yaml:"auth"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
}

// CheckerConfig holds the CrystalDiskInfo invocation configuration
type CheckerConfig struct {
	// ToolPath is the directory holding DiskInfo64.exe/DiskInfo32.exe and
	// its CdiResource/ and Smart/ support directories.
	ToolPath string `yaml:"tool_path"`
	// LaunchTimeout bounds the wait on each elevated launch, in seconds.
	LaunchTimeout int `yaml:"launch_timeout"`
	// OutputWait is how long to poll for a report after a hidden launch,
	// in seconds. DirectOutputWait applies to the direct elevated launch,
	// which shows no intermediate script and tends to need longer.
	OutputWait       int `yaml:"output_wait"`
	DirectOutputWait int `yaml:"direct_output_wait"`
	// PollInterval is the output polling period in milliseconds.
	PollInterval int `yaml:"poll_interval_ms"`
}

// SmartMonitoringConfig holds disk report monitoring configuration
type SmartMonitoringConfig struct {
	Enabled       bool `yaml:"enabled"`
	CheckInterval int  `yaml:"check_interval"`
	// MinHealthPercent and MaxTemperature define when a disk counts as an
	// alert. Defaults follow CrystalDiskInfo's caution semantics.
	MinHealthPercent int `yaml:"min_health_percent"`
	MaxTemperature   int `yaml:"max_temperature"`
}

// MonitoringConfig contains configuration for monitoring
type MonitoringConfig struct {
	Smart SmartMonitoringConfig `yaml:"smart"`
}

// NotificationsConfig holds notification related configuration
type NotificationsConfig struct {
	Throttling ThrottlingConfig `yaml:"throttling"`
	Email      EmailConfig      `yaml:"email"`
}

// ThrottlingConfig holds throttling configuration for notifications
type ThrottlingConfig struct {
	Enabled           bool `yaml:"enabled"`
	CooldownPeriod    int  `yaml:"cooldown_period"`
	MaxWarningsPerDay int  `yaml:"max_warnings_per_day"`
}

// EmailConfig holds email notification configuration
type EmailConfig struct {
	Enabled         bool          `yaml:"enabled"`
	SMTPServer      string        `yaml:"smtp_server"`
	SMTPPort        int           `yaml:"smtp_port"`
	UseTLS          bool          `yaml:"use_tls"`
	UseSSL          bool          `yaml:"use_ssl"`
	Timeout         int           `yaml:"timeout"`
	SenderEmails    []SenderEmail `yaml:"sender_emails"`
	RecipientEmails []string      `yaml:"recipient_emails"`
	RetryCount      int           `yaml:"retry_count"`
	RetryInterval   int           `yaml:"retry_interval"`
}

// SenderEmail represents an email sender with credentials
type SenderEmail struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	RealName string `yaml:"real_name"`
}

// LogsConfig holds logging configuration
type LogsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Level    string `yaml:"level"`
	FilePath string `yaml:"file_path"`
	Format   string `yaml:"format"`
	Stdout   bool   `yaml:"stdout"`
}

// LoadConfig loads the configuration from the specified file path
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// SaveConfig saves the configuration to the specified file path
func SaveConfig(cfg *Config, filePath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills zero values that have sane defaults so a minimal
// config file still produces a working checker.
func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = "CheckDiskGo"
	}
	if c.Checker.LaunchTimeout <= 0 {
		c.Checker.LaunchTimeout = 120
	}
	if c.Checker.OutputWait <= 0 {
		c.Checker.OutputWait = 10
	}
	if c.Checker.DirectOutputWait <= 0 {
		c.Checker.DirectOutputWait = 25
	}
	if c.Checker.PollInterval <= 0 {
		c.Checker.PollInterval = 250
	}
	if c.Monitoring.Smart.CheckInterval <= 0 {
		c.Monitoring.Smart.CheckInterval = 3600
	}
	if c.Monitoring.Smart.MinHealthPercent <= 0 {
		c.Monitoring.Smart.MinHealthPercent = 80
	}
	if c.Monitoring.Smart.MaxTemperature <= 0 {
		c.Monitoring.Smart.MaxTemperature = 60
	}
}

// GetDefaultConfig returns the default configuration used before a config
// file has been loaded (early startup logging, tests).
func GetDefaultConfig() *Config {
	cfg := &Config{
		AppName: "CheckDiskGo",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8180,
		},
		Monitoring: MonitoringConfig{
			Smart: SmartMonitoringConfig{
				Enabled: true,
			},
		},
		Logs: LogsConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
			Stdout:  true,
		},
	}
	cfg.applyDefaults()
	return cfg
}
