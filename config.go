package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds the application configuration
type Config struct {
	// BindAddress is the address the operations server listens on (e.g. "0.0.0.0:8080").
	// Empty disables the server.
	BindAddress string `yaml:"bind_address"`
	// SerialPort is the path to the command terminal's serial port (e.g. "/dev/ttyUSB0")
	SerialPort string `yaml:"serial_port"`
	// BaudRate is the baud rate of the serial port (e.g. 115200)
	BaudRate int `yaml:"baud_rate"`
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string `yaml:"log_level"`
	// LogFile, when set, sends logs to a rotating file instead of stderr
	LogFile string `yaml:"log_file"`
	// LogMaxSizeMB is the size at which the log file is rotated
	LogMaxSizeMB int `yaml:"log_max_size_mb"`
	// LogMaxBackups is the number of rotated log files kept
	LogMaxBackups int `yaml:"log_max_backups"`
	// LogMaxAgeDays is how long rotated log files are kept
	LogMaxAgeDays int `yaml:"log_max_age_days"`

	// MaxRPM is the highest velocity set-point the sv command accepts
	MaxRPM float64 `yaml:"max_rpm"`
	// QueueSize is the capacity of the motor task's command queue
	QueueSize int `yaml:"queue_size"`
	// QueueWaitMS is how long a command may wait for room in the queue
	QueueWaitMS int `yaml:"queue_wait_ms"`
	// LineCapacity is the size of the input line buffer in bytes
	LineCapacity int `yaml:"line_capacity"`
	// OutputCapacity is the size of the command output buffer in bytes
	OutputCapacity int `yaml:"output_capacity"`
	// PulseMS is the status indicator pulse length per command line
	PulseMS int `yaml:"pulse_ms"`
}

// QueueWait returns QueueWaitMS as a duration
func (c *Config) QueueWait() time.Duration {
	return time.Duration(c.QueueWaitMS) * time.Millisecond
}

// Pulse returns PulseMS as a duration
func (c *Config) Pulse() time.Duration {
	return time.Duration(c.PulseMS) * time.Millisecond
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.BindAddress = "0.0.0.0:8080"
		c.SerialPort = "/dev/ttyUSB0"
		c.BaudRate = 115200
		c.LogLevel = "info"
		c.LogMaxSizeMB = 10
		c.LogMaxBackups = 3
		c.LogMaxAgeDays = 28
		c.MaxRPM = 3000
		c.QueueSize = 10
		c.QueueWaitMS = 100
		c.LineCapacity = 64
		c.OutputCapacity = 256
		c.PulseMS = 200
		return nil
	}
}

// WithFile loads configuration from a YAML file. Keys missing from the
// file keep their current value. An empty path is a no-op.
func WithFile(path string) ConfigOption {
	return func(c *Config) error {
		if path == "" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if addr, ok := os.LookupEnv("BIND_ADDRESS"); ok {
			c.BindAddress = addr
		}

		if serial := os.Getenv("SERIAL_PORT"); serial != "" {
			c.SerialPort = serial
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		if file := os.Getenv("LOG_FILE"); file != "" {
			c.LogFile = file
		}

		setInt(&c.BaudRate, os.Getenv("BAUD_RATE"))
		setInt(&c.QueueSize, os.Getenv("QUEUE_SIZE"))
		setInt(&c.QueueWaitMS, os.Getenv("QUEUE_WAIT_MS"))
		setInt(&c.LineCapacity, os.Getenv("LINE_CAPACITY"))
		setInt(&c.OutputCapacity, os.Getenv("OUTPUT_CAPACITY"))
		setFloat(&c.MaxRPM, os.Getenv("MAX_RPM"))

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "bind-address":
				c.BindAddress = f.Value.String()
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "baud-rate":
				setInt(&c.BaudRate, f.Value.String())
			case "log-level":
				c.LogLevel = f.Value.String()
			case "log-file":
				c.LogFile = f.Value.String()
			case "max-rpm":
				setFloat(&c.MaxRPM, f.Value.String())
			case "queue-size":
				setInt(&c.QueueSize, f.Value.String())
			case "queue-wait-ms":
				setInt(&c.QueueWaitMS, f.Value.String())
			}
		})
		return nil
	}
}

func setInt(dst *int, s string) {
	if s == "" {
		return
	}
	if v, err := strconv.Atoi(s); err == nil {
		*dst = v
	}
}

func setFloat(dst *float64, s string) {
	if s == "" {
		return
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*dst = v
	}
}
