package cli

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultLineCapacity   = 64
	DefaultOutputCapacity = 256
	DefaultMaxRPM         = 3000
	DefaultMaxChunks      = 256
	DefaultPulseDuration  = 200 * time.Millisecond
	DefaultWelcome        = "\r\nBLDC motor controller. Enter 'help' to view a list of available commands.\r\n\r\n"
)

// Config holds everything a CLI needs. Build one with NewConfigBuilder.
type Config struct {
	dialer         Dialer
	queue          Submitter
	indicator      Indicator
	logger         *slog.Logger
	metrics        *Metrics
	lineCapacity   int
	outputCapacity int
	maxRPM         float64
	maxChunks      int
	pulsePattern   Pattern
	pulseDuration  time.Duration
	welcome        string
	noWelcome      bool
}

// MaxRPM returns the velocity set-point limit.
func (c Config) MaxRPM() float64 { return c.maxRPM }

// LineCapacity returns the size of the input line buffer.
func (c Config) LineCapacity() int { return c.lineCapacity }

// OutputCapacity returns the size of the output buffer.
func (c Config) OutputCapacity() int { return c.outputCapacity }

func (c *Config) setDefaults() {
	if c.lineCapacity == 0 {
		c.lineCapacity = DefaultLineCapacity
	}
	if c.outputCapacity == 0 {
		c.outputCapacity = DefaultOutputCapacity
	}
	if c.maxRPM == 0 {
		c.maxRPM = DefaultMaxRPM
	}
	if c.maxChunks == 0 {
		c.maxChunks = DefaultMaxChunks
	}
	if c.pulseDuration == 0 {
		c.pulseDuration = DefaultPulseDuration
	}
	if c.indicator == nil {
		c.indicator = noIndicator{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
}

func (c *Config) validate() error {
	if c.dialer == nil {
		return ErrNoDialer
	}
	if c.queue == nil {
		return ErrNoQueue
	}
	if c.lineCapacity < 1 {
		return fmt.Errorf("%w: line capacity %d", ErrInvalidConfig, c.lineCapacity)
	}
	// The longest fixed diagnostic must fit in one chunk.
	if c.outputCapacity < len(msgIncorrectParams) {
		return fmt.Errorf("%w: output capacity %d below %d", ErrInvalidConfig, c.outputCapacity, len(msgIncorrectParams))
	}
	if c.maxRPM <= 0 {
		return fmt.Errorf("%w: max RPM %v", ErrInvalidConfig, c.maxRPM)
	}
	if c.maxChunks < 1 {
		return fmt.Errorf("%w: max chunks %d", ErrInvalidConfig, c.maxChunks)
	}
	return nil
}

// ConfigBuilder assembles a Config.
type ConfigBuilder struct {
	config Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithDialer sets how the terminal transport is opened. Required.
func (b *ConfigBuilder) WithDialer(d Dialer) *ConfigBuilder {
	b.config.dialer = d
	return b
}

// WithQueue sets the motor task's command queue. Required.
func (b *ConfigBuilder) WithQueue(q Submitter) *ConfigBuilder {
	b.config.queue = q
	return b
}

func (b *ConfigBuilder) WithIndicator(i Indicator) *ConfigBuilder {
	b.config.indicator = i
	return b
}

// WithLogger sets the debug sink. Byte-level tracing is logged at
// slog.LevelDebug.
func (b *ConfigBuilder) WithLogger(l *slog.Logger) *ConfigBuilder {
	b.config.logger = l
	return b
}

func (b *ConfigBuilder) WithMetrics(m *Metrics) *ConfigBuilder {
	b.config.metrics = m
	return b
}

func (b *ConfigBuilder) WithLineCapacity(n int) *ConfigBuilder {
	b.config.lineCapacity = n
	return b
}

func (b *ConfigBuilder) WithOutputCapacity(n int) *ConfigBuilder {
	b.config.outputCapacity = n
	return b
}

// WithMaxRPM sets the upper bound accepted by the sv command.
func (b *ConfigBuilder) WithMaxRPM(rpm float64) *ConfigBuilder {
	b.config.maxRPM = rpm
	return b
}

// WithMaxChunks bounds how many times one line's handler may be invoked.
func (b *ConfigBuilder) WithMaxChunks(n int) *ConfigBuilder {
	b.config.maxChunks = n
	return b
}

// WithPulse sets the indicator pulse emitted for every completed line.
func (b *ConfigBuilder) WithPulse(p Pattern, d time.Duration) *ConfigBuilder {
	b.config.pulsePattern = p
	b.config.pulseDuration = d
	return b
}

// WithWelcome sets the banner written when the loop starts. Defaults to
// DefaultWelcome.
func (b *ConfigBuilder) WithWelcome(s string) *ConfigBuilder {
	b.config.welcome = s
	b.config.noWelcome = s == ""
	return b
}

// Build applies defaults and validates the configuration.
func (b *ConfigBuilder) Build() (Config, error) {
	c := b.config
	if c.welcome == "" && !c.noWelcome {
		c.welcome = DefaultWelcome
	}
	if c.pulsePattern == PatternOff && c.pulseDuration == 0 {
		c.pulsePattern = PatternFlashOrange
	}
	c.setDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
