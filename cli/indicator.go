package cli

import (
	"log/slog"
	"time"
)

//go:generate go tool mockgen -source=indicator.go -destination=mock_indicator.go -package=cli

// Pattern selects what the status light shows.
type Pattern int

const (
	PatternOff Pattern = iota
	PatternFlashOrange
	PatternFlashGreen
	PatternFlashRed
)

func (p Pattern) String() string {
	switch p {
	case PatternOff:
		return "off"
	case PatternFlashOrange:
		return "flash-orange"
	case PatternFlashGreen:
		return "flash-green"
	case PatternFlashRed:
		return "flash-red"
	default:
		return "unknown"
	}
}

// Indicator drives the status light. Pulse must return immediately; the
// CLI never waits on it.
type Indicator interface {
	Pulse(p Pattern, d time.Duration)
}

// LogIndicator is an Indicator for hosts without a status light. It records
// each pulse at debug level.
type LogIndicator struct {
	Logger *slog.Logger
}

func (l LogIndicator) Pulse(p Pattern, d time.Duration) {
	if l.Logger == nil {
		return
	}
	l.Logger.Debug("Status indicator pulse", "pattern", p.String(), "duration", d)
}

type noIndicator struct{}

func (noIndicator) Pulse(Pattern, time.Duration) {}
