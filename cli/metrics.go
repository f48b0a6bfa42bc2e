package cli

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what the CLI does. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	BytesReceived    prometheus.Counter
	BytesDropped     prometheus.Counter
	LinesDispatched  prometheus.Counter
	UnknownCommands  prometheus.Counter
	ValidationErrors *prometheus.CounterVec
	Submissions      *prometheus.CounterVec
}

// NewMetrics creates the CLI collectors. Register them with Register.
func NewMetrics() *Metrics {
	return &Metrics{
		BytesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bldccli",
			Subsystem: "input",
			Name:      "bytes_received_total",
			Help:      "Total number of bytes read from the terminal",
		}),
		BytesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bldccli",
			Subsystem: "input",
			Name:      "bytes_dropped_total",
			Help:      "Bytes discarded because the line buffer was full",
		}),
		LinesDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bldccli",
			Subsystem: "dispatch",
			Name:      "lines_total",
			Help:      "Total number of completed lines handed to the dispatcher",
		}),
		UnknownCommands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bldccli",
			Subsystem: "dispatch",
			Name:      "unknown_commands_total",
			Help:      "Lines whose first token matched no command",
		}),
		ValidationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bldccli",
			Subsystem: "dispatch",
			Name:      "validation_errors_total",
			Help:      "Commands rejected because of a bad parameter",
		}, []string{"command"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bldccli",
			Subsystem: "queue",
			Name:      "submissions_total",
			Help:      "Command messages offered to the motor task",
		}, []string{"command", "status"}),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.BytesReceived,
		m.BytesDropped,
		m.LinesDispatched,
		m.UnknownCommands,
		m.ValidationErrors,
		m.Submissions,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) byteReceived() {
	if m != nil {
		m.BytesReceived.Inc()
	}
}

func (m *Metrics) byteDropped() {
	if m != nil {
		m.BytesDropped.Inc()
	}
}

func (m *Metrics) lineDispatched() {
	if m != nil {
		m.LinesDispatched.Inc()
	}
}

func (m *Metrics) unknownCommand() {
	if m != nil {
		m.UnknownCommands.Inc()
	}
}

func (m *Metrics) validationError(cmd string) {
	if m != nil {
		m.ValidationErrors.WithLabelValues(cmd).Inc()
	}
}

func (m *Metrics) submission(cmd string, ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "queue_full"
	}
	m.Submissions.WithLabelValues(cmd, status).Inc()
}
