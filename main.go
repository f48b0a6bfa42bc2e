package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.bug.st/serial"

	"i4.energy/across/bldccli/bldc"
	"i4.energy/across/bldccli/cli"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML configuration file")
	flag.String("serial-port", "/dev/ttyUSB0", "Serial port of the command terminal")
	flag.Int("baud-rate", 115200, "Baud rate for serial communication")
	flag.String("bind-address", "0.0.0.0:8080", "Bind address for the operations HTTP server")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.String("log-file", "", "Write logs to this rotating file instead of stderr")
	flag.Float64("max-rpm", 3000, "Maximum velocity set-point accepted by 'sv'")
	flag.Int("queue-size", 10, "Capacity of the motor command queue")
	flag.Int("queue-wait-ms", 100, "Maximum time a command waits for room in the queue")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithFile(*configFile), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, logCloser := newLogger(config)
	defer logCloser.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := cli.NewMetrics()
	if err := metrics.Register(registry); err != nil {
		logger.Error("Failed to register metrics", "error", err)
		os.Exit(1)
	}

	queue := cli.NewQueue(config.QueueSize, config.QueueWait())

	cliConfig, err := cli.NewConfigBuilder().
		WithDialer(cli.SerialDialer{
			PortName: config.SerialPort,
			Mode: &serial.Mode{
				BaudRate: config.BaudRate,
				Parity:   serial.NoParity,
				DataBits: 8,
				StopBits: serial.OneStopBit,
			},
		}).
		WithQueue(queue).
		WithIndicator(cli.LogIndicator{Logger: logger.With("component", "indicator")}).
		WithLogger(logger.With("component", "cli")).
		WithMetrics(metrics).
		WithMaxRPM(config.MaxRPM).
		WithLineCapacity(config.LineCapacity).
		WithOutputCapacity(config.OutputCapacity).
		WithPulse(cli.PatternFlashOrange, config.Pulse()).
		Build()
	if err != nil {
		logger.Error("Failed to create CLI config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := cli.New(ctx, cliConfig)
	if err != nil {
		logger.Error("Failed to open command terminal", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting BLDC command interface", "serial_port", config.SerialPort, "baud_rate", config.BaudRate)

	go consume(ctx, logger.With("component", "motor"), queue.Messages())
	loopDone := c.Start(ctx)

	var httpServer *http.Server
	if config.BindAddress != "" {
		httpServer = &http.Server{
			Addr: config.BindAddress,
			Handler: &Server{
				Logger:   logger.With("component", "server"),
				Registry: c.Registry(),
				Queue:    queue,
				Gatherer: registry,
			},
		}

		go func() {
			logger.Info("Starting HTTP server", "address", httpServer.Addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP server failed", "error", err)
				stop()
			}
		}()
	}

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	case err := <-loopDone:
		if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
			logger.Error("Command loop stopped", "error", err)
			exitCode = 1
		} else {
			logger.Info("Command terminal closed")
		}
	}

	logger.Info("Closing command terminal")
	if err := c.Close(); err != nil {
		logger.Error("Failed to close command terminal", "error", err)
	}

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Closing HTTP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to gracefully shutdown server", "error", err)
			exitCode = 1
		}
	}

	if exitCode != 0 {
		logCloser.Close()
		os.Exit(exitCode)
	}
}

// consume stands in for the motor-control task when the daemon runs on a
// host: it drains the command queue and records each message.
func consume(ctx context.Context, logger *slog.Logger, messages <-chan bldc.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-messages:
			logger.Info("Motor command received", "command", msg.Command.String(), "value", msg.Value1)
		}
	}
}
