package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(WithDefaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.SerialPort != "/dev/ttyUSB0" {
		t.Errorf("unexpected serial port %q", config.SerialPort)
	}
	if config.QueueWait() != 100*time.Millisecond {
		t.Errorf("unexpected queue wait %v", config.QueueWait())
	}
	if config.Pulse() != 200*time.Millisecond {
		t.Errorf("unexpected pulse %v", config.Pulse())
	}
}

func TestLoadConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bldccli.yaml")
	data := []byte("serial_port: /dev/ttyACM0\nmax_rpm: 500\nqueue_wait_ms: 250\nlog_level: warn\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("QUEUE_SIZE", "4")
	t.Setenv("MAX_RPM", "not-a-number")

	fSet := flag.NewFlagSet("test", flag.ContinueOnError)
	fSet.String("serial-port", "", "")
	fSet.Int("queue-wait-ms", 0, "")
	if err := fSet.Parse([]string{"-queue-wait-ms=50"}); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(WithDefaults(), WithFile(path), WithEnv(), WithFlags(fSet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"serial port from file", config.SerialPort, "/dev/ttyACM0"},
		{"max rpm from file, bad env ignored", config.MaxRPM, float64(500)},
		{"log level from env", config.LogLevel, "debug"},
		{"queue size from env", config.QueueSize, 4},
		{"queue wait from flag", config.QueueWaitMS, 50},
		{"baud rate default", config.BaudRate, 115200},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: got %v, expected %v", tt.name, tt.got, tt.expected)
		}
	}
}

func TestWithFileErrors(t *testing.T) {
	if _, err := LoadConfig(WithFile(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_rpm: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(WithFile(path)); err == nil {
		t.Error("expected error for malformed YAML")
	}

	if _, err := LoadConfig(WithFile("")); err != nil {
		t.Errorf("empty path should be ignored, got: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("warn").String() != "WARN" {
		t.Error("expected warn level")
	}
	if parseLevel("bogus").String() != "INFO" {
		t.Error("unknown levels fall back to info")
	}
}
