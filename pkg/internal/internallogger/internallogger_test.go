package internallogger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cardiokit/ecgcore/pkg/builder"
)

func TestLoggerLevels(t *testing.T) {
	logger := builder.NewLogger(builder.LoggerWithLevel("warn"))

	if logger.GetLevel() != builder.WarnLevel {
		t.Errorf("GetLevel = %v, want warn", logger.GetLevel())
	}

	logger.SetLevel(builder.DebugLevel)
	if logger.GetLevel() != builder.DebugLevel {
		t.Errorf("GetLevel after SetLevel = %v, want debug", logger.GetLevel())
	}
}

func TestLoggerFileSink(t *testing.T) {
	logger := builder.NewLogger(
		builder.LoggerWithLevel("info"),
		builder.LoggerWithSchema(builder.LogSchemaID),
	)

	path := filepath.Join(t.TempDir(), "ecgcore.log")
	err := logger.AddSink("test-file", builder.SinkConfig{
		Type:   "file",
		Config: map[string]interface{}{"path": path},
	})
	if err != nil {
		t.Fatalf("AddSink: %v", err)
	}

	sinks, err := logger.ListSinks()
	if err != nil {
		t.Fatalf("ListSinks: %v", err)
	}
	if len(sinks) != 1 || sinks[0] != "test-file" {
		t.Fatalf("ListSinks = %v, want [test-file]", sinks)
	}

	logger.Info("analysis complete", "lead", "II", "detections", 3)
	_ = logger.Flush()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading sink file: %v", err)
	}
	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("sink output is not JSON: %v\n%s", err, data)
	}
	if record["msg"] != "analysis complete" {
		t.Errorf("msg = %v, want analysis complete", record["msg"])
	}
	if record["lead"] != "II" {
		t.Errorf("lead = %v, want II", record["lead"])
	}
	if record[builder.LogSchemaField] != builder.LogSchemaID {
		t.Errorf("schema = %v, want %s", record[builder.LogSchemaField], builder.LogSchemaID)
	}

	if err := logger.RemoveSink("test-file"); err != nil {
		t.Fatalf("RemoveSink: %v", err)
	}
	if err := logger.RemoveSink("test-file"); err == nil {
		t.Fatal("RemoveSink on missing sink should error")
	}
}

func TestLoggerRejectsUnknownSink(t *testing.T) {
	logger := builder.NewLogger()

	err := logger.AddSink("bad", builder.SinkConfig{Type: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unsupported sink type")
	}
}
