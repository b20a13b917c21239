package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestWithContextAddsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	defaultLogger = slog.New(slog.NewJSONHandler(&buf, nil))
	defer func() { defaultLogger = prev }()

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UserIDKey, uint(7))
	InfoContext(ctx, "scan recorded")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["request_id"] != "req-1" {
		t.Errorf("request_id = %v", line["request_id"])
	}
	if line["user_id"] != float64(7) {
		t.Errorf("user_id = %v", line["user_id"])
	}
	if line["msg"] != "scan recorded" {
		t.Errorf("msg = %v", line["msg"])
	}
}

func TestWithContextWithoutValues(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	defaultLogger = slog.New(slog.NewJSONHandler(&buf, nil))
	defer func() { defaultLogger = prev }()

	InfoContext(context.Background(), "plain")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatal(err)
	}
	if _, ok := line["request_id"]; ok {
		t.Error("request_id should be absent")
	}
}
