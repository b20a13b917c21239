package events

import (
	"context"
	"encoding/json"
	"testing"
)

func TestNopPublisher(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), AttendanceRecorded, AttendanceRecordedEvent{EventID: 1}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestAttendanceRecordedPayload(t *testing.T) {
	company := uint(3)
	payload, err := json.Marshal(AttendanceRecordedEvent{
		EventID: 9, UserID: 2, CompanyID: &company,
		Date: "2024-01-15", Kind: "entry", Time: "08:15", Status: "late",
	})
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatal(err)
	}
	for key, want := range map[string]interface{}{
		"event_id":   float64(9),
		"company_id": float64(3),
		"kind":       "entry",
		"status":     "late",
	} {
		if got[key] != want {
			t.Errorf("%s = %v, want %v", key, got[key], want)
		}
	}
}

func TestNewNATSPublisherUnreachable(t *testing.T) {
	if _, err := NewNATSPublisher("nats://127.0.0.1:1"); err == nil {
		t.Fatal("expected connection error")
	}
}
