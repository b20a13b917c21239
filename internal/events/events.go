package events

import (
	"checkrrhh-backend/internal/logger"
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

const (
	AttendanceRecorded = "attendance.recorded"
	CompanyDeleted     = "company.deleted"
	EmployeeDeleted    = "employee.deleted"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSPublisher) Close() error {
	n.conn.Close()
	return nil
}

// Nop drops every event; used when NATS_URL is not set.
type Nop struct{}

func (Nop) Publish(context.Context, string, interface{}) error { return nil }
func (Nop) Close() error { return nil }

type AttendanceRecordedEvent struct {
	EventID   uint   `json:"event_id"`
	UserID    uint   `json:"user_id"`
	CompanyID *uint  `json:"company_id"`
	Date      string `json:"date"`
	Kind      string `json:"kind"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

type CompanyDeletedEvent struct {
	CompanyID          uint `json:"company_id"`
	UsersDeleted       int  `json:"users_deleted"`
	EventsDeleted      int  `json:"events_deleted"`
	AttachmentsDeleted int  `json:"attachments_deleted"`
}

type EmployeeDeletedEvent struct {
	UserID    uint  `json:"user_id"`
	CompanyID *uint `json:"company_id"`
}
