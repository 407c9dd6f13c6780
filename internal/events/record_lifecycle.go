package events

import "time"

const RecordLifecycleTopic = "onboarding.record.lifecycle.v1"

const (
	EventTypeRecordSubmitted     = "record.submitted"
	EventTypeRecordStatusChanged = "record.status_changed"
)

type RecordSubmittedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RecordID   string    `json:"record_id"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RecordStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RecordID   string    `json:"record_id"`
	EmployeeID string    `json:"employee_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	AdminID    string    `json:"admin_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
