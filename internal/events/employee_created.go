package events

import "time"

const EmployeeLifecycleTopic = "employees.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
