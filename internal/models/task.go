package models

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Statuses lists the values accepted by the status filter, in display order.
var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted}

type Task struct {
	ID          int64
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
