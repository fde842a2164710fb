package models

import (
	"time"

	"github.com/google/uuid"
)

// EventDB represents an event record in the database
type EventDB struct {
	EventID     uuid.UUID `json:"id" db:"event_id"`           // Primary key
	Title       string    `json:"title" db:"title"`           // Event title
	Description string    `json:"description" db:"description"`
	Start       int64     `json:"start" db:"start_ts"`        // Unix seconds
	End         int64     `json:"end" db:"end_ts"`            // Unix seconds
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id"`     // FK to users
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// EventView is an event expanded with owner and attendee display
// identities, as returned by the list endpoint.
type EventView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Start       int64      `json:"start"`
	End         int64      `json:"end"`
	Owner       UserInfo   `json:"owner"`
	Attendees   []UserInfo `json:"attendees"`
}

// EventUpdate is a sparse patch for an event: only non-nil fields
// are applied.
type EventUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Start       *int64  `json:"start"`
	End         *int64  `json:"end"`
}

// EventNotification is published to Kafka after event mutations.
type EventNotification struct {
	NotificationID string `json:"notification_id"` // Unique notification id
	Timestamp      int64  `json:"timestamp"`       // Unix seconds
	Action         string `json:"action"`          // created / updated / deleted / attendee_added / attendee_removed
	EventID        string `json:"event_id"`        // Affected event
	ActorID        string `json:"actor_id"`        // User who performed the action
	TargetID       string `json:"target_id,omitempty"` // Attendee affected, for attendee actions
}

// Notification actions.
const (
	ActionEventCreated    = "created"
	ActionEventUpdated    = "updated"
	ActionEventDeleted    = "deleted"
	ActionAttendeeAdded   = "attendee_added"
	ActionAttendeeRemoved = "attendee_removed"
)
