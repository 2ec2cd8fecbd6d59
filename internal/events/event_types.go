package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered     EventType = "user_registered"
	EventUserLoggedIn       EventType = "user_logged_in"
	EventAccountCreated     EventType = "account_created"
	EventAccountUpdated     EventType = "account_updated"
	EventAccountDeleted     EventType = "account_deleted"
	EventCategoryCreated    EventType = "category_created"
	EventCategoryDeleted    EventType = "category_deleted"
	EventSubcategoryCreated EventType = "subcategory_created"
	EventSubcategoryDeleted EventType = "subcategory_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ResourcePayload identifies the entity an event refers to.
type ResourcePayload struct {
	ResourceID string `json:"resource_id"`
	Name       string `json:"name,omitempty"`
}
