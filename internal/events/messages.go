package events

import (
	"encoding/json"
	"time"
)

// Event kinds published on store mutations.
const (
	KindTransactionCreated = "transaction_created"
	KindCategoryCreated    = "category_created"
	KindCategoryDeleted    = "category_deleted"
	KindSettingsChanged    = "settings_changed"
)

// Event is a lightweight mutation notification. Consumers fetch details from
// the backend themselves; the message carries only the kind and the id.
type Event struct {
	Kind      string    `json:"kind"`
	ID        int64     `json:"id,omitempty"`
	Field     string    `json:"field,omitempty"` // settings_changed only
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(kind string, id int64) *Event {
	return &Event{Kind: kind, ID: id, Timestamp: time.Now()}
}

func NewSettingsEvent(field string) *Event {
	return &Event{Kind: KindSettingsChanged, Field: field, Timestamp: time.Now()}
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
