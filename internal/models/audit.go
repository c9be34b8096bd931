package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metadata is the free-form bag attached to audit events and notifications.
type Metadata map[string]interface{}

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata type %T", value)
	}
	return json.Unmarshal(raw, m)
}

func (Metadata) GormDataType() string {
	return "jsonb"
}

// AuditEvent is an append-only record of one state transition.
type AuditEvent struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"audit_id"`
	ActorID    string     `gorm:"type:text" json:"actor_id"`
	ActorEmail string     `gorm:"type:text" json:"actor_email"`
	ActorRole  string     `gorm:"type:text" json:"actor_role"`
	ActionType string     `gorm:"type:text;not null;index" json:"action_type"`
	EntityType string     `gorm:"type:text;not null" json:"entity_type"`
	EntityID   string     `gorm:"type:text;not null;index" json:"entity_id"`
	ClientID   *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`

	PreviousStatus string `gorm:"type:text" json:"previous_status,omitempty"`
	NewStatus      string `gorm:"type:text" json:"new_status,omitempty"`

	Metadata Metadata `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
