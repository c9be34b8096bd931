package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringList is stored as a jsonb array column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported string list type %T", value)
	}
	return json.Unmarshal(raw, s)
}

func (StringList) GormDataType() string {
	return "jsonb"
}

func (s StringList) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// Notification is a stored in-app notification produced by the outbound event
// dispatcher. Delivery beyond this table (email, SMS) belongs to the external
// notification collaborator.
type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"notification_id"`
	Type    string    `gorm:"type:text;not null;index" json:"type"`
	Title   string    `gorm:"type:text" json:"title"`
	Message string    `gorm:"type:text" json:"message"`

	EntityType string     `gorm:"type:text" json:"entity_type,omitempty"`
	EntityID   string     `gorm:"type:text;index" json:"entity_id,omitempty"`
	ClientID   *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`

	Recipients StringList `gorm:"type:jsonb" json:"recipients,omitempty"`
	ReadBy     StringList `gorm:"type:jsonb" json:"read_by,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"created_at"`
	CreatedBy string    `gorm:"type:text" json:"created_by"`
}

func (Notification) TableName() string {
	return "notifications"
}
