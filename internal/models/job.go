package models

import (
	"time"

	"github.com/google/uuid"
)

// Job and Client are lookup projections of entities owned by the CRUD layer.
// The scheduling core only reads them to validate linkage and tenancy.

type Job struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"job_id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Title    string    `gorm:"type:text" json:"title"`

	CreatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"client_id"`
	CompanyName string    `gorm:"type:text" json:"company_name"`

	CreatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;default:now()" json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}
