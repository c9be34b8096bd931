package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

// AuditRepository is append-only. Audit rows are never updated or deleted.
type AuditRepository interface {
	Append(event *models.AuditEvent) error
	ListByEntity(entityID string, limit int) ([]models.AuditEvent, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Append(event *models.AuditEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}
	return nil
}

func (r *auditRepository) ListByEntity(entityID string, limit int) ([]models.AuditEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	var events []models.AuditEvent
	err := r.db.
		Where("entity_id = ?", entityID).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}
