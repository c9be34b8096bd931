package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sammy-0y/arbeit-project/internal/models"
)

type NotificationFilter struct {
	Role     models.Role
	Email    string
	ClientID *uuid.UUID
	Limit    int
}

type NotificationRepository interface {
	Create(n *models.Notification) error
	ListForActor(filter NotificationFilter) ([]models.Notification, error)
	MarkRead(id uuid.UUID, email string) error
	MarkAllRead(filter NotificationFilter) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *models.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// jsonbMember renders a one-element jsonb array literal for containment and
// append expressions.
func jsonbMember(value string) string {
	raw, _ := json.Marshal([]string{value})
	return string(raw)
}

func (r *notificationRepository) scopedQuery(filter NotificationFilter) *gorm.DB {
	q := r.db.Model(&models.Notification{}).
		Where("recipients @> ?", jsonbMember(string(filter.Role)))
	if filter.ClientID != nil {
		q = r.db.Model(&models.Notification{}).
			Where("recipients @> ? OR client_id = ?", jsonbMember(string(filter.Role)), *filter.ClientID)
	}
	return q
}

func (r *notificationRepository) ListForActor(filter NotificationFilter) ([]models.Notification, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var notifications []models.Notification
	err := r.scopedQuery(filter).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(id uuid.UUID, email string) error {
	member := jsonbMember(email)

	// Appending in SQL keeps concurrent read receipts from overwriting each
	// other; the containment guard makes repeats no-ops.
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND NOT COALESCE(read_by, '[]'::jsonb) @> ?", id, member).
		Update("read_by", gorm.Expr("COALESCE(read_by, '[]'::jsonb) || ?::jsonb", member))
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// No row matched: either already read or the notification does not exist.
	var count int64
	if err := r.db.Model(&models.Notification{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to find notification: %w", err)
	}
	if count == 0 {
		return &models.NotFoundError{Entity: "Notification", ID: id.String()}
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(filter NotificationFilter) (int64, error) {
	member := jsonbMember(filter.Email)

	result := r.scopedQuery(filter).
		Where("NOT COALESCE(read_by, '[]'::jsonb) @> ?", member).
		Update("read_by", gorm.Expr("COALESCE(read_by, '[]'::jsonb) || ?::jsonb", member))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}
