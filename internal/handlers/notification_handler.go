package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Sammy-0y/arbeit-project/internal/repositories"
)

type NotificationHandler struct {
	notifications repositories.NotificationRepository
}

func NewNotificationHandler(notifications repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) filterFor(c *fiber.Ctx) repositories.NotificationFilter {
	actor := actorFromRequest(c)
	return repositories.NotificationFilter{
		Role:     actor.Role,
		Email:    actor.Email,
		ClientID: actor.ClientID,
		Limit:    c.QueryInt("limit", 50),
	}
}

// HandleList handles GET /notifications
func (h *NotificationHandler) HandleList(c *fiber.Ctx) error {
	actor := actorFromRequest(c)
	unreadOnly := c.QueryBool("unread_only", false)

	notifications, err := h.notifications.ListForActor(h.filterFor(c))
	if err != nil {
		return respondError(c, err)
	}

	result := make([]fiber.Map, 0, len(notifications))
	for _, n := range notifications {
		isRead := n.ReadBy.Contains(actor.Email)
		if unreadOnly && isRead {
			continue
		}
		result = append(result, fiber.Map{
			"notification_id": n.ID.String(),
			"type":            n.Type,
			"title":           n.Title,
			"message":         n.Message,
			"entity_type":     n.EntityType,
			"entity_id":       n.EntityID,
			"client_id":       n.ClientID,
			"created_at":      n.CreatedAt,
			"created_by":      n.CreatedBy,
			"is_read":         isRead,
		})
	}

	return c.JSON(result)
}

// HandleUnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) HandleUnreadCount(c *fiber.Ctx) error {
	actor := actorFromRequest(c)

	notifications, err := h.notifications.ListForActor(h.filterFor(c))
	if err != nil {
		return respondError(c, err)
	}

	count := 0
	for _, n := range notifications {
		if !n.ReadBy.Contains(actor.Email) {
			count++
		}
	}

	return c.JSON(fiber.Map{"unread_count": count})
}

// HandleMarkRead handles POST /notifications/:id/mark-read
func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	actor := actorFromRequest(c)
	if err := h.notifications.MarkRead(id, actor.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// HandleMarkAllRead handles POST /notifications/mark-all-read
func (h *NotificationHandler) HandleMarkAllRead(c *fiber.Ctx) error {
	updated, err := h.notifications.MarkAllRead(h.filterFor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Marked %d notifications as read", updated),
	})
}
