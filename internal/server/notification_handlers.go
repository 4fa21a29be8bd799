package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications
// @Summary List notifications
// @Description List the caller's notifications, newest first. Fetched
// @Description notifications are marked as read.
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	notifs, err := s.notificationService.List(c.Context(), currentUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(notifs)
}

// DeleteNotifications handles DELETE /api/notifications
// @Summary Delete notifications
// @Description Delete all of the caller's notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /notifications [delete]
func (s *Server) DeleteNotifications(c *fiber.Ctx) error {
	if err := s.notificationService.DeleteAll(c.Context(), currentUserID(c)); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notifications deleted successfully"})
}
