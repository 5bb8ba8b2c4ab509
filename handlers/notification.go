package handlers

import (
	"net/http"
	"strconv"

	"wirehaul/services/notification"
	"wirehaul/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the notification inbox over HTTP.
type NotificationHandler struct {
	Service notification.NotificationService
}

// ListNotifications handles GET /api/notifications. The optional limit
// query param caps the page size.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			utils.HandleResponse(c, false, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	items, err := h.Service.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err))
		utils.HandleResponse(c, false, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Notifications", items)
}
