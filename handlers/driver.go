package handlers

import (
	"errors"
	"net/http"

	"wirehaul/models"
	"wirehaul/services/driver"
	"wirehaul/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DriverHandler exposes driver onboarding over HTTP.
type DriverHandler struct {
	Service driver.DriverService
}

// ApplyAsDriver handles POST /api/driver/apply.
func (h *DriverHandler) ApplyAsDriver(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var app models.DriverApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		utils.HandleResponse(c, false, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	profile, err := h.Service.Apply(c.Request.Context(), userID, app)
	switch {
	case errors.Is(err, driver.ErrAlreadyApplied):
		utils.HandleResponse(c, false, http.StatusConflict, err.Error())
	case errors.Is(err, driver.ErrUnknownUser):
		utils.HandleResponse(c, false, http.StatusNotFound, err.Error())
	case err != nil:
		logger.Error("failed to file driver application", zap.Error(err))
		utils.HandleResponse(c, false, http.StatusInternalServerError, "Failed to submit driver application")
	default:
		utils.HandleResponse(c, true, http.StatusCreated, "Driver application submitted", profile)
	}
}

// DriverProfile handles GET /api/driver/me.
func (h *DriverHandler) DriverProfile(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.Service.ProfileFor(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to load driver profile", zap.Error(err))
		utils.HandleResponse(c, false, http.StatusInternalServerError, "Failed to load driver profile")
		return
	}
	if profile == nil {
		utils.HandleResponse(c, false, http.StatusNotFound, "no driver profile for this account")
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Driver profile", profile)
}
