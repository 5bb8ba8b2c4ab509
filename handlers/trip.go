package handlers

import (
	"errors"
	"net/http"

	"wirehaul/models"
	"wirehaul/services/trip"
	"wirehaul/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler exposes the trip lifecycle over HTTP.
type TripHandler struct {
	Service trip.TripService
}

// CreateTrip handles POST /api/trips.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleResponse(c, false, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, logger, "failed to create trip", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Trip booked successfully", created)
}

// AcceptTrip handles GET /api/trips/accept/:tripId.
func (h *TripHandler) AcceptTrip(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trackingID, err := h.Service.Accept(c.Request.Context(), userID, c.Param("tripId"))
	if err != nil {
		h.respondError(c, logger, "failed to accept trip", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Trip accepted", gin.H{"trackingId": trackingID})
}

// RejectTrip handles GET /api/trips/reject/:tripId.
func (h *TripHandler) RejectTrip(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	updated, err := h.Service.Reject(c.Request.Context(), userID, c.Param("tripId"))
	if err != nil {
		h.respondError(c, logger, "failed to reject trip", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Trip rejected", updated)
}

// PendingRequests handles GET /api/all_request: the authenticated driver's
// pending trip requests.
func (h *TripHandler) PendingRequests(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trips, err := h.Service.PendingForDriver(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, logger, "failed to list pending requests", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Pending trip requests", trips)
}

// DriverTrips handles GET /api/all_trip/driver.
func (h *TripHandler) DriverTrips(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.Service.HistoryForDriver(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, logger, "failed to list driver trips", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Driver trip history", rows)
}

// ClientTrips handles GET /api/all_trip/client.
func (h *TripHandler) ClientTrips(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.Service.HistoryForClient(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, logger, "failed to list client trips", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Client trip history", rows)
}

// UpdateLocation handles PUT /api/trip/location.
func (h *TripHandler) UpdateLocation(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authUserID(c)
	if !ok {
		utils.HandleResponse(c, false, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Pointer fields: 0 is a valid coordinate (equator, prime meridian),
	// so presence has to be checked apart from the value.
	var input struct {
		Lat *float64 `json:"lat" binding:"required"`
		Lng *float64 `json:"lng" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleResponse(c, false, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.Service.UpdateLocation(c.Request.Context(), userID, *input.Lat, *input.Lng); err != nil {
		h.respondError(c, logger, "failed to update location", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Location updated")
}

// TrackTrip handles POST /api/trip/track. The tracking id itself is the
// access credential, so the route carries no auth.
func (h *TripHandler) TrackTrip(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		TrackingID string `json:"trackingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleResponse(c, false, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	info, err := h.Service.Track(c.Request.Context(), input.TrackingID)
	if err != nil {
		h.respondError(c, logger, "failed to track trip", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Trip location", info)
}

// CompleteTrip handles POST /api/trip/done.
func (h *TripHandler) CompleteTrip(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		TrackingID string `json:"trackingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleResponse(c, false, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.Service.Complete(c.Request.Context(), input.TrackingID); err != nil {
		h.respondError(c, logger, "failed to complete trip", err)
		return
	}
	utils.HandleResponse(c, true, http.StatusOK, "Trip completed")
}

// respondError maps service errors to HTTP statuses using the standard
// response envelope.
func (h *TripHandler) respondError(c *gin.Context, logger *zap.Logger, action string, err error) {
	var vErr *trip.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.HandleResponse(c, false, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, trip.ErrTripNotFound),
		errors.Is(err, trip.ErrDriverNotFound),
		errors.Is(err, trip.ErrRequesterNotFound),
		errors.Is(err, trip.ErrNoLocation):
		utils.HandleResponse(c, false, http.StatusNotFound, err.Error())
	case errors.Is(err, trip.ErrNotTripDriver), errors.Is(err, trip.ErrNotADriver):
		utils.HandleResponse(c, false, http.StatusForbidden, err.Error())
	case errors.Is(err, trip.ErrAlreadyProcessed), errors.Is(err, trip.ErrNotAccepted):
		utils.HandleResponse(c, false, http.StatusConflict, err.Error())
	default:
		logger.Error(action, zap.Error(err))
		utils.HandleResponse(c, false, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
