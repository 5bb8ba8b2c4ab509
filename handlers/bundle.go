package handlers

import (
	"wirehaul/services/driver"
	"wirehaul/services/notification"
	"wirehaul/services/trip"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Trips         *TripHandler
	Notifications *NotificationHandler
	Drivers       *DriverHandler
}

// NewHandlerBundle wires the handlers from their services.
func NewHandlerBundle(trips trip.TripService, notifications notification.NotificationService, drivers driver.DriverService) *HandlerBundle {
	return &HandlerBundle{
		Trips:         &TripHandler{Service: trips},
		Notifications: &NotificationHandler{Service: notifications},
		Drivers:       &DriverHandler{Service: drivers},
	}
}
