package models

import "time"

// BookingMailPayload carries the data for the new-booking email sent to
// the assigned driver.
type BookingMailPayload struct {
	DriverName  string    `json:"driverName"`
	DriverEmail string    `json:"driverEmail"`
	BookerName  string    `json:"bookerName"`
	Pickup      string    `json:"pickup"`
	Destination string    `json:"destination"`
	TripDate    time.Time `json:"tripDate"`
	Price       float64   `json:"price"`
}

// TripDecisionMailPayload carries the data for the accepted/rejected email
// sent to the requester.
type TripDecisionMailPayload struct {
	UserEmail   string    `json:"userEmail"`
	DriverName  string    `json:"driverName"`
	DriverPhone string    `json:"driverPhone,omitempty"`
	Pickup      string    `json:"pickup"`
	Destination string    `json:"destination"`
	TripDate    time.Time `json:"tripDate"`
}
