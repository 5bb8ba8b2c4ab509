package models

// TrackingAddress is the reverse-geocoded, human-readable position.
type TrackingAddress struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Village string `json:"village,omitempty"`
}

// TrackingCoordinates is the driver's last reported position.
type TrackingCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TrackingInfo is the client-safe projection returned for a tracking id.
// Internal identifiers and unrelated trip history are deliberately absent.
type TrackingInfo struct {
	DriverName  string              `json:"driverName"`
	PhoneNumber string              `json:"phoneNumber"`
	TruckType   string              `json:"truckType"`
	Coordinates TrackingCoordinates `json:"coordinates"`
	Address     TrackingAddress     `json:"address"`
}
