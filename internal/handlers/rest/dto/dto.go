// Package dto holds the request and response shapes of the REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Address struct {
	Street  string  `json:"street"`
	Commune string  `json:"commune"`
	Region  string  `json:"region,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type Package struct {
	Type        string  `json:"type,omitempty"`
	Description string  `json:"description,omitempty"`
	WeightKg    float64 `json:"weight_kg"`
	LengthCm    float64 `json:"length_cm"`
	WidthCm     float64 `json:"width_cm"`
	HeightCm    float64 `json:"height_cm"`
	Fragile     bool    `json:"fragile,omitempty"`
}

type Order struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customer_id"`
	TrackingNumber   string     `json:"tracking_number"`
	Status           string     `json:"status"`
	DriverID         *string    `json:"driver_id,omitempty"`
	DriverName       *string    `json:"driver_name,omitempty"`
	AssignmentMethod *string    `json:"assignment_method,omitempty"`
	Pickup           Address    `json:"pickup"`
	Dropoff          Address    `json:"dropoff"`
	Package          Package    `json:"package"`
	DistanceKm       float64    `json:"distance_km"`
	Cost             int64      `json:"cost"`
	ScheduledFor     *time.Time `json:"scheduled_for,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	AssignedAt       *time.Time `json:"assigned_at,omitempty"`
	PickedUpAt       *time.Time `json:"picked_up_at,omitempty"`
	InTransitAt      *time.Time `json:"in_transit_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type OrderCreate struct {
	CustomerID   string     `json:"customer_id"`
	Pickup       Address    `json:"pickup"`
	Dropoff      Address    `json:"dropoff"`
	Package      Package    `json:"package"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

type Assignment struct {
	Matched    bool    `json:"matched"`
	DriverID   *string `json:"driver_id,omitempty"`
	DriverName *string `json:"driver_name,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty"`
	Reason     string  `json:"reason"`
	Warning    string  `json:"warning,omitempty"`
}

type OrderCreateResponse struct {
	Order      Order       `json:"order"`
	Assignment *Assignment `json:"assignment,omitempty"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type OrderAssign struct {
	DriverID *string `json:"driver_id,omitempty"`
}

type Driver struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Status          string   `json:"status"`
	Lat             *float64 `json:"lat,omitempty"`
	Lon             *float64 `json:"lon,omitempty"`
	Vehicle         *Vehicle `json:"vehicle,omitempty"`
	Rating          float64  `json:"rating"`
	ActiveOrders    int      `json:"active_orders"`
	MaxActiveOrders int      `json:"max_active_orders"`
	TotalDeliveries int      `json:"total_deliveries"`
}

type Vehicle struct {
	Type        string  `json:"type"`
	Fuel        string  `json:"fuel"`
	Plate       string  `json:"plate,omitempty"`
	MaxWeightKg float64 `json:"max_weight_kg"`
	MaxVolumeL  float64 `json:"max_volume_l"`
}

type DriverCreate struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Status  *string  `json:"status,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	Vehicle *Vehicle `json:"vehicle,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
}

type DriverCreateResponse struct {
	ID string `json:"id"`
}

type DriverUpdate struct {
	Name    *string  `json:"name,omitempty"`
	Phone   *string  `json:"phone,omitempty"`
	Status  *string  `json:"status,omitempty"`
	Vehicle *Vehicle `json:"vehicle,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
}

type DriverLocationUpdate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type CustomerImpact struct {
	TotalOrders     int     `json:"total_orders"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	ElectricKm      float64 `json:"electric_km"`
	CO2SavedKg      float64 `json:"co2_saved_kg"`
	TreesEquivalent float64 `json:"trees_equivalent"`
}

type SyncStatus struct {
	Online  bool  `json:"online"`
	Pending int64 `json:"pending"`
}

type SyncOnlineUpdate struct {
	Online bool `json:"online"`
}
