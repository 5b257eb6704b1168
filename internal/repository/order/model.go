package order

import "time"

type OrderDB struct {
	ID                 string
	CustomerID         string
	TrackingNumber     string
	Status             string
	DriverID           *string
	DriverName         *string
	AssignmentMethod   *string
	PickupStreet       string
	PickupCommune      string
	PickupRegion       string
	PickupLat          float64
	PickupLon          float64
	DropoffStreet      string
	DropoffCommune     string
	DropoffRegion      string
	DropoffLat         float64
	DropoffLon         float64
	PackageType        string
	PackageDescription string
	WeightKg           float64
	LengthCm           float64
	WidthCm            float64
	HeightCm           float64
	Fragile            bool
	DistanceKm         float64
	Cost               int64
	ScheduledFor       *time.Time
	CreatedAt          time.Time
	AssignedAt         *time.Time
	PickedUpAt         *time.Time
	InTransitAt        *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	UpdatedAt          time.Time
}

type OrderModifyDB struct {
	ID               *string
	CustomerID       *string
	TrackingNumber   *string
	Status           *string
	DriverID         *string
	DriverName       *string
	AssignmentMethod *string
	DistanceKm       *float64
	Cost             *int64
	ScheduledFor     *time.Time
	AssignedAt       *time.Time
	PickedUpAt       *time.Time
	InTransitAt      *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
}
