package driver

import "time"

type DriverDB struct {
	ID              string
	Name            string
	Phone           string
	Status          string
	Lat             *float64
	Lon             *float64
	VehicleType     *string
	VehicleFuel     *string
	VehiclePlate    *string
	MaxWeightKg     *float64
	MaxVolumeL      *float64
	Rating          float64
	ActiveOrders    int
	MaxActiveOrders int
	TotalDeliveries int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DriverModifyDB struct {
	ID              *string
	Name            *string
	Phone           *string
	Status          *string
	Lat             *float64
	Lon             *float64
	VehicleType     *string
	VehicleFuel     *string
	VehiclePlate    *string
	MaxWeightKg     *float64
	MaxVolumeL      *float64
	Rating          *float64
	ActiveOrders    *int
	MaxActiveOrders *int
	TotalDeliveries *int
}
