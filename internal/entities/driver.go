package entities

import (
	"time"

	"dispatch/pkg/geo"
)

type Driver struct {
	ID              string
	Name            string
	Phone           string
	Status          DriverStatusType
	Location        *geo.Coordinate
	Vehicle         *Vehicle
	Rating          float64
	ActiveOrders    int
	MaxActiveOrders int
	TotalDeliveries int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "available"
	DriverBusy      DriverStatusType = "busy"
	DriverOffline   DriverStatusType = "offline"
)

const DefaultDriverStatus = DriverAvailable

func (t DriverStatusType) String() string {
	return string(t)
}

const DefaultMaxActiveOrders = 3

type Vehicle struct {
	Type        VehicleType
	Fuel        FuelType
	Plate       string
	MaxWeightKg float64
	MaxVolumeL  float64
}

type VehicleType string

const (
	VehicleVan        VehicleType = "van"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleBicycle    VehicleType = "bicycle"
)

func (t VehicleType) String() string {
	return string(t)
}

type FuelType string

const (
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelNone     FuelType = "none"
)

func (t FuelType) String() string {
	return string(t)
}

// IsAvailable reports whether the driver can take one more order.
func (d *Driver) IsAvailable() bool {
	return d.Status == DriverAvailable && d.ActiveOrders < d.MaxActiveOrders
}

// CanHandle reports whether the driver's vehicle fits the package by
// weight and volume. A driver without a vehicle handles nothing.
func (d *Driver) CanHandle(pkg Package) bool {
	if d.Vehicle == nil {
		return false
	}
	if pkg.WeightKg > d.Vehicle.MaxWeightKg {
		return false
	}
	return pkg.VolumeL() <= d.Vehicle.MaxVolumeL
}

// Assign counts one more active order against the driver and flips the
// status to busy once capacity is reached.
func (d *Driver) Assign() {
	d.ActiveOrders++
	if d.ActiveOrders >= d.MaxActiveOrders {
		d.Status = DriverBusy
	}
}

// Complete releases one active order, never going below zero, and
// returns a busy driver to available while under capacity.
func (d *Driver) Complete() {
	if d.ActiveOrders > 0 {
		d.ActiveOrders--
	}
	d.TotalDeliveries++
	if d.Status == DriverBusy && d.ActiveOrders < d.MaxActiveOrders {
		d.Status = DriverAvailable
	}
}

type DriverModify struct {
	ID              *string
	Name            *string
	Phone           *string
	Status          *DriverStatusType
	Location        *geo.Coordinate
	Vehicle         *Vehicle
	Rating          *float64
	ActiveOrders    *int
	MaxActiveOrders *int
	TotalDeliveries *int
}
