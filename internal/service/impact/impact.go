package impact

import (
	"context"
	"fmt"
	"math"
	"strings"

	"dispatch/internal/entities"
)

// Emission factors in kg CO₂ per km.
const (
	dieselVanFactor          = 0.280
	dieselMotorcycleFactor   = 0.113
	electricVanFactor        = 0.053
	electricMotorcycleFactor = 0.021
)

// A tree absorbs roughly this many kg of CO₂ per year.
const treeAbsorptionPerYear = 22.0

// Deliveries with no recorded distance count as this many km.
const fallbackDistanceKm = 5.0

type Emissions struct {
	DieselKg float64
	FleetKg  float64
	SavedKg  float64
}

// CustomerImpact aggregates sustainability stats over a customer's
// delivered orders.
type CustomerImpact struct {
	TotalOrders     int
	TotalDistanceKm float64
	ElectricKm      float64
	CO2SavedKg      float64
	TreesEquivalent float64
}

type Impact struct {
	orders OrderRepository
}

func New(orders OrderRepository) *Impact {
	return &Impact{orders: orders}
}

// CalculateEmissions compares one delivery against its diesel
// counterpart. Bicycles emit nothing; two-wheelers compare against a
// petrol motorcycle, everything else against a diesel van.
func CalculateEmissions(distanceKm float64, vehicleType entities.VehicleType) Emissions {
	fleetFactor := electricVanFactor
	dieselFactor := dieselVanFactor

	switch vehicleType {
	case entities.VehicleBicycle:
		fleetFactor = 0
		dieselFactor = dieselMotorcycleFactor
	case entities.VehicleMotorcycle:
		fleetFactor = electricMotorcycleFactor
		dieselFactor = dieselMotorcycleFactor
	}

	diesel := distanceKm * dieselFactor
	fleet := distanceKm * fleetFactor

	return Emissions{
		DieselKg: round3(diesel),
		FleetKg:  round3(fleet),
		SavedKg:  round3(math.Max(0, diesel-fleet)),
	}
}

// TreesEquivalent converts saved CO₂ to a yearly tree count.
func TreesEquivalent(co2SavedKg float64) float64 {
	return round2(co2SavedKg / treeAbsorptionPerYear)
}

func (s *Impact) GetCustomerImpact(ctx context.Context, customerID string) (*CustomerImpact, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrInvalidCustomerID
	}

	delivered := entities.OrderDelivered
	orders, err := s.orders.GetAll(ctx, entities.OrderFilter{
		CustomerID: &customerID,
		Status:     &delivered,
	})
	if err != nil {
		return nil, fmt.Errorf("load delivered orders: %w", err)
	}

	stats := CustomerImpact{}
	for _, o := range orders {
		distance := o.DistanceKm
		if distance <= 0 {
			distance = fallbackDistanceKm
		}

		stats.TotalOrders++
		stats.TotalDistanceKm += distance
		stats.ElectricKm += distance
		stats.CO2SavedKg += CalculateEmissions(distance, entities.VehicleVan).SavedKg
	}

	stats.TotalDistanceKm = round1(stats.TotalDistanceKm)
	stats.ElectricKm = round1(stats.ElectricKm)
	stats.CO2SavedKg = round2(stats.CO2SavedKg)
	stats.TreesEquivalent = TreesEquivalent(stats.CO2SavedKg)

	return &stats, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
