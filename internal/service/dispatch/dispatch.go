package dispatch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"dispatch/internal/entities"
	"dispatch/internal/service/driverpool"
	"dispatch/pkg/geo"
)

// MatchResult is the outcome of ranking drivers for an order. A failed
// match is a regular value with Reason set, not an error.
type MatchResult struct {
	Matched    bool
	Driver     *entities.Driver
	DistanceKm float64
	Reason     string
}

type candidate struct {
	driver     entities.Driver
	distanceKm float64
}

type Matcher struct {
	driverPool DriverPoolService
}

func New(driverPool DriverPoolService) *Matcher {
	return &Matcher{
		driverPool: driverPool,
	}
}

// Match ranks the given drivers for the order and picks the best one.
// Ranking is by pickup distance, then fewer active orders, then higher
// rating.
func (m *Matcher) Match(order *entities.Order, drivers []entities.Driver) MatchResult {
	if order.Pickup.Coordinate.Validate() != nil {
		return MatchResult{Reason: "Order missing pickup coordinates"}
	}

	if len(drivers) == 0 {
		return MatchResult{Reason: "No drivers available"}
	}

	candidates := rankCandidates(order, drivers)
	if len(candidates) == 0 {
		return MatchResult{Reason: failureReason(order, drivers)}
	}

	best := candidates[0]
	return MatchResult{
		Matched:    true,
		Driver:     &best.driver,
		DistanceKm: best.distanceKm,
		Reason:     fmt.Sprintf("Assigned to closest driver (%vkm away)", best.distanceKm),
	}
}

// CommitAssignment matches against the current pool and reserves the
// winner. A reservation lost to a concurrent assignment falls through
// to the next ranked candidate.
func (m *Matcher) CommitAssignment(ctx context.Context, order *entities.Order) (MatchResult, error) {
	if order.Pickup.Coordinate.Validate() != nil {
		return MatchResult{Reason: "Order missing pickup coordinates"}, nil
	}

	drivers, err := m.driverPool.GetDrivers(ctx)
	if err != nil {
		return MatchResult{}, fmt.Errorf("list drivers for matching: %w", err)
	}

	if len(drivers) == 0 {
		return MatchResult{Reason: "No drivers available"}, nil
	}

	candidates := rankCandidates(order, drivers)
	if len(candidates) == 0 {
		return MatchResult{Reason: failureReason(order, drivers)}, nil
	}

	for _, c := range candidates {
		reserved, err := m.driverPool.Reserve(ctx, c.driver.ID)
		if err != nil {
			if errors.Is(err, driverpool.ErrDriverNotAvailable) {
				continue
			}
			return MatchResult{}, fmt.Errorf("reserve driver %s: %w", c.driver.ID, err)
		}

		return MatchResult{
			Matched:    true,
			Driver:     reserved,
			DistanceKm: c.distanceKm,
			Reason:     fmt.Sprintf("Assigned to closest driver (%vkm away)", c.distanceKm),
		}, nil
	}

	// Every ranked candidate was taken by a concurrent assignment.
	// Re-classify against the pool as it looks now; the order simply
	// stays pending.
	current, err := m.driverPool.GetDrivers(ctx)
	if err != nil {
		return MatchResult{Reason: failureReason(order, drivers)}, nil
	}
	return MatchResult{Reason: failureReason(order, current)}, nil
}

func rankCandidates(order *entities.Order, drivers []entities.Driver) []candidate {
	candidates := make([]candidate, 0, len(drivers))
	for _, driver := range drivers {
		if !driver.IsAvailable() {
			continue
		}
		if driver.Location == nil {
			continue
		}
		if !driver.CanHandle(order.Package) {
			continue
		}

		distance, err := geo.DistanceBetween(*driver.Location, order.Pickup.Coordinate)
		if err != nil {
			continue
		}

		candidates = append(candidates, candidate{driver: driver, distanceKm: distance})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distanceKm != candidates[j].distanceKm {
			return candidates[i].distanceKm < candidates[j].distanceKm
		}
		if candidates[i].driver.ActiveOrders != candidates[j].driver.ActiveOrders {
			return candidates[i].driver.ActiveOrders < candidates[j].driver.ActiveOrders
		}
		return candidates[i].driver.Rating > candidates[j].driver.Rating
	})

	return candidates
}

// failureReason classifies why no candidate survived filtering, in
// priority order: availability, then location, then capacity.
func failureReason(order *entities.Order, drivers []entities.Driver) string {
	hasAvailable := false
	hasLocation := false
	hasCapacity := false
	for _, driver := range drivers {
		if driver.IsAvailable() {
			hasAvailable = true
		}
		if driver.Location != nil {
			hasLocation = true
		}
		if driver.CanHandle(order.Package) {
			hasCapacity = true
		}
	}

	switch {
	case !hasAvailable:
		return "All drivers are busy or offline"
	case !hasLocation:
		return "No drivers with location data"
	case !hasCapacity:
		return fmt.Sprintf("No vehicles can handle package (%vkg, %vL)",
			order.Package.WeightKg, math.Round(order.Package.VolumeL()))
	default:
		return "No suitable drivers found"
	}
}

type DistanceWarningLevel string

const (
	DistanceIdeal      DistanceWarningLevel = "ideal"
	DistanceAcceptable DistanceWarningLevel = "acceptable"
	DistanceWarning    DistanceWarningLevel = "warning"
	DistanceCritical   DistanceWarningLevel = "critical"
)

type DistanceAssessment struct {
	Level   DistanceWarningLevel
	Message string
}

// AssessDistance grades a pickup distance for dispatcher review.
func AssessDistance(distanceKm float64) DistanceAssessment {
	switch {
	case distanceKm < 5:
		return DistanceAssessment{Level: DistanceIdeal, Message: "Optimal distance"}
	case distanceKm < 10:
		return DistanceAssessment{Level: DistanceAcceptable, Message: "Acceptable distance"}
	case distanceKm < 20:
		return DistanceAssessment{Level: DistanceWarning, Message: "Long distance - higher cost expected"}
	default:
		return DistanceAssessment{Level: DistanceCritical, Message: "Very long distance - manual review recommended"}
	}
}
