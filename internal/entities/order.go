package entities

import (
	"fmt"
	"math"
	"time"

	"dispatch/pkg/geo"
)

type Order struct {
	ID               string
	CustomerID       string
	TrackingNumber   string
	Status           OrderStatusType
	DriverID         *string
	DriverName       *string
	AssignmentMethod *AssignmentMethodType
	Pickup           Address
	Dropoff          Address
	Package          Package
	DistanceKm       float64
	Cost             int64
	ScheduledFor     *time.Time
	CreatedAt        time.Time
	AssignedAt       *time.Time
	PickedUpAt       *time.Time
	InTransitAt      *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	UpdatedAt        time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAssigned  OrderStatusType = "assigned"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type AssignmentMethodType string

const (
	AssignmentAuto   AssignmentMethodType = "auto"
	AssignmentManual AssignmentMethodType = "manual"

	// AssignmentPending marks an order that could not be dispatched yet.
	// It only appears on events, never on a stored order.
	AssignmentPending AssignmentMethodType = "pending"
)

func (t AssignmentMethodType) String() string {
	return string(t)
}

// allowedTransitions is the delivery lifecycle. Cancellation is handled
// separately and is allowed from every status except delivered.
var allowedTransitions = map[OrderStatusType]OrderStatusType{
	OrderPending:   OrderAssigned,
	OrderAssigned:  OrderPickedUp,
	OrderPickedUp:  OrderInTransit,
	OrderInTransit: OrderDelivered,
}

// CanTransition reports whether the order may move to the target status.
func (o *Order) CanTransition(target OrderStatusType) bool {
	if target == OrderCancelled {
		return o.Status != OrderDelivered && o.Status != OrderCancelled
	}
	return allowedTransitions[o.Status] == target
}

// SetStatus moves the order to the target status and stamps the matching
// timestamp. Callers validate the transition first.
func (o *Order) SetStatus(target OrderStatusType, at time.Time) {
	o.Status = target
	o.UpdatedAt = at

	switch target {
	case OrderAssigned:
		o.AssignedAt = &at
	case OrderPickedUp:
		o.PickedUpAt = &at
	case OrderInTransit:
		o.InTransitAt = &at
	case OrderDelivered:
		o.DeliveredAt = &at
	case OrderCancelled:
		o.CancelledAt = &at
	}
}

type Address struct {
	Street     string
	Commune    string
	Region     string
	Coordinate geo.Coordinate
}

type Package struct {
	Type        PackageType
	Description string
	WeightKg    float64
	LengthCm    float64
	WidthCm     float64
	HeightCm    float64
	Fragile     bool
}

type PackageType string

const (
	PackageStandard     PackageType = "standard"
	PackageDocument     PackageType = "document"
	PackageFragile      PackageType = "fragile"
	PackageRefrigerated PackageType = "refrigerated"
)

func (t PackageType) String() string {
	return string(t)
}

// VolumeL returns the package volume in liters.
func (p Package) VolumeL() float64 {
	return p.LengthCm * p.WidthCm * p.HeightCm / 1000
}

const (
	costBase         = 2500
	costPerKm        = 150
	costPerKg        = 100
	costFragileExtra = 1000
)

// CalculateCost prices a delivery. The result is fixed at order creation
// and never recalculated.
func CalculateCost(distanceKm, weightKg float64, fragile bool) int64 {
	cost := float64(costBase) + distanceKm*costPerKm + weightKg*costPerKg
	if fragile {
		cost += costFragileExtra
	}
	return int64(math.Round(cost))
}

// TrackingNumber builds the customer facing code from the order id,
// keeping the last 8 digits found in it.
func TrackingNumber(orderID string) string {
	digits := make([]byte, 0, len(orderID))
	for i := 0; i < len(orderID); i++ {
		if orderID[i] >= '0' && orderID[i] <= '9' {
			digits = append(digits, orderID[i])
		}
	}
	if len(digits) > 8 {
		digits = digits[len(digits)-8:]
	}
	return fmt.Sprintf("ECO%08s", string(digits))
}

type OrderFilter struct {
	CustomerID *string
	DriverID   *string
	Status     *OrderStatusType
}

type OrderModify struct {
	ID               *string
	CustomerID       *string
	TrackingNumber   *string
	Status           *OrderStatusType
	DriverID         *string
	DriverName       *string
	AssignmentMethod *AssignmentMethodType
	DistanceKm       *float64
	Cost             *int64
	ScheduledFor     *time.Time
	AssignedAt       *time.Time
	PickedUpAt       *time.Time
	InTransitAt      *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
}
