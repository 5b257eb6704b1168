package orderevents

import (
	"time"

	"dispatch/internal/entities"
)

type orderEventMessage struct {
	Type           string       `json:"type"`
	Order          orderMessage `json:"order"`
	PreviousStatus string       `json:"previous_status,omitempty"`
	Method         string       `json:"method,omitempty"`
	Reason         string       `json:"reason,omitempty"`
	OccurredAt     time.Time    `json:"occurred_at"`
}

type orderMessage struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customer_id"`
	TrackingNumber   string         `json:"tracking_number"`
	Status           string         `json:"status"`
	DriverID         *string        `json:"driver_id,omitempty"`
	DriverName       *string        `json:"driver_name,omitempty"`
	AssignmentMethod string         `json:"assignment_method,omitempty"`
	Pickup           addressMessage `json:"pickup"`
	Dropoff          addressMessage `json:"dropoff"`
	Package          packageMessage `json:"package"`
	DistanceKm       float64        `json:"distance_km"`
	Cost             int64          `json:"cost"`
	ScheduledFor     *time.Time     `json:"scheduled_for,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	AssignedAt       *time.Time     `json:"assigned_at,omitempty"`
	PickedUpAt       *time.Time     `json:"picked_up_at,omitempty"`
	InTransitAt      *time.Time     `json:"in_transit_at,omitempty"`
	DeliveredAt      *time.Time     `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time     `json:"cancelled_at,omitempty"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type addressMessage struct {
	Street  string  `json:"street"`
	Commune string  `json:"commune"`
	Region  string  `json:"region,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type packageMessage struct {
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	WeightKg    float64 `json:"weight_kg"`
	LengthCm    float64 `json:"length_cm"`
	WidthCm     float64 `json:"width_cm"`
	HeightCm    float64 `json:"height_cm"`
	Fragile     bool    `json:"fragile"`
}

func fromDomain(event entities.OrderEvent) orderEventMessage {
	message := orderEventMessage{
		Type:       string(event.Type),
		Order:      orderFromDomain(event.Order),
		Reason:     event.Reason,
		OccurredAt: event.OccurredAt,
	}

	if event.PreviousStatus != nil {
		message.PreviousStatus = event.PreviousStatus.String()
	}
	if event.Method != nil {
		message.Method = event.Method.String()
	}

	return message
}

func orderFromDomain(orderEntity entities.Order) orderMessage {
	message := orderMessage{
		ID:             orderEntity.ID,
		CustomerID:     orderEntity.CustomerID,
		TrackingNumber: orderEntity.TrackingNumber,
		Status:         orderEntity.Status.String(),
		DriverID:       orderEntity.DriverID,
		DriverName:     orderEntity.DriverName,
		Pickup:         addressFromDomain(orderEntity.Pickup),
		Dropoff:        addressFromDomain(orderEntity.Dropoff),
		Package: packageMessage{
			Type:        orderEntity.Package.Type.String(),
			Description: orderEntity.Package.Description,
			WeightKg:    orderEntity.Package.WeightKg,
			LengthCm:    orderEntity.Package.LengthCm,
			WidthCm:     orderEntity.Package.WidthCm,
			HeightCm:    orderEntity.Package.HeightCm,
			Fragile:     orderEntity.Package.Fragile,
		},
		DistanceKm:   orderEntity.DistanceKm,
		Cost:         orderEntity.Cost,
		ScheduledFor: orderEntity.ScheduledFor,
		CreatedAt:    orderEntity.CreatedAt,
		AssignedAt:   orderEntity.AssignedAt,
		PickedUpAt:   orderEntity.PickedUpAt,
		InTransitAt:  orderEntity.InTransitAt,
		DeliveredAt:  orderEntity.DeliveredAt,
		CancelledAt:  orderEntity.CancelledAt,
		UpdatedAt:    orderEntity.UpdatedAt,
	}

	if orderEntity.AssignmentMethod != nil {
		message.AssignmentMethod = orderEntity.AssignmentMethod.String()
	}

	return message
}

func addressFromDomain(address entities.Address) addressMessage {
	return addressMessage{
		Street:  address.Street,
		Commune: address.Commune,
		Region:  address.Region,
		Lat:     address.Coordinate.Lat,
		Lon:     address.Coordinate.Lon,
	}
}
