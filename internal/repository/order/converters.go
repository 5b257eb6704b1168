package order

import (
	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		TrackingNumber: o.TrackingNumber,
		Status:         entities.OrderStatusType(o.Status),
		DriverID:       o.DriverID,
		DriverName:     o.DriverName,
		Pickup: entities.Address{
			Street:     o.PickupStreet,
			Commune:    o.PickupCommune,
			Region:     o.PickupRegion,
			Coordinate: geo.Coordinate{Lat: o.PickupLat, Lon: o.PickupLon},
		},
		Dropoff: entities.Address{
			Street:     o.DropoffStreet,
			Commune:    o.DropoffCommune,
			Region:     o.DropoffRegion,
			Coordinate: geo.Coordinate{Lat: o.DropoffLat, Lon: o.DropoffLon},
		},
		Package: entities.Package{
			Type:        entities.PackageType(o.PackageType),
			Description: o.PackageDescription,
			WeightKg:    o.WeightKg,
			LengthCm:    o.LengthCm,
			WidthCm:     o.WidthCm,
			HeightCm:    o.HeightCm,
			Fragile:     o.Fragile,
		},
		DistanceKm:   o.DistanceKm,
		Cost:         o.Cost,
		ScheduledFor: o.ScheduledFor,
		CreatedAt:    o.CreatedAt,
		AssignedAt:   o.AssignedAt,
		PickedUpAt:   o.PickedUpAt,
		InTransitAt:  o.InTransitAt,
		DeliveredAt:  o.DeliveredAt,
		CancelledAt:  o.CancelledAt,
		UpdatedAt:    o.UpdatedAt,
	}

	if o.AssignmentMethod != nil {
		method := entities.AssignmentMethodType(*o.AssignmentMethod)
		orderEntity.AssignmentMethod = &method
	}

	return orderEntity
}

func FromDomain(orderEntity *entities.Order) *OrderDB {
	if orderEntity == nil {
		return nil
	}

	orderDB := &OrderDB{
		ID:                 orderEntity.ID,
		CustomerID:         orderEntity.CustomerID,
		TrackingNumber:     orderEntity.TrackingNumber,
		Status:             orderEntity.Status.String(),
		DriverID:           orderEntity.DriverID,
		DriverName:         orderEntity.DriverName,
		PickupStreet:       orderEntity.Pickup.Street,
		PickupCommune:      orderEntity.Pickup.Commune,
		PickupRegion:       orderEntity.Pickup.Region,
		PickupLat:          orderEntity.Pickup.Coordinate.Lat,
		PickupLon:          orderEntity.Pickup.Coordinate.Lon,
		DropoffStreet:      orderEntity.Dropoff.Street,
		DropoffCommune:     orderEntity.Dropoff.Commune,
		DropoffRegion:      orderEntity.Dropoff.Region,
		DropoffLat:         orderEntity.Dropoff.Coordinate.Lat,
		DropoffLon:         orderEntity.Dropoff.Coordinate.Lon,
		PackageType:        orderEntity.Package.Type.String(),
		PackageDescription: orderEntity.Package.Description,
		WeightKg:           orderEntity.Package.WeightKg,
		LengthCm:           orderEntity.Package.LengthCm,
		WidthCm:            orderEntity.Package.WidthCm,
		HeightCm:           orderEntity.Package.HeightCm,
		Fragile:            orderEntity.Package.Fragile,
		DistanceKm:         orderEntity.DistanceKm,
		Cost:               orderEntity.Cost,
		ScheduledFor:       orderEntity.ScheduledFor,
		CreatedAt:          orderEntity.CreatedAt,
		UpdatedAt:          orderEntity.UpdatedAt,
	}

	if orderEntity.AssignmentMethod != nil {
		method := orderEntity.AssignmentMethod.String()
		orderDB.AssignmentMethod = &method
	}

	return orderDB
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		ID:             orderModify.ID,
		CustomerID:     orderModify.CustomerID,
		TrackingNumber: orderModify.TrackingNumber,
		DriverID:       orderModify.DriverID,
		DriverName:     orderModify.DriverName,
		DistanceKm:     orderModify.DistanceKm,
		Cost:           orderModify.Cost,
		ScheduledFor:   orderModify.ScheduledFor,
		AssignedAt:     orderModify.AssignedAt,
		PickedUpAt:     orderModify.PickedUpAt,
		InTransitAt:    orderModify.InTransitAt,
		DeliveredAt:    orderModify.DeliveredAt,
		CancelledAt:    orderModify.CancelledAt,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.AssignmentMethod != nil {
		method := orderModify.AssignmentMethod.String()
		orderDB.AssignmentMethod = &method
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
