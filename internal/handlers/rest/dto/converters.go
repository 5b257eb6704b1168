package dto

import "dispatch/internal/entities"

func FromOrder(orderEntity *entities.Order) Order {
	orderDTO := Order{
		ID:             orderEntity.ID,
		CustomerID:     orderEntity.CustomerID,
		TrackingNumber: orderEntity.TrackingNumber,
		Status:         orderEntity.Status.String(),
		DriverID:       orderEntity.DriverID,
		DriverName:     orderEntity.DriverName,
		Pickup: Address{
			Street:  orderEntity.Pickup.Street,
			Commune: orderEntity.Pickup.Commune,
			Region:  orderEntity.Pickup.Region,
			Lat:     orderEntity.Pickup.Coordinate.Lat,
			Lon:     orderEntity.Pickup.Coordinate.Lon,
		},
		Dropoff: Address{
			Street:  orderEntity.Dropoff.Street,
			Commune: orderEntity.Dropoff.Commune,
			Region:  orderEntity.Dropoff.Region,
			Lat:     orderEntity.Dropoff.Coordinate.Lat,
			Lon:     orderEntity.Dropoff.Coordinate.Lon,
		},
		Package: Package{
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
		method := orderEntity.AssignmentMethod.String()
		orderDTO.AssignmentMethod = &method
	}
	return orderDTO
}

func FromDriver(driverEntity *entities.Driver) Driver {
	driverDTO := Driver{
		ID:              driverEntity.ID,
		Name:            driverEntity.Name,
		Phone:           driverEntity.Phone,
		Status:          driverEntity.Status.String(),
		Rating:          driverEntity.Rating,
		ActiveOrders:    driverEntity.ActiveOrders,
		MaxActiveOrders: driverEntity.MaxActiveOrders,
		TotalDeliveries: driverEntity.TotalDeliveries,
	}
	if driverEntity.Location != nil {
		lat := driverEntity.Location.Lat
		lon := driverEntity.Location.Lon
		driverDTO.Lat = &lat
		driverDTO.Lon = &lon
	}
	if driverEntity.Vehicle != nil {
		driverDTO.Vehicle = &Vehicle{
			Type:        driverEntity.Vehicle.Type.String(),
			Fuel:        driverEntity.Vehicle.Fuel.String(),
			Plate:       driverEntity.Vehicle.Plate,
			MaxWeightKg: driverEntity.Vehicle.MaxWeightKg,
			MaxVolumeL:  driverEntity.Vehicle.MaxVolumeL,
		}
	}
	return driverDTO
}
