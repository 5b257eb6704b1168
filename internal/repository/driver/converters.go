package driver

import (
	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	driverEntity := &entities.Driver{
		ID:              d.ID,
		Name:            d.Name,
		Phone:           d.Phone,
		Status:          entities.DriverStatusType(d.Status),
		Rating:          d.Rating,
		ActiveOrders:    d.ActiveOrders,
		MaxActiveOrders: d.MaxActiveOrders,
		TotalDeliveries: d.TotalDeliveries,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	if d.Lat != nil && d.Lon != nil {
		driverEntity.Location = &geo.Coordinate{Lat: *d.Lat, Lon: *d.Lon}
	}

	if d.VehicleType != nil {
		vehicle := &entities.Vehicle{
			Type: entities.VehicleType(*d.VehicleType),
		}
		if d.VehicleFuel != nil {
			vehicle.Fuel = entities.FuelType(*d.VehicleFuel)
		}
		if d.VehiclePlate != nil {
			vehicle.Plate = *d.VehiclePlate
		}
		if d.MaxWeightKg != nil {
			vehicle.MaxWeightKg = *d.MaxWeightKg
		}
		if d.MaxVolumeL != nil {
			vehicle.MaxVolumeL = *d.MaxVolumeL
		}
		driverEntity.Vehicle = vehicle
	}

	return driverEntity
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{
		ID:              driverModify.ID,
		Name:            driverModify.Name,
		Phone:           driverModify.Phone,
		Rating:          driverModify.Rating,
		ActiveOrders:    driverModify.ActiveOrders,
		MaxActiveOrders: driverModify.MaxActiveOrders,
		TotalDeliveries: driverModify.TotalDeliveries,
	}

	if driverModify.Status != nil {
		status := driverModify.Status.String()
		driverDB.Status = &status
	}
	if driverModify.Location != nil {
		lat := driverModify.Location.Lat
		lon := driverModify.Location.Lon
		driverDB.Lat = &lat
		driverDB.Lon = &lon
	}
	if driverModify.Vehicle != nil {
		vehicleType := driverModify.Vehicle.Type.String()
		fuel := driverModify.Vehicle.Fuel.String()
		plate := driverModify.Vehicle.Plate
		maxWeight := driverModify.Vehicle.MaxWeightKg
		maxVolume := driverModify.Vehicle.MaxVolumeL
		driverDB.VehicleType = &vehicleType
		driverDB.VehicleFuel = &fuel
		driverDB.VehiclePlate = &plate
		driverDB.MaxWeightKg = &maxWeight
		driverDB.MaxVolumeL = &maxVolume
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
