package driverpool

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidDriverID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status string) bool {
	switch status {
	case "available", "busy", "offline":
		return true
	default:
		return false
	}
}

func isValidVehicle(vehicle entities.Vehicle) bool {
	switch vehicle.Type {
	case entities.VehicleVan, entities.VehicleMotorcycle, entities.VehicleBicycle:
	default:
		return false
	}
	switch vehicle.Fuel {
	case entities.FuelDiesel, entities.FuelElectric, entities.FuelNone:
	default:
		return false
	}
	return vehicle.MaxWeightKg > 0 && vehicle.MaxVolumeL > 0
}

func isValidRating(rating float64) bool {
	return rating >= 0 && rating <= 5
}
