package order

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidOrderID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidCustomerID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidAddress(address entities.Address) bool {
	if strings.TrimSpace(address.Street) == "" || strings.TrimSpace(address.Commune) == "" {
		return false
	}
	return address.Coordinate.Validate() == nil
}

func isValidPackage(pkg entities.Package) bool {
	switch pkg.Type {
	case entities.PackageStandard, entities.PackageDocument,
		entities.PackageFragile, entities.PackageRefrigerated:
	default:
		return false
	}
	if pkg.WeightKg <= 0 {
		return false
	}
	return pkg.LengthCm > 0 && pkg.WidthCm > 0 && pkg.HeightCm > 0
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "assigned", "picked_up", "in_transit", "delivered", "cancelled":
		return true
	default:
		return false
	}
}
