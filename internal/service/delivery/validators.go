package delivery

import (
	"fmt"
	"strings"
)

func validateCreateInput(input CreateInput) error {
	if err := validateLocation("pickup", input.Pickup); err != nil {
		return err
	}
	if err := validateLocation("dropoff", input.Dropoff); err != nil {
		return err
	}

	if strings.TrimSpace(input.ProductDetails) == "" {
		return fmt.Errorf("%w: product details", ErrMissingRequiredFields)
	}

	if input.Priority != "" && !isValidPriority(input.Priority) {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, input.Priority)
	}

	return nil
}

func validateLocation(name string, loc LocationInput) error {
	if strings.TrimSpace(loc.Address) == "" {
		return fmt.Errorf("%w: %s address", ErrMissingRequiredFields, name)
	}

	// координаты - пара [longitude, latitude]
	if len(loc.Coordinates) != 2 {
		return fmt.Errorf("%w: %s coordinates must be [lon, lat]", ErrInvalidCoordinates, name)
	}

	lon, lat := loc.Coordinates[0], loc.Coordinates[1]
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: %s coordinates out of range", ErrInvalidCoordinates, name)
	}

	return nil
}

func isValidPriority(priority string) bool {
	switch priority {
	case "low", "medium", "high", "emergency":
		return true
	default:
		return false
	}
}

func isValidRequesterID(requesterID string) bool {
	return strings.TrimSpace(requesterID) != ""
}
