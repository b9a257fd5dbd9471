package services

import (
	"time"

	"workshop-backend/models"
)

// ValidationError reports a user-correctable problem with a single intake
// field. It is always returned before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func blank(s *string) bool {
	return s == nil || *s == ""
}

// ValidateBooking enforces the conditional-field rules on a candidate booking
// and normalizes the mutually exclusive groups in place. Rules, in order:
// a time is required unless the booking is all-day; an all-day booking always
// has its time cleared; the field group for the other booking type is always
// cleared. It never touches the database.
func ValidateBooking(b *models.Booking) error {
	if !b.AllDay && blank(b.BookingTime) {
		return &ValidationError{Field: "booking_time", Message: "booking time is required when not selecting 'All Day'"}
	}
	if b.AllDay {
		b.BookingTime = nil
	}
	if b.BookingTime != nil {
		if _, err := time.Parse("15:04", *b.BookingTime); err != nil {
			return &ValidationError{Field: "booking_time", Message: "booking time must be in HH:MM format"}
		}
	}

	switch b.BookingType {
	case models.BookingTypeVehicle:
		if blank(b.WorkType) {
			return &ValidationError{Field: "work_type", Message: "work type is required for vehicle bookings"}
		}
		if _, err := models.ParseWorkType(*b.WorkType); err != nil {
			return &ValidationError{Field: "work_type", Message: "invalid work type"}
		}
		if blank(b.VehicleMake) {
			return &ValidationError{Field: "vehicle_make", Message: "vehicle make is required for vehicle bookings"}
		}
		if blank(b.VehicleModel) {
			return &ValidationError{Field: "vehicle_model", Message: "vehicle model is required for vehicle bookings"}
		}
		b.PartType = nil
		b.Description = nil
	case models.BookingTypeRadiator:
		if blank(b.PartType) {
			return &ValidationError{Field: "part_type", Message: "part type is required for radiator bookings"}
		}
		if _, err := models.ParsePartType(*b.PartType); err != nil {
			return &ValidationError{Field: "part_type", Message: "invalid part type"}
		}
		if blank(b.Description) {
			return &ValidationError{Field: "description", Message: "description is required for radiator bookings"}
		}
		b.WorkType = nil
		b.VehicleMake = nil
		b.VehicleModel = nil
	default:
		return &ValidationError{Field: "booking_type", Message: "booking type must be 'vehicle' or 'radiator'"}
	}

	return nil
}
