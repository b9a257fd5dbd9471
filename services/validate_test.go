package services

import (
	"errors"
	"testing"
	"time"

	"workshop-backend/models"
)

func vehicleBooking() *models.Booking {
	return &models.Booking{
		BookingType:   models.BookingTypeVehicle,
		CustomerName:  "Jane Doe",
		ContactNumber: "+27821234567",
		BookingDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		BookingTime:   str("09:00"),
		WorkType:      str("service"),
		VehicleMake:   str("Toyota"),
		VehicleModel:  str("Corolla"),
	}
}

func radiatorBooking() *models.Booking {
	return &models.Booking{
		BookingType:   models.BookingTypeRadiator,
		CustomerName:  "Bob",
		ContactNumber: "+27821234568",
		BookingDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		BookingTime:   str("14:00"),
		PartType:      str("Intercooler"),
		Description:   str("Leaking intercooler"),
	}
}

func TestValidateBooking_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(b *models.Booking)
		wantField string
	}{
		{"time required when not all day", func(b *models.Booking) { b.BookingTime = nil }, "booking_time"},
		{"bad time format", func(b *models.Booking) { b.BookingTime = str("2pm") }, "booking_time"},
		{"vehicle needs work type", func(b *models.Booking) { b.WorkType = nil }, "work_type"},
		{"vehicle rejects unknown work type", func(b *models.Booking) { b.WorkType = str("detailing") }, "work_type"},
		{"vehicle needs make", func(b *models.Booking) { b.VehicleMake = nil }, "vehicle_make"},
		{"vehicle needs model", func(b *models.Booking) { b.VehicleModel = str("") }, "vehicle_model"},
		{"unknown booking type", func(b *models.Booking) { b.BookingType = "boat" }, "booking_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := vehicleBooking()
			tt.mutate(b)

			err := ValidateBooking(b)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("field: want %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}
}

func TestValidateBooking_RadiatorRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(b *models.Booking)
		wantField string
	}{
		{"radiator needs part type", func(b *models.Booking) { b.PartType = nil }, "part_type"},
		{"radiator rejects unknown part type", func(b *models.Booking) { b.PartType = str("Turbo") }, "part_type"},
		{"radiator needs description", func(b *models.Booking) { b.Description = nil }, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := radiatorBooking()
			tt.mutate(b)

			err := ValidateBooking(b)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("field: want %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}
}

func TestValidateBooking_AllDayClearsTime(t *testing.T) {
	b := vehicleBooking()
	b.AllDay = true
	b.BookingTime = str("09:00") // supplied anyway; must be silently dropped

	if err := ValidateBooking(b); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if b.BookingTime != nil {
		t.Errorf("BookingTime: want nil for all-day booking, got %q", *b.BookingTime)
	}
}

func TestValidateBooking_ClearsOppositeFieldGroup(t *testing.T) {
	vb := vehicleBooking()
	vb.PartType = str("Radiator")
	vb.Description = str("stray radiator fields")
	if err := ValidateBooking(vb); err != nil {
		t.Fatalf("validate vehicle: %v", err)
	}
	if vb.PartType != nil || vb.Description != nil {
		t.Error("vehicle booking kept radiator fields after validation")
	}
	if vb.WorkType == nil || vb.VehicleMake == nil || vb.VehicleModel == nil {
		t.Error("vehicle booking lost its own fields")
	}

	rb := radiatorBooking()
	rb.WorkType = str("repair")
	rb.VehicleMake = str("Ford")
	rb.VehicleModel = str("Focus")
	if err := ValidateBooking(rb); err != nil {
		t.Fatalf("validate radiator: %v", err)
	}
	if rb.WorkType != nil || rb.VehicleMake != nil || rb.VehicleModel != nil {
		t.Error("radiator booking kept vehicle fields after validation")
	}
	if rb.PartType == nil || rb.Description == nil {
		t.Error("radiator booking lost its own fields")
	}
}
