package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingType string

const (
	BookingTypeVehicle  BookingType = "vehicle"
	BookingTypeRadiator BookingType = "radiator"
)

// ParseBookingType validates the intake discriminator. The set is closed:
// anything outside it is rejected, never coerced.
func ParseBookingType(s string) (BookingType, error) {
	switch BookingType(s) {
	case BookingTypeVehicle, BookingTypeRadiator:
		return BookingType(s), nil
	default:
		return "", fmt.Errorf("unknown booking type: %s", s)
	}
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// Booking is a scheduled customer intake, either for vehicle work or a
// radiator/part order. Exactly one of the two conditional field groups
// (work type + vehicle make/model, or part type + description) is populated,
// depending on BookingType; the validator clears the other group.
type Booking struct {
	gorm.Model

	BookingType   BookingType `gorm:"type:varchar(20);not null" json:"bookingType"`
	CustomerName  string      `gorm:"size:200;not null" json:"customerName"`
	ContactNumber string      `gorm:"size:20;not null" json:"contactNumber"`

	BookingDate time.Time `gorm:"not null" json:"bookingDate"`
	BookingTime *string   `gorm:"size:5" json:"bookingTime"` // "HH:MM"; always nil when AllDay
	AllDay      bool      `gorm:"default:false" json:"allDay"`

	// Vehicle bookings only.
	WorkType     *string `gorm:"size:50" json:"workType"`
	VehicleMake  *string `gorm:"size:100" json:"vehicleMake"`
	VehicleModel *string `gorm:"size:100" json:"vehicleModel"`

	// Radiator bookings only.
	PartType    *string `gorm:"size:50" json:"partType"`
	Description *string `gorm:"size:500" json:"description"`

	Notes  string        `gorm:"type:text" json:"notes"`
	Status BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Weak back-references: deleting the Job/Radiator clears these, never the
	// booking itself.
	LinkedJobID      *uint `gorm:"index" json:"linkedJobId"`
	LinkedRadiatorID *uint `gorm:"index" json:"linkedRadiatorId"`
}

// TypeColor returns the calendar color for the booking type: purple for
// vehicle work, green for radiator orders.
func (b *Booking) TypeColor() string {
	if b.BookingType == BookingTypeVehicle {
		return "#667eea"
	}
	return "#48bb78"
}

// CalendarTitle derives the event title shown on the calendar.
func (b *Booking) CalendarTitle() string {
	if b.BookingType == BookingTypeVehicle &&
		b.VehicleMake != nil && *b.VehicleMake != "" &&
		b.VehicleModel != nil && *b.VehicleModel != "" {
		return fmt.Sprintf("%s - %s %s", b.CustomerName, *b.VehicleMake, *b.VehicleModel)
	}
	if b.BookingType == BookingTypeRadiator && b.Description != nil && *b.Description != "" {
		desc := *b.Description
		if len(desc) > 30 {
			desc = desc[:30]
		}
		return fmt.Sprintf("%s - %s", b.CustomerName, desc)
	}
	label := "Radiator"
	if b.BookingType == BookingTypeVehicle {
		label = "Vehicle"
	}
	return fmt.Sprintf("%s - %s", b.CustomerName, label)
}
