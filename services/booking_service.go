// services/booking_service.go
package services

import (
	"fmt"
	"log"

	"workshop-backend/models"

	"gorm.io/gorm"
)

// PlaceholderRegistration marks Jobs created from bookings; the intake form
// does not collect a registration number.
const PlaceholderRegistration = "TBD"

// BookingService runs the intake pipeline: validate, link to a prior record,
// persist the booking, then derive the operational Job or Radiator order.
type BookingService struct {
	DB       *gorm.DB
	Notifier *NotifyService
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Notifier: NewNotifyService()}
}

// CreateResult is what a successful intake hands back to the caller.
type CreateResult struct {
	Booking  *models.Booking
	Job      *models.Job
	Radiator *models.Radiator
	Message  string
	// Warning is set when the booking committed but the derived record could
	// not be created; the reconciliation sweep repairs this later.
	Warning string
}

// CreateBooking validates and persists a booking, then creates its derived
// record. The booking commit and the derived-record commit are separate
// transactions: a derived-record failure never rolls back or loses the
// booking, it only leaves it unlinked for reconciliation.
func (s *BookingService) CreateBooking(b *models.Booking) (*CreateResult, error) {
	if err := ValidateBooking(b); err != nil {
		return nil, err
	}

	// Link to the most recent existing record for this customer, if any.
	switch b.BookingType {
	case models.BookingTypeVehicle:
		id, err := s.latestJobID(b.CustomerName)
		if err != nil {
			return nil, err
		}
		b.LinkedJobID = id
	case models.BookingTypeRadiator:
		id, err := s.latestRadiatorID(b.CustomerName)
		if err != nil {
			return nil, err
		}
		b.LinkedRadiatorID = id
	}

	if err := s.DB.Create(b).Error; err != nil {
		return nil, err
	}

	res := &CreateResult{Booking: b}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.createDerived(tx, b, res)
	})
	if err != nil {
		log.Printf("booking %d saved but derived record creation failed: %v", b.ID, err)
		res.Warning = "booking saved, but the derived record could not be created; it will be repaired automatically"
		return res, nil
	}

	kind := "Job"
	if b.BookingType == models.BookingTypeRadiator {
		kind = "Radiator order"
	}
	res.Message = fmt.Sprintf("Booking and %s for %s have been created successfully!", kind, b.CustomerName)

	s.Notifier.SendBookingConfirmation(b.ContactNumber, res.Message)

	return res, nil
}

// createDerived synthesizes the Job or Radiator order from the booking and
// re-points the booking's link at it. The freshly created record always wins
// as the canonical link, overwriting whatever the linker found.
func (s *BookingService) createDerived(tx *gorm.DB, b *models.Booking, res *CreateResult) error {
	if b.BookingType == models.BookingTypeVehicle {
		job := &models.Job{
			CustomerName:        b.CustomerName,
			ContactNumber:       b.ContactNumber,
			VehicleRegistration: PlaceholderRegistration,
			VehicleMake:         deref(b.VehicleMake),
			VehicleModel:        deref(b.VehicleModel),
			WorkType:            models.WorkType(deref(b.WorkType)),
			Status:              models.JobStatusPending,
			// Reporting should reflect when the work was scheduled, not when
			// the record was typed in.
			DateReceived: b.BookingDate,
			Notes:        b.Notes,
		}
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		if err := tx.Model(b).Update("linked_job_id", job.ID).Error; err != nil {
			return err
		}
		b.LinkedJobID = &job.ID
		res.Job = job
		return nil
	}

	radiator := &models.Radiator{
		Name:          deref(b.Description),
		PartType:      models.PartType(deref(b.PartType)),
		CustomerName:  b.CustomerName,
		ContactNumber: b.ContactNumber,
		Status:        models.JobStatusPending,
		Notes:         b.Notes,
	}
	if err := tx.Create(radiator).Error; err != nil {
		return err
	}
	if err := tx.Model(b).Update("linked_radiator_id", radiator.ID).Error; err != nil {
		return err
	}
	b.LinkedRadiatorID = &radiator.ID
	res.Radiator = radiator
	return nil
}

// ReconcileReport summarizes a reconciliation sweep over unlinked bookings.
type ReconcileReport struct {
	Repaired int    `json:"repaired"`
	Failed   []uint `json:"failed,omitempty"`
}

// ReconcileUnlinked finds bookings whose derived record is missing (a crash
// between the booking write and the derived write leaves this state) and
// creates the missing record. Idempotent: linked bookings are never touched,
// so re-running the sweep is safe.
func (s *BookingService) ReconcileUnlinked() (ReconcileReport, error) {
	var report ReconcileReport

	var bookings []models.Booking
	err := s.DB.
		Where("status <> ?", models.BookingStatusCancelled).
		Where("(booking_type = ? AND linked_job_id IS NULL) OR (booking_type = ? AND linked_radiator_id IS NULL)",
			models.BookingTypeVehicle, models.BookingTypeRadiator).
		Find(&bookings).Error
	if err != nil {
		return report, err
	}

	for i := range bookings {
		b := &bookings[i]
		res := &CreateResult{Booking: b}
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.createDerived(tx, b, res)
		})
		if err != nil {
			log.Printf("reconcile: booking %d repair failed: %v", b.ID, err)
			report.Failed = append(report.Failed, b.ID)
			continue
		}
		report.Repaired++
	}

	return report, nil
}

func (s *BookingService) latestJobID(customerName string) (*uint, error) {
	var rows []CustomerRecord
	err := s.DB.Model(&models.Job{}).
		Select("id", "customer_name", "created_at").
		Where("LOWER(customer_name) = LOWER(?)", customerName).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return LatestCustomerMatch(customerName, rows), nil
}

func (s *BookingService) latestRadiatorID(customerName string) (*uint, error) {
	var rows []CustomerRecord
	err := s.DB.Model(&models.Radiator{}).
		Select("id", "customer_name", "created_at").
		Where("LOWER(customer_name) = LOWER(?)", customerName).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return LatestCustomerMatch(customerName, rows), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
