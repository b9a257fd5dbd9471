package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "Pending"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusCompleted  JobStatus = "Completed"
)

func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted:
		return JobStatus(s), nil
	default:
		return "", fmt.Errorf("unknown job status: %s", s)
	}
}

type WorkType string

const (
	WorkTypeRepair              WorkType = "repair"
	WorkTypeService             WorkType = "service"
	WorkTypeRadiatorReplacement WorkType = "radiator_replacement"
	WorkTypeOther               WorkType = "other"
)

func ParseWorkType(s string) (WorkType, error) {
	switch WorkType(s) {
	case WorkTypeRepair, WorkTypeService, WorkTypeRadiatorReplacement, WorkTypeOther:
		return WorkType(s), nil
	default:
		return "", fmt.Errorf("unknown work type: %s", s)
	}
}

// Display returns the human-readable work type label used in exports.
func (w WorkType) Display() string {
	switch w {
	case WorkTypeRepair:
		return "Repair"
	case WorkTypeService:
		return "Service"
	case WorkTypeRadiatorReplacement:
		return "Radiator Replacement"
	case WorkTypeOther:
		return "Other"
	default:
		return string(w)
	}
}

// Job is an operational workshop record for vehicle work in progress. It is
// created either directly or as the derived record of a vehicle booking.
type Job struct {
	gorm.Model

	CustomerName        string   `gorm:"size:200;not null" json:"customerName"`
	ContactNumber       string   `gorm:"size:20;not null" json:"contactNumber"`
	VehicleRegistration string   `gorm:"size:50;not null" json:"vehicleRegistration"`
	VehicleMake         string   `gorm:"size:100;not null" json:"vehicleMake"`
	VehicleModel        string   `gorm:"size:100;not null" json:"vehicleModel"`
	WorkType            WorkType `gorm:"type:varchar(50);not null" json:"workType"`

	Status JobStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`

	// DateReceived is fixed at creation time; update handlers never touch it.
	DateReceived  time.Time  `json:"dateReceived"`
	DateCompleted *time.Time `json:"dateCompleted"`

	InvoiceNumber *string `gorm:"size:50" json:"invoiceNumber"`
	Notes         string  `gorm:"type:text" json:"notes"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.DateReceived.IsZero() {
		j.DateReceived = time.Now()
	}
	return nil
}

// BeforeSave keeps date_completed consistent with the status on every write.
func (j *Job) BeforeSave(tx *gorm.DB) error {
	j.DateCompleted = CompletionDate(j.Status == JobStatusCompleted, j.DateCompleted)
	return nil
}
