package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PartType string

const (
	PartTypeRadiator    PartType = "Radiator"
	PartTypeOilCooler   PartType = "Oil Cooler"
	PartTypeIntercooler PartType = "Intercooler"
	PartTypeFuelTank    PartType = "Fuel Tank"
	PartTypeOther       PartType = "Other"
)

func ParsePartType(s string) (PartType, error) {
	switch PartType(s) {
	case PartTypeRadiator, PartTypeOilCooler, PartTypeIntercooler, PartTypeFuelTank, PartTypeOther:
		return PartType(s), nil
	default:
		return "", fmt.Errorf("unknown part type: %s", s)
	}
}

// Radiator is a parts order for a radiator-class component (radiator, oil
// cooler, intercooler, fuel tank). It shares the Job status lifecycle and
// completion-date rule.
type Radiator struct {
	gorm.Model

	Name          string   `gorm:"size:200;not null" json:"name"`
	PartType      PartType `gorm:"type:varchar(50);not null" json:"partType"`
	CustomerName  string   `gorm:"size:200;not null" json:"customerName"`
	ContactNumber string   `gorm:"size:20;not null" json:"contactNumber"`

	Status JobStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`

	DateReceived  time.Time  `json:"dateReceived"`
	DateCompleted *time.Time `json:"dateCompleted"`

	InvoiceNumber *string `gorm:"size:50" json:"invoiceNumber"`
	Notes         string  `gorm:"type:text" json:"notes"`
}

func (r *Radiator) BeforeCreate(tx *gorm.DB) error {
	if r.DateReceived.IsZero() {
		r.DateReceived = time.Now()
	}
	return nil
}

func (r *Radiator) BeforeSave(tx *gorm.DB) error {
	r.DateCompleted = CompletionDate(r.Status == JobStatusCompleted, r.DateCompleted)
	return nil
}
