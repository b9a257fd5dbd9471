package controllers

import (
	"errors"
	"net/http"
	"time"

	"workshop-backend/config"
	"workshop-backend/models"
	"workshop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateJobInput defines the expected JSON structure for creating a job
type CreateJobInput struct {
	CustomerName        string  `json:"customerName" binding:"required"`
	ContactNumber       string  `json:"contactNumber" binding:"required"`
	VehicleRegistration string  `json:"vehicleRegistration" binding:"required"`
	VehicleMake         string  `json:"vehicleMake" binding:"required"`
	VehicleModel        string  `json:"vehicleModel" binding:"required"`
	WorkType            string  `json:"workType" binding:"required"`
	Status              *string `json:"status"`
	DateReceived        *string `json:"dateReceived"` // YYYY-MM-DD, defaults to today
	InvoiceNumber       *string `json:"invoiceNumber"`
	Notes               string  `json:"notes"`
}

// UpdateJobInput defines the expected JSON structure for updating a job.
// DateReceived is deliberately absent: it is fixed at creation time.
type UpdateJobInput struct {
	CustomerName        *string `json:"customerName"`
	ContactNumber       *string `json:"contactNumber"`
	VehicleRegistration *string `json:"vehicleRegistration"`
	VehicleMake         *string `json:"vehicleMake"`
	VehicleModel        *string `json:"vehicleModel"`
	WorkType            *string `json:"workType"`
	Status              *string `json:"status"`
	InvoiceNumber       *string `json:"invoiceNumber"`
	Notes               *string `json:"notes"`
}

// CreateJob creates a workshop job directly (not via a booking)
func CreateJob(c *gin.Context) {
	var input CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.ContactNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact number format")
		return
	}

	workType, err := models.ParseWorkType(input.WorkType)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid work type")
		return
	}

	status := models.JobStatusPending
	if input.Status != nil {
		status, err = models.ParseJobStatus(*input.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
	}

	job := models.Job{
		CustomerName:        input.CustomerName,
		ContactNumber:       input.ContactNumber,
		VehicleRegistration: input.VehicleRegistration,
		VehicleMake:         input.VehicleMake,
		VehicleModel:        input.VehicleModel,
		WorkType:            workType,
		Status:              status,
		InvoiceNumber:       input.InvoiceNumber,
		Notes:               input.Notes,
	}

	if input.DateReceived != nil {
		received, err := time.Parse("2006-01-02", *input.DateReceived)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date received, expected YYYY-MM-DD")
			return
		}
		job.DateReceived = received
	}

	if err := config.DB.Create(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJobs retrieves all jobs, most recent first
func GetJobs(c *gin.Context) {
	var jobs []models.Job
	if err := config.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob retrieves a specific job by ID
func GetJob(c *gin.Context) {
	var job models.Job
	if err := config.DB.First(&job, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJob updates an existing job. The completion-date rule applies on
// every save via the model hook.
func UpdateJob(c *gin.Context) {
	var job models.Job
	if err := config.DB.First(&job, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerName != nil {
		job.CustomerName = *input.CustomerName
	}
	if input.ContactNumber != nil {
		if !utils.ValidatePhone(*input.ContactNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact number format")
			return
		}
		job.ContactNumber = *input.ContactNumber
	}
	if input.VehicleRegistration != nil {
		job.VehicleRegistration = *input.VehicleRegistration
	}
	if input.VehicleMake != nil {
		job.VehicleMake = *input.VehicleMake
	}
	if input.VehicleModel != nil {
		job.VehicleModel = *input.VehicleModel
	}
	if input.WorkType != nil {
		workType, err := models.ParseWorkType(*input.WorkType)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid work type")
			return
		}
		job.WorkType = workType
	}
	if input.Status != nil {
		status, err := models.ParseJobStatus(*input.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		job.Status = status
	}
	if input.InvoiceNumber != nil {
		job.InvoiceNumber = input.InvoiceNumber
	}
	if input.Notes != nil {
		job.Notes = *input.Notes
	}

	if err := config.DB.Save(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob deletes a job and clears any booking links pointing at it; the
// bookings themselves survive.
func DeleteJob(c *gin.Context) {
	var job models.Job
	if err := config.DB.First(&job, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).
			Where("linked_job_id = ?", job.ID).
			Update("linked_job_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
