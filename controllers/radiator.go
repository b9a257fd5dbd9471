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

// CreateRadiatorInput defines the expected JSON structure for a parts order
type CreateRadiatorInput struct {
	Name          string  `json:"name" binding:"required"`
	PartType      string  `json:"partType" binding:"required"`
	CustomerName  string  `json:"customerName" binding:"required"`
	ContactNumber string  `json:"contactNumber" binding:"required"`
	Status        *string `json:"status"`
	DateReceived  *string `json:"dateReceived"` // YYYY-MM-DD, defaults to today
	InvoiceNumber *string `json:"invoiceNumber"`
	Notes         string  `json:"notes"`
}

// UpdateRadiatorInput defines the expected JSON structure for updating a
// parts order. DateReceived is fixed at creation time.
type UpdateRadiatorInput struct {
	Name          *string `json:"name"`
	PartType      *string `json:"partType"`
	CustomerName  *string `json:"customerName"`
	ContactNumber *string `json:"contactNumber"`
	Status        *string `json:"status"`
	InvoiceNumber *string `json:"invoiceNumber"`
	Notes         *string `json:"notes"`
}

// CreateRadiator creates a parts order directly (not via a booking)
func CreateRadiator(c *gin.Context) {
	var input CreateRadiatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.ContactNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact number format")
		return
	}

	partType, err := models.ParsePartType(input.PartType)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid part type")
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

	radiator := models.Radiator{
		Name:          input.Name,
		PartType:      partType,
		CustomerName:  input.CustomerName,
		ContactNumber: input.ContactNumber,
		Status:        status,
		InvoiceNumber: input.InvoiceNumber,
		Notes:         input.Notes,
	}

	if input.DateReceived != nil {
		received, err := time.Parse("2006-01-02", *input.DateReceived)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date received, expected YYYY-MM-DD")
			return
		}
		radiator.DateReceived = received
	}

	if err := config.DB.Create(&radiator).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create parts order")
		return
	}

	c.JSON(http.StatusCreated, radiator)
}

// GetRadiators retrieves all parts orders, most recent first
func GetRadiators(c *gin.Context) {
	var radiators []models.Radiator
	if err := config.DB.Order("created_at DESC").Find(&radiators).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve parts orders")
		return
	}

	c.JSON(http.StatusOK, radiators)
}

// GetRadiator retrieves a specific parts order by ID
func GetRadiator(c *gin.Context) {
	var radiator models.Radiator
	if err := config.DB.First(&radiator, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Parts order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, radiator)
}

// UpdateRadiator updates an existing parts order
func UpdateRadiator(c *gin.Context) {
	var radiator models.Radiator
	if err := config.DB.First(&radiator, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Parts order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateRadiatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		radiator.Name = *input.Name
	}
	if input.PartType != nil {
		partType, err := models.ParsePartType(*input.PartType)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid part type")
			return
		}
		radiator.PartType = partType
	}
	if input.CustomerName != nil {
		radiator.CustomerName = *input.CustomerName
	}
	if input.ContactNumber != nil {
		if !utils.ValidatePhone(*input.ContactNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact number format")
			return
		}
		radiator.ContactNumber = *input.ContactNumber
	}
	if input.Status != nil {
		status, err := models.ParseJobStatus(*input.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		radiator.Status = status
	}
	if input.InvoiceNumber != nil {
		radiator.InvoiceNumber = input.InvoiceNumber
	}
	if input.Notes != nil {
		radiator.Notes = *input.Notes
	}

	if err := config.DB.Save(&radiator).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update parts order")
		return
	}

	c.JSON(http.StatusOK, radiator)
}

// DeleteRadiator deletes a parts order and clears any booking links pointing
// at it; the bookings themselves survive.
func DeleteRadiator(c *gin.Context) {
	var radiator models.Radiator
	if err := config.DB.First(&radiator, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Parts order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).
			Where("linked_radiator_id = ?", radiator.ID).
			Update("linked_radiator_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&radiator).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete parts order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Parts order deleted successfully"})
}
