package controllers

import (
	"errors"
	"net/http"
	"time"

	"workshop-backend/config"
	"workshop-backend/models"
	"workshop-backend/services"
	"workshop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for a booking intake
type CreateBookingInput struct {
	BookingType   string  `json:"bookingType" binding:"required"`
	CustomerName  string  `json:"customerName" binding:"required"`
	ContactNumber string  `json:"contactNumber" binding:"required"`
	BookingDate   string  `json:"bookingDate" binding:"required"` // YYYY-MM-DD
	BookingTime   *string `json:"bookingTime"`
	AllDay        bool    `json:"allDay"`
	WorkType      *string `json:"workType"`
	PartType      *string `json:"partType"`
	VehicleMake   *string `json:"vehicleMake"`
	VehicleModel  *string `json:"vehicleModel"`
	Description   *string `json:"description"`
	Notes         string  `json:"notes"`
	Status        *string `json:"status"`
}

// UpdateBookingInput defines the expected JSON structure for updating a booking
type UpdateBookingInput struct {
	CustomerName  *string `json:"customerName"`
	ContactNumber *string `json:"contactNumber"`
	BookingDate   *string `json:"bookingDate"`
	BookingTime   *string `json:"bookingTime"`
	AllDay        *bool   `json:"allDay"`
	WorkType      *string `json:"workType"`
	PartType      *string `json:"partType"`
	VehicleMake   *string `json:"vehicleMake"`
	VehicleModel  *string `json:"vehicleModel"`
	Description   *string `json:"description"`
	Notes         *string `json:"notes"`
	Status        *string `json:"status"`
}

// CreateBooking runs the full intake pipeline: validate, link to a prior
// record by customer name, persist, and create the derived Job or Radiator
// order.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.ContactNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact number format")
		return
	}

	bookingDate, err := time.Parse("2006-01-02", input.BookingDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking date, expected YYYY-MM-DD")
		return
	}

	status := models.BookingStatusPending
	if input.Status != nil {
		status, err = models.ParseBookingStatus(*input.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking status")
			return
		}
	}

	booking := models.Booking{
		BookingType:   models.BookingType(input.BookingType),
		CustomerName:  input.CustomerName,
		ContactNumber: input.ContactNumber,
		BookingDate:   bookingDate,
		BookingTime:   input.BookingTime,
		AllDay:        input.AllDay,
		WorkType:      input.WorkType,
		PartType:      input.PartType,
		VehicleMake:   input.VehicleMake,
		VehicleModel:  input.VehicleModel,
		Description:   input.Description,
		Notes:         input.Notes,
		Status:        status,
	}

	svc := services.NewBookingService(config.DB)
	result, err := svc.CreateBooking(&booking)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(c, http.StatusBadRequest, vErr.Error())
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	response := gin.H{"booking": result.Booking}
	if result.Job != nil {
		response["job"] = result.Job
	}
	if result.Radiator != nil {
		response["radiator"] = result.Radiator
	}
	if result.Message != "" {
		response["message"] = result.Message
	}
	if result.Warning != "" {
		response["warning"] = result.Warning
	}

	c.JSON(http.StatusCreated, response)
}

// GetBookings lists all bookings in calendar order
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Order("booking_date, booking_time").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking updates an existing booking. The conditional-field rules are
// re-applied; no new derived record is created on update.
func UpdateBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerName != nil {
		booking.CustomerName = *input.CustomerName
	}
	if input.ContactNumber != nil {
		if !utils.ValidatePhone(*input.ContactNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact number format")
			return
		}
		booking.ContactNumber = *input.ContactNumber
	}
	if input.BookingDate != nil {
		bookingDate, err := time.Parse("2006-01-02", *input.BookingDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking date, expected YYYY-MM-DD")
			return
		}
		booking.BookingDate = bookingDate
	}
	if input.BookingTime != nil {
		booking.BookingTime = input.BookingTime
	}
	if input.AllDay != nil {
		booking.AllDay = *input.AllDay
	}
	if input.WorkType != nil {
		booking.WorkType = input.WorkType
	}
	if input.PartType != nil {
		booking.PartType = input.PartType
	}
	if input.VehicleMake != nil {
		booking.VehicleMake = input.VehicleMake
	}
	if input.VehicleModel != nil {
		booking.VehicleModel = input.VehicleModel
	}
	if input.Description != nil {
		booking.Description = input.Description
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}
	if input.Status != nil {
		status, err := models.ParseBookingStatus(*input.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking status")
			return
		}
		booking.Status = status
	}

	if err := services.ValidateBooking(&booking); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking deletes a booking. Linked Jobs and Radiator orders are left
// untouched.
func DeleteBooking(c *gin.Context) {
	result := config.DB.Delete(&models.Booking{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// ReconcileBookings runs the unlinked-booking repair sweep on demand.
func ReconcileBookings(c *gin.Context) {
	svc := services.NewBookingService(config.DB)
	report, err := svc.ReconcileUnlinked()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Reconcile sweep failed")
		return
	}

	c.JSON(http.StatusOK, report)
}
