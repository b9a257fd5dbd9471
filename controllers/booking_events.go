package controllers

import (
	"net/http"
	"time"

	"workshop-backend/config"
	"workshop-backend/models"
	"workshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// CalendarEvent is the projection the calendar UI consumes (FullCalendar
// event shape).
type CalendarEvent struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Start         string `json:"start"`
	End           string `json:"end"`
	AllDay        bool   `json:"allDay"`
	Color         string `json:"color"`
	ExtendedProps gin.H  `json:"extendedProps"`
}

// parseRangeParam accepts either a full RFC3339 timestamp or a bare date;
// unparsable values are ignored, mirroring a tolerant calendar widget.
func parseRangeParam(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// GetBookingEvents returns bookings in an optional [start, end] date range,
// projected to calendar events.
func GetBookingEvents(c *gin.Context) {
	query := config.DB.Model(&models.Booking{})

	if start, ok := parseRangeParam(c.Query("start")); ok {
		query = query.Where("booking_date >= ?", utils.BeginningOfDay(start))
	}
	if end, ok := parseRangeParam(c.Query("end")); ok {
		query = query.Where("booking_date <= ?", utils.EndOfDay(end))
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	events := make([]CalendarEvent, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]

		var start, end time.Time
		if b.AllDay {
			start = utils.BeginningOfDay(b.BookingDate)
			end = utils.EndOfDay(b.BookingDate)
		} else {
			start = utils.CombineDateTime(b.BookingDate, derefStr(b.BookingTime))
			end = start.Add(time.Hour) // default 1 hour slot
		}

		events = append(events, CalendarEvent{
			ID:     b.ID,
			Title:  b.CalendarTitle(),
			Start:  start.Format(time.RFC3339),
			End:    end.Format(time.RFC3339),
			AllDay: b.AllDay,
			Color:  b.TypeColor(),
			ExtendedProps: gin.H{
				"bookingType":   b.BookingType,
				"customerName":  b.CustomerName,
				"contactNumber": b.ContactNumber,
				"description":   b.Description,
				"vehicleMake":   b.VehicleMake,
				"vehicleModel":  b.VehicleModel,
				"status":        b.Status,
				"notes":         b.Notes,
			},
		})
	}

	c.JSON(http.StatusOK, events)
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
