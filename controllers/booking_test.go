package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"workshop-backend/config"
	"workshop-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest points the global DB at an isolated SQLite file and returns a
// router with the API routes mounted without auth middleware.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Job{}, &models.Radiator{}, &models.Booking{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	config.DB = gdb

	r := gin.New()
	r.POST("/api/bookings", CreateBooking)
	r.GET("/api/bookings/events", GetBookingEvents)
	r.POST("/api/bookings/reconcile", ReconcileBookings)
	r.DELETE("/api/jobs/:id", DeleteJob)
	r.DELETE("/api/radiators/:id", DeleteRadiator)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	r := setupTest(t)

	w := postJSON(t, r, "/api/bookings", gin.H{
		"bookingType":   "vehicle",
		"customerName":  "Jane Doe",
		"contactNumber": "+27821234567",
		"bookingDate":   "2024-05-01",
		"allDay":        true,
		"workType":      "service",
		"vehicleMake":   "Toyota",
		"vehicleModel":  "Corolla",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status: want 201, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Message string         `json:"message"`
		Booking models.Booking `json:"booking"`
		Job     *models.Job    `json:"job"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "Jane Doe") {
		t.Errorf("confirmation message must name the customer, got %q", resp.Message)
	}
	if resp.Job == nil {
		t.Fatal("expected a derived job in the response")
	}
	if resp.Job.VehicleRegistration != "TBD" {
		t.Errorf("VehicleRegistration: want TBD, got %q", resp.Job.VehicleRegistration)
	}
	if resp.Booking.BookingTime != nil {
		t.Error("all-day booking must persist with no time")
	}

	var jobs int64
	config.DB.Model(&models.Job{}).Count(&jobs)
	if jobs != 1 {
		t.Errorf("want 1 job in store, got %d", jobs)
	}
}

func TestCreateBookingEndpoint_ValidationFailure(t *testing.T) {
	r := setupTest(t)

	w := postJSON(t, r, "/api/bookings", gin.H{
		"bookingType":   "vehicle",
		"customerName":  "Jane Doe",
		"contactNumber": "+27821234567",
		"bookingDate":   "2024-05-01",
		"allDay":        true,
		"workType":      "service",
		// vehicleMake missing
		"vehicleModel": "Corolla",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "vehicle_make") {
		t.Errorf("error must name the missing field, got %s", w.Body.String())
	}

	var bookings, jobs int64
	config.DB.Model(&models.Booking{}).Count(&bookings)
	config.DB.Model(&models.Job{}).Count(&jobs)
	if bookings != 0 || jobs != 0 {
		t.Errorf("no records may exist after a validation failure: bookings=%d jobs=%d", bookings, jobs)
	}
}

func TestBookingEventsProjection(t *testing.T) {
	r := setupTest(t)

	timed := "14:00"
	desc := "Leaking intercooler"
	part := "Intercooler"
	seed := []models.Booking{
		{
			BookingType:   models.BookingTypeRadiator,
			CustomerName:  "Bob",
			ContactNumber: "+27829876543",
			BookingDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			BookingTime:   &timed,
			PartType:      &part,
			Description:   &desc,
			Status:        models.BookingStatusPending,
		},
		{
			BookingType:   models.BookingTypeVehicle,
			CustomerName:  "Jane Doe",
			ContactNumber: "+27821234567",
			BookingDate:   time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
			AllDay:        true,
			Status:        models.BookingStatusConfirmed,
		},
	}
	for i := range seed {
		if err := config.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/events?start=2024-06-01&end=2024-06-30", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", w.Code)
	}

	var events []CalendarEvent
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("range filter: want 1 event in June, got %d", len(events))
	}

	ev := events[0]
	if ev.Title != "Bob - Leaking intercooler" {
		t.Errorf("title: got %q", ev.Title)
	}
	if ev.Color != "#48bb78" {
		t.Errorf("color: want radiator green, got %q", ev.Color)
	}
	if ev.AllDay {
		t.Error("timed booking projected as all-day")
	}
	if !strings.Contains(ev.Start, "T14:00") {
		t.Errorf("start must carry the booking time, got %q", ev.Start)
	}
}

func TestDeleteJobClearsBookingLink(t *testing.T) {
	r := setupTest(t)

	job := models.Job{
		CustomerName:        "Jane Doe",
		ContactNumber:       "+27821234567",
		VehicleRegistration: "TBD",
		VehicleMake:         "Toyota",
		VehicleModel:        "Corolla",
		WorkType:            models.WorkTypeService,
		Status:              models.JobStatusPending,
	}
	if err := config.DB.Create(&job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}

	wt := "service"
	mk, model := "Toyota", "Corolla"
	booking := models.Booking{
		BookingType:   models.BookingTypeVehicle,
		CustomerName:  "Jane Doe",
		ContactNumber: "+27821234567",
		BookingDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		AllDay:        true,
		WorkType:      &wt,
		VehicleMake:   &mk,
		VehicleModel:  &model,
		LinkedJobID:   &job.ID,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/jobs/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d (%s)", w.Code, w.Body.String())
	}

	var reloaded models.Booking
	if err := config.DB.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("booking must survive job deletion: %v", err)
	}
	if reloaded.LinkedJobID != nil {
		t.Error("booking link must be cleared when the job is deleted")
	}
}
