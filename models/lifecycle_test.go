package models

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dir := t.TempDir()
	dsn := filepath.Join(dir, "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&Job{}, &Radiator{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func TestCompletionDate(t *testing.T) {
	stamp := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	if got := CompletionDate(false, &stamp); got != nil {
		t.Errorf("non-completed status must clear the stamp, got %v", got)
	}
	if got := CompletionDate(true, &stamp); got == nil || !got.Equal(stamp) {
		t.Errorf("completed with existing stamp must keep it, got %v", got)
	}
	if got := CompletionDate(true, nil); got == nil {
		t.Error("completed with no stamp must set one")
	}
	if got := CompletionDate(false, nil); got != nil {
		t.Errorf("non-completed with no stamp stays nil, got %v", got)
	}
}

func testJob() *Job {
	return &Job{
		CustomerName:        "Jane Doe",
		ContactNumber:       "+27821234567",
		VehicleRegistration: "CA 123-456",
		VehicleMake:         "Toyota",
		VehicleModel:        "Corolla",
		WorkType:            WorkTypeService,
		Status:              JobStatusPending,
	}
}

func TestJobCompletionStamp(t *testing.T) {
	gdb := openTestDB(t)

	job := testJob()
	if err := gdb.Create(job).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.DateCompleted != nil {
		t.Fatal("pending job must not carry a completion date")
	}

	job.Status = JobStatusCompleted
	if err := gdb.Save(job).Error; err != nil {
		t.Fatalf("save: %v", err)
	}
	if job.DateCompleted == nil {
		t.Fatal("completed job must be stamped")
	}
	first := *job.DateCompleted

	// Re-saving while Completed must not shift the stamp.
	time.Sleep(20 * time.Millisecond)
	if err := gdb.Save(job).Error; err != nil {
		t.Fatalf("re-save: %v", err)
	}
	if !job.DateCompleted.Equal(first) {
		t.Errorf("idempotent re-save moved the stamp: %v -> %v", first, job.DateCompleted)
	}
}

func TestJobCompletionRestamp(t *testing.T) {
	gdb := openTestDB(t)

	job := testJob()
	job.Status = JobStatusCompleted
	if err := gdb.Create(job).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	first := *job.DateCompleted

	// Away from Completed clears the stamp, even though it was set.
	job.Status = JobStatusPending
	if err := gdb.Save(job).Error; err != nil {
		t.Fatalf("save pending: %v", err)
	}
	if job.DateCompleted != nil {
		t.Fatal("moving away from Completed must clear the stamp")
	}

	time.Sleep(20 * time.Millisecond)

	// Back to Completed stamps afresh, not the original date.
	job.Status = JobStatusCompleted
	if err := gdb.Save(job).Error; err != nil {
		t.Fatalf("save completed: %v", err)
	}
	if job.DateCompleted == nil {
		t.Fatal("second completion must be stamped")
	}
	if !job.DateCompleted.After(first) {
		t.Errorf("restamp must be a new timestamp: first=%v second=%v", first, job.DateCompleted)
	}
}

func TestRadiatorCompletionLifecycle(t *testing.T) {
	gdb := openTestDB(t)

	radiator := &Radiator{
		Name:          "Leaking intercooler",
		PartType:      PartTypeIntercooler,
		CustomerName:  "Bob",
		ContactNumber: "+27829876543",
		Status:        JobStatusInProgress,
	}
	if err := gdb.Create(radiator).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if radiator.DateCompleted != nil {
		t.Fatal("in-progress order must not carry a completion date")
	}
	if radiator.DateReceived.IsZero() {
		t.Fatal("date received must default to creation time")
	}

	radiator.Status = JobStatusCompleted
	if err := gdb.Save(radiator).Error; err != nil {
		t.Fatalf("save: %v", err)
	}
	if radiator.DateCompleted == nil {
		t.Fatal("completed order must be stamped")
	}
}

func TestParseClosedEnums(t *testing.T) {
	if _, err := ParseBookingType("boat"); err == nil {
		t.Error("ParseBookingType must reject unknown types")
	}
	if _, err := ParseJobStatus("Done"); err == nil {
		t.Error("ParseJobStatus must reject unknown statuses")
	}
	if _, err := ParseWorkType("detailing"); err == nil {
		t.Error("ParseWorkType must reject unknown work types")
	}
	if _, err := ParsePartType("Turbo"); err == nil {
		t.Error("ParsePartType must reject unknown part types")
	}
	if got, err := ParsePartType("Oil Cooler"); err != nil || got != PartTypeOilCooler {
		t.Errorf("ParsePartType(Oil Cooler) = %v, %v", got, err)
	}
}

func TestCalendarTitle(t *testing.T) {
	mk, model := "Toyota", "Corolla"
	vb := &Booking{
		BookingType:  BookingTypeVehicle,
		CustomerName: "Jane Doe",
		VehicleMake:  &mk,
		VehicleModel: &model,
	}
	if got := vb.CalendarTitle(); got != "Jane Doe - Toyota Corolla" {
		t.Errorf("vehicle title: got %q", got)
	}

	desc := "Leaking intercooler on a 2014 Ranger, needs pressure test"
	rb := &Booking{
		BookingType:  BookingTypeRadiator,
		CustomerName: "Bob",
		Description:  &desc,
	}
	if got := rb.CalendarTitle(); got != "Bob - "+desc[:30] {
		t.Errorf("radiator title: got %q", got)
	}

	bare := &Booking{BookingType: BookingTypeVehicle, CustomerName: "Jane Doe"}
	if got := bare.CalendarTitle(); got != "Jane Doe - Vehicle" {
		t.Errorf("fallback title: got %q", got)
	}
}
