package services

import (
	"testing"
	"time"
)

func TestLatestCustomerMatch(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	records := []CustomerRecord{
		{ID: 1, CustomerName: "Jane Doe", CreatedAt: base},
		{ID: 2, CustomerName: "jane doe", CreatedAt: base.Add(48 * time.Hour)},
		{ID: 3, CustomerName: "Bob", CreatedAt: base.Add(72 * time.Hour)},
	}

	got := LatestCustomerMatch("JANE DOE", records)
	if got == nil {
		t.Fatal("expected a match")
	}
	if *got != 2 {
		t.Errorf("want most recent match (id 2), got %d", *got)
	}
}

func TestLatestCustomerMatch_TieBreaksOnHighestID(t *testing.T) {
	when := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []CustomerRecord{
		{ID: 7, CustomerName: "Bob", CreatedAt: when},
		{ID: 9, CustomerName: "Bob", CreatedAt: when},
		{ID: 8, CustomerName: "Bob", CreatedAt: when},
	}

	got := LatestCustomerMatch("Bob", records)
	if got == nil || *got != 9 {
		t.Fatalf("want id 9 on CreatedAt tie, got %v", got)
	}
}

func TestLatestCustomerMatch_NoMatch(t *testing.T) {
	records := []CustomerRecord{
		{ID: 1, CustomerName: "Jane Doe", CreatedAt: time.Now()},
	}

	if got := LatestCustomerMatch("First Timer", records); got != nil {
		t.Errorf("want nil for a first-time customer, got %d", *got)
	}
	if got := LatestCustomerMatch("First Timer", nil); got != nil {
		t.Errorf("want nil for empty snapshot, got %d", *got)
	}
}
