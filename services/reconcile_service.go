// services/reconcile_service.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartReconcileScheduler runs the unlinked-booking sweep nightly so a crash
// between the booking write and the derived-record write heals without
// operator action. The sweep is also reachable on demand via the API.
func StartReconcileScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	svc := NewBookingService(db)

	// Run daily at 2:30 AM
	c.AddFunc("30 2 * * *", func() {
		report, err := svc.ReconcileUnlinked()
		if err != nil {
			log.Printf("Reconcile sweep failed: %v", err)
			return
		}
		if report.Repaired > 0 || len(report.Failed) > 0 {
			log.Printf("Reconcile sweep: repaired %d, failed %d", report.Repaired, len(report.Failed))
		}
	})

	c.Start()
	log.Println("Reconcile scheduler started")
	return c
}
