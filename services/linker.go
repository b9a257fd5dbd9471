package services

import (
	"strings"
	"time"
)

// CustomerRecord is the snapshot row the linker decides over: any record with
// an identifier, a customer name and a creation time.
type CustomerRecord struct {
	ID           uint
	CustomerName string
	CreatedAt    time.Time
}

// LatestCustomerMatch picks the record to link a new booking to: the most
// recently created record whose customer name matches case-insensitively.
// Ties on creation time go to the highest ID so the result is deterministic.
// No match returns nil; that is the common first-time-customer case, not an
// error.
func LatestCustomerMatch(name string, records []CustomerRecord) *uint {
	var best *CustomerRecord
	for i := range records {
		r := &records[i]
		if !strings.EqualFold(r.CustomerName, name) {
			continue
		}
		if best == nil ||
			r.CreatedAt.After(best.CreatedAt) ||
			(r.CreatedAt.Equal(best.CreatedAt) && r.ID > best.ID) {
			best = r
		}
	}
	if best == nil {
		return nil
	}
	id := best.ID
	return &id
}
