package models

import "time"

// CompletionDate returns the date_completed value a record should carry after
// a save with the given status. Moving into Completed stamps the current date
// once; re-saving while Completed keeps the original stamp; any non-Completed
// status clears it, even a manually set value. Evaluated on every save, not
// only on status change, so correcting a status back and forth behaves
// predictably.
func CompletionDate(completed bool, current *time.Time) *time.Time {
	if !completed {
		return nil
	}
	if current != nil {
		return current
	}
	now := time.Now()
	return &now
}
