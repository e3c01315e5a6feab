// internal/model/status.go
package model

import "time"

const (
    StatusPending   = "pending"
    StatusActive    = "active"
    StatusCompleted = "completed"
)

const dateLayout = "2006-01-02"

// DeriveStatus maps a campaign's date range to a lifecycle status relative
// to now: before the start date it is pending, between start and end
// inclusive it is active, after the end date it is completed.
//
// A date that fails to parse is treated as the zero time (the earliest
// representable instant), so a campaign with malformed dates derives as
// completed rather than erroring.
func DeriveStatus(startDate, endDate string, now time.Time) string {
    start := parseDate(startDate)
    end := parseDate(endDate)

    switch {
    case now.Before(start):
        return StatusPending
    case !now.After(end):
        return StatusActive
    default:
        return StatusCompleted
    }
}

func parseDate(s string) time.Time {
    t, err := time.Parse(dateLayout, s)
    if err != nil {
        return time.Time{}
    }
    return t
}
