package domain

import "time"

// Slot grid
const (
	SlotStepMinutes = 30
	HoursPerDay     = 24
)

// DefaultCancellationNotice bookings can be cancelled only while more than this remains before the start
const DefaultCancellationNotice = 24 * time.Hour

// DefaultSnapshotNamespace storage key of the booking list
const DefaultSnapshotNamespace = "userBookings"

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

