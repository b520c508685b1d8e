package domain

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// Contact represents the person a lesson is booked for
type Contact struct {
	Name  string `validate:"required,max=200"`
	Email string `validate:"required,contains=@,max=254"`
	Phone string `validate:"max=50"`
	Notes string `validate:"max=500"`
}

// Booking represents a committed lesson reservation.
// Bookings are immutable once created; cancellation removes them from the ledger.
type Booking struct {
	ID           string
	Date         time.Time // date only, in the service location
	StartTime    types.TimeString
	InstructorID string
	VenueID      string
	CourseID     string

	// Denormalized from the matched session type at creation time
	SessionName     string
	Price           float64
	DurationMinutes int

	Contact   Contact
	CreatedAt time.Time
}

// StartsAt returns the absolute start instant of the lesson
func (b *Booking) StartsAt() (time.Time, error) {
	return b.StartTime.On(b.Date)
}

// OccupiesSlot returns true if the booking holds the given instructor/date/time slot
func (b *Booking) OccupiesSlot(instructorID string, date time.Time, startTime types.TimeString) bool {
	return b.InstructorID == instructorID && SameDate(b.Date, date) && b.StartTime == startTime
}

// BookingRequest is the raw booking intent as submitted by a client
type BookingRequest struct {
	InstructorID string
	VenueID      string
	CourseID     string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
	SessionName  string
	Contact      Contact
}

// ValidatedRequest is a BookingRequest that passed policy checks.
// Price and duration always come from Session, never from the client.
type ValidatedRequest struct {
	Date      time.Time
	StartTime types.TimeString
	Session   SessionType
}

// SameDate compares calendar dates ignoring the time of day
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
