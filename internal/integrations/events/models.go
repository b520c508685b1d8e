package events

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// Ключи маршрутизации событий
const (
	RoutingKeyBookingCreated   = "booking.created"
	RoutingKeyBookingCancelled = "booking.cancelled"
)

// BookingEvent тело события жизненного цикла бронирования
type BookingEvent struct {
	Event        string    `json:"event"`
	BookingID    string    `json:"bookingId"`
	InstructorID string    `json:"proId"`
	VenueID      string    `json:"hotelId"`
	CourseID     string    `json:"courseId"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	SessionName  string    `json:"sessionName"`
	Price        float64   `json:"price"`
	ContactEmail string    `json:"email"`
	OccurredAt   time.Time `json:"occurredAt"`
}

func newBookingEvent(event string, b domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Event:        event,
		BookingID:    b.ID,
		InstructorID: b.InstructorID,
		VenueID:      b.VenueID,
		CourseID:     b.CourseID,
		Date:         b.Date.Format(domain.DateFormat),
		Time:         b.StartTime.String(),
		SessionName:  b.SessionName,
		Price:        b.Price,
		ContactEmail: b.Contact.Email,
		OccurredAt:   at,
	}
}
