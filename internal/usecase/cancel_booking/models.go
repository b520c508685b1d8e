package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// Request модель запроса на отмену
type Request struct {
	BookingID string
}

// Response отменённое бронирование
type Response struct {
	ID           string
	InstructorID string
	Date         time.Time
	StartTime    types.TimeString
	SessionName  string
	CancelledAt  time.Time
}

func fromDomain(b domain.Booking, cancelledAt time.Time) *Response {
	return &Response{
		ID:           b.ID,
		InstructorID: b.InstructorID,
		Date:         b.Date,
		StartTime:    b.StartTime,
		SessionName:  b.SessionName,
		CancelledAt:  cancelledAt,
	}
}
