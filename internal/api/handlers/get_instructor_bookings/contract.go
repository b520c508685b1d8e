package get_instructor_bookings

import (
	"context"

	"github.com/m04kA/SMC-LessonBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetInstructorBookings(ctx context.Context, instructorID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
