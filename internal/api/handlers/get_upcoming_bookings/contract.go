package get_upcoming_bookings

import (
	"context"

	"github.com/m04kA/SMC-LessonBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetUpcomingBookings(ctx context.Context, req *models.GetUpcomingBookingsRequest) *models.BookingListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
