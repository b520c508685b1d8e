package create_booking

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	InstructorID string // ID инструктора
	VenueID      string // ID отеля
	CourseID     string // ID поля
	Date         string // Дата в формате YYYY-MM-DD
	Time         string // Время начала в формате HH:MM
	SessionName  string // Название типа занятия
	Contact      domain.Contact
}

func (r *Request) toDomain() domain.BookingRequest {
	return domain.BookingRequest{
		InstructorID: r.InstructorID,
		VenueID:      r.VenueID,
		CourseID:     r.CourseID,
		Date:         r.Date,
		Time:         r.Time,
		SessionName:  r.SessionName,
		Contact:      r.Contact,
	}
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	InstructorID    string
	VenueID         string
	CourseID        string
	Date            time.Time
	StartTime       types.TimeString
	SessionName     string
	Price           float64 // Цена из типа занятия, не из запроса
	DurationMinutes int
	Contact         domain.Contact
	CreatedAt       time.Time
}

func fromDomain(b domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		InstructorID:    b.InstructorID,
		VenueID:         b.VenueID,
		CourseID:        b.CourseID,
		Date:            b.Date,
		StartTime:       b.StartTime,
		SessionName:     b.SessionName,
		Price:           b.Price,
		DurationMinutes: b.DurationMinutes,
		Contact:         b.Contact,
		CreatedAt:       b.CreatedAt,
	}
}
