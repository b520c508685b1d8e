package models

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// Request модели

// GetUpcomingBookingsRequest запрос будущих бронирований
type GetUpcomingBookingsRequest struct {
	ContactEmail string `json:"email,omitempty"` // Фильтр по email контакта (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования; имена полей совпадают с сохраняемым форматом
type BookingResponse struct {
	ID              string  `json:"bookingId"`
	Date            string  `json:"date"` // "2025-07-20"
	StartTime       string  `json:"time"` // "10:00"
	InstructorID    string  `json:"proId"`
	VenueID         string  `json:"hotelId"`
	CourseID        string  `json:"courseId"`
	SessionName     string  `json:"sessionName"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`

	CanCancel bool      `json:"canCancel"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b domain.Booking, canCancel bool) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		InstructorID:    b.InstructorID,
		VenueID:         b.VenueID,
		CourseID:        b.CourseID,
		SessionName:     b.SessionName,
		Price:           b.Price,
		DurationMinutes: b.DurationMinutes,
		Name:            b.Contact.Name,
		Email:           b.Contact.Email,
		Phone:           b.Contact.Phone,
		Notes:           b.Contact.Notes,
		CanCancel:       canCancel,
		CreatedAt:       b.CreatedAt,
	}
}
