package create_booking

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-LessonBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	InstructorID string `json:"proId"`
	VenueID      string `json:"hotelId"`
	CourseID     string `json:"courseId"`
	Date         string `json:"date"` // "2025-07-20"
	Time         string `json:"time"` // "10:00"
	SessionName  string `json:"sessionName"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"bookingId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"time"`
	InstructorID    string  `json:"proId"`
	VenueID         string  `json:"hotelId"`
	CourseID        string  `json:"courseId"`
	SessionName     string  `json:"sessionName"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустые имя и email подставляются из заголовков пользователя.
func (r *CreateBookingRequest) ToUseCaseRequest(id middleware.Identity) *createBooking.Request {
	contact := domain.Contact{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Notes: r.Notes,
	}
	if contact.Name == "" {
		contact.Name = id.Name
	}
	if contact.Email == "" {
		contact.Email = id.Email
	}

	return &createBooking.Request{
		InstructorID: r.InstructorID,
		VenueID:      r.VenueID,
		CourseID:     r.CourseID,
		Date:         r.Date,
		Time:         r.Time,
		SessionName:  r.SessionName,
		Contact:      contact,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		InstructorID:    resp.InstructorID,
		VenueID:         resp.VenueID,
		CourseID:        resp.CourseID,
		SessionName:     resp.SessionName,
		Price:           resp.Price,
		DurationMinutes: resp.DurationMinutes,
		Name:            resp.Contact.Name,
		Email:           resp.Contact.Email,
		Phone:           resp.Contact.Phone,
		Notes:           resp.Contact.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
