package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LessonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-LessonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-LessonBooking/internal/policy"
	createBooking "github.com/m04kA/SMC-LessonBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не указан инструктор, отель или поле"
	msgInvalidBooking     = "запрос на бронирование не прошёл проверку"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
	msgInstructorNotFound = "инструктор не найден"
	msgVenueNotFound      = "отель не найден"
	msgCourseNotFound     = "поле не найдено"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case
	useCaseReq := req.ToUseCaseRequest(middleware.GetIdentity(r.Context()))

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verr *policy.ValidationError

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /bookings - Validation failed: instructor_id=%s, field=%s, kind=%s",
				req.InstructorID, verr.Field, verr.Kind)
			handlers.RespondValidationError(w, verr.Message, verr.Field, string(verr.Kind))

		case errors.Is(err, createBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: instructor_id=%s, error=%v", req.InstructorID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: instructor_id=%s, date=%s, time=%s",
				req.InstructorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInstructorNotFound):
			h.logger.Warn("POST /bookings - Instructor not found: instructor_id=%s", req.InstructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrCourseNotFound):
			h.logger.Warn("POST /bookings - Course not found: course_id=%s", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: instructor_id=%s, error=%v", req.InstructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, instructor_id=%s",
		result.ID, result.InstructorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
