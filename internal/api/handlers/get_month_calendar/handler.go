package get_month_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LessonBooking/internal/api/handlers"
	getMonthCalendar "github.com/m04kA/SMC-LessonBooking/internal/usecase/get_month_calendar"
)

const (
	msgInvalidMonth       = "некорректный формат месяца, ожидается YYYY-MM"
	msgInvalidInstructor  = "некорректный ID инструктора"
	msgInstructorNotFound = "инструктор не найден"
)

type Handler struct {
	useCase GetMonthCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}/calendar
// Query params: month (optional, YYYY-MM; по умолчанию текущий)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID := mux.Vars(r)["instructorId"]
	month := r.URL.Query().Get("month")

	result, err := h.useCase.Execute(r.Context(), &getMonthCalendar.Request{
		InstructorID: instructorID,
		Month:        month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /instructors/{id}/calendar - Invalid month: %q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getMonthCalendar.ErrInvalidInput):
			h.logger.Warn("GET /instructors/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInstructor)

		case errors.Is(err, getMonthCalendar.ErrInstructorNotFound):
			h.logger.Warn("GET /instructors/{id}/calendar - Instructor not found: instructor_id=%s", instructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		default:
			h.logger.Error("GET /instructors/{id}/calendar - Failed to build calendar: instructor_id=%s, error=%v",
				instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instructors/{id}/calendar - Calendar built: instructor_id=%s, month=%s",
		instructorID, result.Month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
