package policy

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-LessonBooking/internal/calendar"
	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// Policy правила допуска бронирования и отмены
type Policy struct {
	validate           *validator.Validate
	cancellationNotice time.Duration
}

// New создает политику; cancellationNotice <= 0 означает значение по умолчанию (24 часа)
func New(cancellationNotice time.Duration) *Policy {
	if cancellationNotice <= 0 {
		cancellationNotice = domain.DefaultCancellationNotice
	}
	return &Policy{
		validate:           validator.New(),
		cancellationNotice: cancellationNotice,
	}
}

// CancellationNotice минимальный запас времени до начала урока для отмены
func (p *Policy) CancellationNotice() time.Duration {
	return p.cancellationNotice
}

// ValidateBookingRequest проверяет запрос в порядке:
// 1. дата и время указаны и корректны, время на 30-минутной сетке;
// 2. контакт: имя и email с "@";
// 3. тип занятия совпадает ровно с одним типом инструктора;
// 4. дата выбираема по расписанию;
// 5. время входит в слоты дня.
// Дата интерпретируется в часовом поясе now.
func (p *Policy) ValidateBookingRequest(req domain.BookingRequest, instructor *domain.Instructor, now time.Time) (domain.ValidatedRequest, error) {
	// 1. Дата и время
	dateStr := strings.TrimSpace(req.Date)
	timeStr := strings.TrimSpace(req.Time)
	if dateStr == "" {
		return domain.ValidatedRequest{}, newValidationError(KindMissingField, "date", "date is required")
	}
	if timeStr == "" {
		return domain.ValidatedRequest{}, newValidationError(KindMissingField, "time", "time is required")
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, now.Location())
	if err != nil {
		return domain.ValidatedRequest{}, newValidationError(KindInvalidFormat, "date", "expected YYYY-MM-DD, got %q", dateStr)
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return domain.ValidatedRequest{}, newValidationError(KindInvalidFormat, "time", "expected HH:MM, got %q", timeStr)
	}
	if !calendar.IsOnSlotGrid(startTime) {
		return domain.ValidatedRequest{}, newValidationError(KindOffGrid, "time", "time %s is not on the %d-minute grid", startTime, domain.SlotStepMinutes)
	}

	// 2. Контакт
	if verr := p.validateContact(req.Contact); verr != nil {
		return domain.ValidatedRequest{}, verr
	}

	// 3. Тип занятия
	matched := instructor.SessionTypesNamed(req.SessionName)
	switch len(matched) {
	case 0:
		return domain.ValidatedRequest{}, newValidationError(KindUnknownSession, "sessionName", "instructor %s does not offer %q", instructor.ID, req.SessionName)
	case 1:
	default:
		return domain.ValidatedRequest{}, newValidationError(KindAmbiguousSession, "sessionName", "session %q is ambiguous", req.SessionName)
	}

	// 4. Дата по расписанию
	if !calendar.IsDateSelectable(date, instructor.Schedule, now) {
		return domain.ValidatedRequest{}, newValidationError(KindDateNotSelectable, "date", "date %s is not bookable", dateStr)
	}

	// 5. Время в слотах дня
	if !containsSlot(calendar.GenerateDaySlots(date, instructor.Schedule), startTime) {
		return domain.ValidatedRequest{}, newValidationError(KindTimeNotAvailable, "time", "time %s is outside working hours on %s", startTime, dateStr)
	}

	return domain.ValidatedRequest{
		Date:      date,
		StartTime: startTime,
		Session:   matched[0],
	}, nil
}

// CanCancel отмена возможна, только если до начала урока строго больше cancellationNotice
func (p *Policy) CanCancel(b domain.Booking, now time.Time) bool {
	start, err := b.StartsAt()
	if err != nil {
		return false
	}
	return start.Sub(now) > p.cancellationNotice
}

func (p *Policy) validateContact(c domain.Contact) *ValidationError {
	trimmed := domain.Contact{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
		Notes: c.Notes,
	}

	err := p.validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return newValidationError(KindInvalidContact, "contact", "%v", err)
	}

	fe := fieldErrs[0]
	field := "contact." + strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return newValidationError(KindMissingField, field, "%s is required", strings.ToLower(fe.Field()))
	case "contains":
		return newValidationError(KindInvalidContact, field, "email must contain @")
	case "max":
		return newValidationError(KindInvalidContact, field, "%s is longer than %s characters", strings.ToLower(fe.Field()), fe.Param())
	default:
		return newValidationError(KindInvalidContact, field, "failed %s check", fe.Tag())
	}
}

func containsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
