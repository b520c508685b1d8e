package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonBooking/internal/infra/storage/booking"
	catalogService "github.com/m04kA/SMC-LessonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-LessonBooking/pkg/metrics"
)

const (
	operationName = "create"

	// maxIDAttempts сколько раз генерировать ID при совпадении с существующим
	maxIDAttempts = 5
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	catalog         CatalogService
	policy          BookingPolicy
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	newID           func() string
	processingDelay time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogService,
	policy BookingPolicy,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	processingDelay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		catalog:         catalog,
		policy:          policy,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		timeProvider:    timeProvider,
		newID:           uuid.NewString,
		processingDelay: processingDelay,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Повторная проверка слота и запись выполняются в одной сериализованной транзакции,
// поэтому из двух параллельных запросов на один слот успешен ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: instructor=%s, venue=%s, course=%s, date=%s, time=%s, session=%q",
		req.InstructorID, req.VenueID, req.CourseID, req.Date, req.Time, req.SessionName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeRejected)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем инструктора, отель и поле
	instructor, err := uc.catalog.GetInstructor(ctx, req.InstructorID)
	if err != nil {
		return nil, uc.lookupFailed("instructor", req.InstructorID, err, catalogService.ErrInstructorNotFound, ErrInstructorNotFound)
	}
	if _, err := uc.catalog.GetVenue(ctx, req.VenueID); err != nil {
		return nil, uc.lookupFailed("venue", req.VenueID, err, catalogService.ErrVenueNotFound, ErrVenueNotFound)
	}
	if _, err := uc.catalog.GetCourse(ctx, req.CourseID); err != nil {
		return nil, uc.lookupFailed("course", req.CourseID, err, catalogService.ErrCourseNotFound, ErrCourseNotFound)
	}

	// 4. Проверяем правила бронирования
	validated, err := uc.policy.ValidateBookingRequest(req.toDomain(), instructor, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: request rejected: %v", err)
		uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	// 5. Имитация обработки платежа; слот может быть занят за это время, поэтому проверка повторяется в транзакции
	if err := uc.wait(ctx); err != nil {
		uc.logger.Warn("CreateBooking: cancelled while processing: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var result domain.Booking

	// 6. Проверка слота и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Слот мог занять параллельный запрос
		if uc.bookingRepo.IsSlotTaken(txCtx, instructor.ID, validated.Date, validated.StartTime) {
			uc.logger.Warn("CreateBooking: slot instructor=%s date=%s time=%s already taken",
				instructor.ID, validated.Date.Format(domain.DateFormat), validated.StartTime)
			return ErrSlotNotAvailable
		}

		// 6.2. Генерируем уникальный ID
		id, err := uc.generateID(txCtx)
		if err != nil {
			return err
		}

		// 6.3. Цена и длительность берутся из типа занятия
		booking := domain.Booking{
			ID:              id,
			Date:            validated.Date,
			StartTime:       validated.StartTime,
			InstructorID:    instructor.ID,
			VenueID:         req.VenueID,
			CourseID:        req.CourseID,
			SessionName:     validated.Session.Name,
			Price:           validated.Session.Price,
			DurationMinutes: validated.Session.DurationMinutes,
			Contact:         trimContact(req.Contact),
			CreatedAt:       uc.timeProvider.Now(),
		}

		// 6.4. Сохраняем; при ошибке хранилища леджер не меняется
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrPersistence):
				uc.logger.Error("CreateBooking: failed to persist booking id=%s: %v", id, err)
				return fmt.Errorf("%w: %v", ErrPersistence, err)
			default:
				uc.logger.Error("CreateBooking: failed to create booking id=%s: %v", id, err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeConflict)
			return nil, err
		case errors.Is(err, ErrPersistence), errors.Is(err, ErrInternal):
			uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeError)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeError)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeSuccess)
	uc.metrics.SetLiveBookings(uc.bookingRepo.Count())

	// 7. Событие публикуется после коммита; ошибка брокера не отменяет бронирование
	if err := uc.publisher.PublishBookingCreated(ctx, result); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", result.ID, err)
	}

	return fromDomain(result), nil
}

func (uc *UseCase) lookupFailed(kind, id string, err, notFound, mapped error) error {
	if errors.Is(err, notFound) {
		uc.logger.Warn("CreateBooking: %s id=%s not found", kind, id)
		uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeNotFound)
		return mapped
	}
	uc.logger.Error("CreateBooking: failed to get %s id=%s: %v", kind, id, err)
	uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeError)
	return fmt.Errorf("%w: failed to get %s: %v", ErrInternal, kind, err)
}

func (uc *UseCase) generateID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := uc.newID()
		if _, err := uc.bookingRepo.GetByID(ctx, id); errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return id, nil
		}
		uc.logger.Warn("CreateBooking: generated id=%s already exists, retrying", id)
	}
	return "", fmt.Errorf("%w: could not generate unique booking id", ErrInternal)
}

func (uc *UseCase) wait(ctx context.Context) error {
	if uc.processingDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(uc.processingDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// validateRequest проверяет наличие идентификаторов; остальные правила - в политике
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.InstructorID) == "" {
		return fmt.Errorf("%w: instructorId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CourseID) == "" {
		return fmt.Errorf("%w: courseId is required", ErrInvalidInput)
	}
	return nil
}

func trimContact(c domain.Contact) domain.Contact {
	return domain.Contact{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
		Notes: strings.TrimSpace(c.Notes),
	}
}
