package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LessonBooking/pkg/metrics"
)

const operationName = "cancel"

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	policy       CancellationPolicy
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policy CancellationPolicy,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policy:       policy,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute отменяет бронирование, если до начала занятия больше срока отмены.
// Отменённое бронирование удаляется, слот снова становится свободным.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: id=%s", req.BookingID)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.BookingID) == "" {
		uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	var removed domain.Booking

	// 2. Проверка и удаление в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверяем срок отмены
		if !uc.policy.CanCancel(booking, now) {
			return fmt.Errorf("%w: lesson on %s at %s, cancellation requires %s notice",
				ErrPolicyViolation, booking.Date.Format(domain.DateFormat), booking.StartTime, uc.policy.CancellationNotice())
		}

		// 2.3. Удаляем; при ошибке хранилища бронирование остаётся
		deleted, err := uc.bookingRepo.Delete(txCtx, booking.ID)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrPersistence):
				return fmt.Errorf("%w: %v", ErrPersistence, err)
			default:
				return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
			}
		}

		removed = deleted
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("CancelBooking: booking id=%s not found", req.BookingID)
			uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeNotFound)
			return nil, err
		case errors.Is(err, ErrPolicyViolation):
			uc.logger.Warn("CancelBooking: id=%s rejected: %v", req.BookingID, err)
			uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeRejected)
			return nil, err
		case errors.Is(err, ErrPersistence), errors.Is(err, ErrInternal):
			uc.logger.Error("CancelBooking: id=%s failed: %v", req.BookingID, err)
			uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeError)
			return nil, err
		default:
			uc.logger.Error("CancelBooking: transaction failed: %v", err)
			uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeError)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%s", removed.ID)
	uc.metrics.RecordBookingOperation(operationName, metrics.OutcomeSuccess)
	uc.metrics.SetLiveBookings(uc.bookingRepo.Count())

	// 3. Событие после коммита
	if err := uc.publisher.PublishBookingCancelled(ctx, removed); err != nil {
		uc.logger.Warn("CancelBooking: failed to publish event for booking id=%s: %v", removed.ID, err)
	}

	return fromDomain(removed, now), nil
}
