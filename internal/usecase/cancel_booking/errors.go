package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при пустом ID
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrPolicyViolation возвращается, когда до начала занятия осталось меньше срока отмены
	ErrPolicyViolation = errors.New("cancel_booking: cancellation window has passed")

	// ErrPersistence возвращается, когда хранилище не приняло изменение; бронирование осталось
	ErrPersistence = errors.New("cancel_booking: failed to persist cancellation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
