package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другим бронированием
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrDuplicateID возвращается, когда ID бронирования уже используется
	ErrDuplicateID = errors.New("booking.repository: duplicate booking id")

	// ErrPersistence возвращается, когда хранилище не приняло изменения; состояние в памяти не меняется
	ErrPersistence = errors.New("booking.repository: failed to persist bookings")

	// ErrLoad возвращается, когда сохранённые бронирования не удалось прочитать при старте
	ErrLoad = errors.New("booking.repository: failed to load bookings")
)
