package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("create_booking: instructor not found")

	// ErrVenueNotFound возвращается, когда отель не найден
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrCourseNotFound возвращается, когда поле не найдено
	ErrCourseNotFound = errors.New("create_booking: course not found")

	// ErrValidation возвращается, когда запрос нарушает правила бронирования
	ErrValidation = errors.New("create_booking: booking request rejected")

	// ErrSlotNotAvailable возвращается, когда слот занят (в том числе параллельным запросом)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPersistence возвращается, когда хранилище не приняло бронирование; леджер не изменён
	ErrPersistence = errors.New("create_booking: failed to persist booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
