package get_month_calendar

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("get_month_calendar: instructor not found")

	// ErrInvalidMonth возвращается, когда месяц не в формате YYYY-MM
	ErrInvalidMonth = errors.New("get_month_calendar: invalid month")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_month_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_month_calendar: internal error")
)
