package catalog

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("instructor not found")

	// ErrVenueNotFound возвращается, когда отель не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrCourseNotFound возвращается, когда поле не найдено
	ErrCourseNotFound = errors.New("course not found")
)
