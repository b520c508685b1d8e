package policy

import (
	"errors"
	"fmt"
)

// ErrValidation общий признак ошибки валидации запроса на бронирование
var ErrValidation = errors.New("policy: booking request is invalid")

// Kind тип нарушения; проверки выполняются в фиксированном порядке, возвращается первое нарушение
type Kind string

const (
	KindMissingField      Kind = "missing_field"
	KindInvalidFormat     Kind = "invalid_format"
	KindOffGrid           Kind = "off_grid"
	KindInvalidContact    Kind = "invalid_contact"
	KindUnknownSession    Kind = "unknown_session"
	KindAmbiguousSession  Kind = "ambiguous_session"
	KindDateNotSelectable Kind = "date_not_selectable"
	KindTimeNotAvailable  Kind = "time_not_available"
)

// ValidationError нарушение правил бронирования с указанием поля
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

// Is позволяет errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(kind Kind, field, format string, v ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: fmt.Sprintf(format, v...)}
}
