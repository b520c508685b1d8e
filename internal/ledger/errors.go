package ledger

import "errors"

var (
	// ErrConflict возвращается, когда слот инструктора на эту дату и время уже занят
	ErrConflict = errors.New("ledger: slot already booked")

	// ErrDuplicateID возвращается, когда бронирование с таким ID уже существует
	ErrDuplicateID = errors.New("ledger: duplicate booking id")

	// ErrNotFound возвращается, когда бронирование не найдено
	ErrNotFound = errors.New("ledger: booking not found")
)
