package snapshot

import "errors"

var (
	// ErrCorruptSnapshot возвращается, когда сохранённый список бронирований не читается
	ErrCorruptSnapshot = errors.New("snapshot: corrupt booking snapshot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("snapshot: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("snapshot: failed to execute query")

	// ErrEncode возвращается при ошибке сериализации
	ErrEncode = errors.New("snapshot: failed to encode bookings")
)
