package catalog

import "errors"

var (
	// ErrReadCatalog возвращается, когда файл справочника не удалось прочитать или разобрать
	ErrReadCatalog = errors.New("catalog.repository: failed to read catalog")

	// ErrInvalidCatalog возвращается, когда справочник нарушает правила целостности
	ErrInvalidCatalog = errors.New("catalog.repository: invalid catalog")
)
