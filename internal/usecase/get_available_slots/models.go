package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	InstructorID string // ID инструктора
	Date         string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со списком слотов дня
type Response struct {
	Date         time.Time // Дата, на которую запрашивались слоты
	InstructorID string
	Selectable   bool   // Дата не в прошлом и у инструктора есть рабочее окно
	Slots        []Slot // Слоты по расписанию, занятые помечены Available=false
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Шаг сетки
	Available       bool
}
