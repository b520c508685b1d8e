package domain

import "github.com/m04kA/SMC-LessonBooking/pkg/types"

// Slot is one 30-minute start position of an instructor's working day
type Slot struct {
	StartTime types.TimeString
	Available bool
}
