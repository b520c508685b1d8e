package domain

import "time"

// DayWindow is an instructor's working window for one weekday, in whole hours.
// Slots are generated on [Start, End); Start == End means no slots that day.
type DayWindow struct {
	Start int
	End   int
}

// WeeklySchedule maps time.Weekday (0 = Sunday) to an optional working window
type WeeklySchedule [7]*DayWindow

// ForWeekday returns the window for the weekday or nil if the instructor does not work that day
func (s WeeklySchedule) ForWeekday(wd time.Weekday) *DayWindow {
	if wd < time.Sunday || wd > time.Saturday {
		return nil
	}
	return s[wd]
}

// SessionType is a bookable lesson format offered by an instructor
type SessionType struct {
	Name            string
	Price           float64
	DurationMinutes int
}

// Instructor is a golf professional accepting lesson bookings
type Instructor struct {
	ID           string
	Name         string
	Title        string
	Bio          string
	Schedule     WeeklySchedule
	SessionTypes []SessionType
}

// SessionTypesNamed returns every session type whose name matches exactly
func (i *Instructor) SessionTypesNamed(name string) []SessionType {
	var matched []SessionType
	for _, st := range i.SessionTypes {
		if st.Name == name {
			matched = append(matched, st)
		}
	}
	return matched
}
