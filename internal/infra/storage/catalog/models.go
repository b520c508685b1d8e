package catalog

import "github.com/m04kA/SMC-LessonBooking/internal/domain"

// fileCatalog структура TOML файла справочника
type fileCatalog struct {
	Venues      []fileVenue      `toml:"venues"`
	Courses     []fileCourse     `toml:"courses"`
	Instructors []fileInstructor `toml:"instructors"`
}

type fileVenue struct {
	ID        string  `toml:"id"`
	Name      string  `toml:"name"`
	Address   string  `toml:"address"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

type fileCourse struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Address string `toml:"address"`
}

type fileInstructor struct {
	ID           string            `toml:"id"`
	Name         string            `toml:"name"`
	Title        string            `toml:"title"`
	Bio          string            `toml:"bio"`
	Schedule     fileSchedule      `toml:"schedule"`
	SessionTypes []fileSessionType `toml:"session_types"`
}

// fileSchedule окно дня задаётся парой [start, end] в часах; отсутствующий день - выходной
type fileSchedule struct {
	Sunday    []int `toml:"sunday"`
	Monday    []int `toml:"monday"`
	Tuesday   []int `toml:"tuesday"`
	Wednesday []int `toml:"wednesday"`
	Thursday  []int `toml:"thursday"`
	Friday    []int `toml:"friday"`
	Saturday  []int `toml:"saturday"`
}

// byWeekday в порядке time.Weekday
func (s fileSchedule) byWeekday() [7][]int {
	return [7][]int{s.Sunday, s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday, s.Saturday}
}

type fileSessionType struct {
	Name     string  `toml:"name"`
	Price    float64 `toml:"price"`
	Duration int     `toml:"duration"`
}

func (v fileVenue) toDomain() domain.Venue {
	return domain.Venue{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
	}
}

func (c fileCourse) toDomain() domain.Course {
	return domain.Course{ID: c.ID, Name: c.Name, Address: c.Address}
}
