package catalog

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// LoadFile читает и валидирует справочник из TOML файла
func LoadFile(path string) (*domain.Catalog, error) {
	var raw fileCatalog
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadCatalog, path, err)
	}
	return build(raw)
}

// Parse читает справочник из TOML строки
func Parse(data string) (*domain.Catalog, error) {
	var raw fileCatalog
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadCatalog, err)
	}
	return build(raw)
}

func build(raw fileCatalog) (*domain.Catalog, error) {
	c := &domain.Catalog{
		Venues:      make([]domain.Venue, 0, len(raw.Venues)),
		Courses:     make([]domain.Course, 0, len(raw.Courses)),
		Instructors: make([]domain.Instructor, 0, len(raw.Instructors)),
	}

	// 1. Отели
	seen := make(map[string]struct{})
	for _, v := range raw.Venues {
		if err := checkID("venue", v.ID, seen); err != nil {
			return nil, err
		}
		c.Venues = append(c.Venues, v.toDomain())
	}

	// 2. Поля
	seen = make(map[string]struct{})
	for _, crs := range raw.Courses {
		if err := checkID("course", crs.ID, seen); err != nil {
			return nil, err
		}
		c.Courses = append(c.Courses, crs.toDomain())
	}

	// 3. Инструкторы
	seen = make(map[string]struct{})
	for _, fi := range raw.Instructors {
		if err := checkID("instructor", fi.ID, seen); err != nil {
			return nil, err
		}
		inst, err := buildInstructor(fi)
		if err != nil {
			return nil, err
		}
		c.Instructors = append(c.Instructors, inst)
	}

	return c, nil
}

func buildInstructor(fi fileInstructor) (domain.Instructor, error) {
	inst := domain.Instructor{
		ID:    fi.ID,
		Name:  fi.Name,
		Title: fi.Title,
		Bio:   fi.Bio,
	}

	for wd, window := range fi.Schedule.byWeekday() {
		if window == nil {
			continue
		}
		if len(window) != 2 {
			return domain.Instructor{}, fmt.Errorf("%w: instructor %s: %s window must be [start, end]",
				ErrInvalidCatalog, fi.ID, time.Weekday(wd))
		}
		start, end := window[0], window[1]
		// start == end допустимо: день без слотов
		if start < 0 || end > domain.HoursPerDay || start > end {
			return domain.Instructor{}, fmt.Errorf("%w: instructor %s: %s window [%d, %d] out of range",
				ErrInvalidCatalog, fi.ID, time.Weekday(wd), start, end)
		}
		inst.Schedule[wd] = &domain.DayWindow{Start: start, End: end}
	}

	if len(fi.SessionTypes) == 0 {
		return domain.Instructor{}, fmt.Errorf("%w: instructor %s has no session types", ErrInvalidCatalog, fi.ID)
	}

	names := make(map[string]struct{}, len(fi.SessionTypes))
	for _, st := range fi.SessionTypes {
		if st.Name == "" {
			return domain.Instructor{}, fmt.Errorf("%w: instructor %s: session type without name", ErrInvalidCatalog, fi.ID)
		}
		if _, dup := names[st.Name]; dup {
			return domain.Instructor{}, fmt.Errorf("%w: instructor %s: duplicate session type %q", ErrInvalidCatalog, fi.ID, st.Name)
		}
		names[st.Name] = struct{}{}

		if st.Price < 0 {
			return domain.Instructor{}, fmt.Errorf("%w: instructor %s: session %q has negative price", ErrInvalidCatalog, fi.ID, st.Name)
		}
		if st.Duration <= 0 {
			return domain.Instructor{}, fmt.Errorf("%w: instructor %s: session %q must have positive duration", ErrInvalidCatalog, fi.ID, st.Name)
		}

		inst.SessionTypes = append(inst.SessionTypes, domain.SessionType{
			Name:            st.Name,
			Price:           st.Price,
			DurationMinutes: st.Duration,
		})
	}

	return inst, nil
}

func checkID(kind, id string, seen map[string]struct{}) error {
	if id == "" {
		return fmt.Errorf("%w: %s without id", ErrInvalidCatalog, kind)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: duplicate %s id %q", ErrInvalidCatalog, kind, id)
	}
	seen[id] = struct{}{}
	return nil
}
