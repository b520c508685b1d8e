package models

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// CatalogResponse справочник целиком
type CatalogResponse struct {
	Venues      []VenueResponse      `json:"hotels"`
	Courses     []CourseResponse     `json:"courses"`
	Instructors []InstructorResponse `json:"professionals"`
}

type VenueResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CourseResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// InstructorResponse Schedule индексируется днём недели: "0" - воскресенье
type InstructorResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Title        string                `json:"title"`
	Bio          string                `json:"bio,omitempty"`
	Schedule     map[string]DayWindow  `json:"schedule"`
	SessionTypes []SessionTypeResponse `json:"sessionTypes"`
}

type DayWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type SessionTypeResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// FromDomainCatalog конвертирует справочник в response
func FromDomainCatalog(c *domain.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Venues:      make([]VenueResponse, 0, len(c.Venues)),
		Courses:     make([]CourseResponse, 0, len(c.Courses)),
		Instructors: make([]InstructorResponse, 0, len(c.Instructors)),
	}
	for _, v := range c.Venues {
		resp.Venues = append(resp.Venues, VenueResponse{
			ID:        v.ID,
			Name:      v.Name,
			Address:   v.Address,
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
		})
	}
	for _, crs := range c.Courses {
		resp.Courses = append(resp.Courses, CourseResponse{ID: crs.ID, Name: crs.Name, Address: crs.Address})
	}
	for i := range c.Instructors {
		resp.Instructors = append(resp.Instructors, *FromDomainInstructor(&c.Instructors[i]))
	}
	return resp
}

// FromDomainInstructor конвертирует инструктора в response
func FromDomainInstructor(inst *domain.Instructor) *InstructorResponse {
	resp := &InstructorResponse{
		ID:           inst.ID,
		Name:         inst.Name,
		Title:        inst.Title,
		Bio:          inst.Bio,
		Schedule:     make(map[string]DayWindow),
		SessionTypes: make([]SessionTypeResponse, 0, len(inst.SessionTypes)),
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if w := inst.Schedule.ForWeekday(wd); w != nil {
			resp.Schedule[strconv.Itoa(int(wd))] = DayWindow{Start: w.Start, End: w.End}
		}
	}
	for _, st := range inst.SessionTypes {
		resp.SessionTypes = append(resp.SessionTypes, SessionTypeResponse{
			Name:     st.Name,
			Price:    st.Price,
			Duration: st.DurationMinutes,
		})
	}
	return resp
}

