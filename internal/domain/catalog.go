package domain

// Catalog is the immutable reference data loaded at startup
type Catalog struct {
	Venues      []Venue
	Courses     []Course
	Instructors []Instructor
}
