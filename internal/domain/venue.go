package domain

// Venue is a hotel where lessons can be arranged
type Venue struct {
	ID        string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// Course is a golf course where lessons take place
type Course struct {
	ID      string
	Name    string
	Address string
}
