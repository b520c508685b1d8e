package clock

import "time"

// Real текущее время в часовом поясе сервиса
type Real struct {
	Location *time.Location
}

// Now возвращает текущее время; без Location - в локальном поясе
func (c Real) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Fixed всегда возвращает одно и то же время, для тестов
type Fixed struct {
	At time.Time
}

func (c *Fixed) Now() time.Time {
	return c.At
}

// Set переставляет часы
func (c *Fixed) Set(t time.Time) {
	c.At = t
}
