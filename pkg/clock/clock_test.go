package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReal_UsesLocation(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	now := Real{Location: loc}.Now()
	assert.Equal(t, loc, now.Location())
}

func TestFixed(t *testing.T) {
	at := time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)
	c := &Fixed{At: at}
	assert.Equal(t, at, c.Now())

	c.Set(at.Add(time.Hour))
	assert.Equal(t, at.Add(time.Hour), c.Now())
}
