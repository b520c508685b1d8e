package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("payload").
		From("booking_snapshots").
		Where(squirrel.Eq{"namespace": "userBookings"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT payload FROM booking_snapshots WHERE namespace = $1", query)
	assert.Equal(t, []interface{}{"userBookings"}, args)
}

func TestInsert_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Insert("booking_snapshots").
		Columns("namespace", "payload").
		Values("ns", []byte("[]")).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO booking_snapshots (namespace,payload) VALUES ($1,$2)", query)
}
