package services

import (
	"testing"

	"hostel-backend/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealUpdateWritesZeroValues(t *testing.T) {
	db, mock := newMockDB(t)
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	svc := DealService{}

	// deactivation must reach the database even though false is the zero value
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `deals` SET .*`active`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Update(3, map[string]interface{}{"active": false, "title": "Monsoon sale"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealUpdateStripsImmutableColumns(t *testing.T) {
	db, mock := newMockDB(t)
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	svc := DealService{}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `deals`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	fields := map[string]interface{}{
		"id":       99,
		"owner_id": 42,
		"title":    "Monsoon sale",
	}
	err := svc.Update(3, fields)
	require.NoError(t, err)

	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "owner_id")
	assert.NoError(t, mock.ExpectationsWereMet())
}
