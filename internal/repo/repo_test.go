package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresQuoteRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewPostgresQuoteDB(db)
}

func TestCreateUser(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("operator", "op@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := repo.CreateUser(context.Background(), "operator", "op@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBylogin_NoRows(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, password FROM users`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	id, hash, err := repo.GetBylogin(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, "", hash)
}

func TestSaveQuote(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	ref := uuid.NewString()
	q := Quote{
		Reference: ref,
		Title:     "Server room",
		Room:      json.RawMessage(`{"length_m":10}`),
		Sizing:    json.RawMessage(`{"agent_weight_kg":188.25}`),
		Costing:   json.RawMessage(`{"total_usd":19000.5}`),
	}

	mock.ExpectQuery(`INSERT INTO quotes`).
		WithArgs(7, ref, "Server room", []byte(q.Room), []byte(q.Sizing), []byte(q.Costing)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	id, err := repo.SaveQuote(context.Background(), 7, q)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuote(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	ref := uuid.NewString()
	created := time.Now()
	rows := sqlmock.NewRows([]string{"id", "reference", "title", "room", "sizing", "costing", "created_at"}).
		AddRow(3, ref, "Server room", []byte(`{"length_m":10}`), []byte(`{}`), []byte(`{}`), created)

	mock.ExpectQuery(`SELECT id, reference, title`).
		WithArgs(3, 7).
		WillReturnRows(rows)

	q, err := repo.GetQuote(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, q.ID)
	assert.Equal(t, ref, q.Reference)
	assert.JSONEq(t, `{"length_m":10}`, string(q.Room))
	assert.Equal(t, created, q.CreatedAt)
}

func TestGetQuote_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, reference, title`).
		WithArgs(99, 7).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetQuote(context.Background(), 7, 99)
	assert.Equal(t, ErrNotFound, err)
}

func TestListQuotes(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "reference", "title", "created_at"}).
		AddRow(2, uuid.NewString(), "Archive room", now).
		AddRow(1, uuid.NewString(), "Server room", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, reference, title, created_at`).
		WithArgs(7).
		WillReturnRows(rows)

	list, err := repo.ListQuotes(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Archive room", list[0].Title)
}
