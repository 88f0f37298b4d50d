package repositories

import (
	"context"
	"dhl-location-service/internal/domain"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSQLSettingsStoreGetSettings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, value FROM settings").
		WithArgs("api_endpoint", "api_key").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
			AddRow("api_endpoint", "https://api-sandbox.dhl.com").
			AddRow("api_key", "dhl_api"))

	got, err := NewSQLSettingsStore(db).GetSettings(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.Settings{APIEndpoint: "https://api-sandbox.dhl.com", APIKeyID: "dhl_api"}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSettingsStoreDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	got, err := NewSQLSettingsStore(db).GetSettings(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.DefaultAPIEndpoint, got.APIEndpoint)
	require.Empty(t, got.APIKeyID)
}

func TestSQLSettingsStoreQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, value FROM settings").WillReturnError(errors.New("connection reset"))

	_, err = NewSQLSettingsStore(db).GetSettings(context.Background())
	require.ErrorContains(t, err, "connection reset")
}

func TestSQLSettingsStoreSaveSettings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO settings")
	prep.ExpectExec().WithArgs("api_endpoint", "https://api.dhl.com").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs("api_key", "dhl_api").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = NewSQLSettingsStore(db).SaveSettings(context.Background(), domain.Settings{
		APIEndpoint: "https://api.dhl.com/",
		APIKeyID:    "dhl_api",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSettingsStoreSaveRejectsInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewSQLSettingsStore(db).SaveSettings(context.Background(), domain.Settings{APIEndpoint: "not a url", APIKeyID: "k"})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSettingsStoreNilDB(t *testing.T) {
	_, err := NewSQLSettingsStore(nil).GetSettings(context.Background())
	require.Error(t, err)
}
