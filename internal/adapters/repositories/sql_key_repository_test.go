package repositories

import (
	"context"
	"dhl-location-service/internal/domain"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSQLKeyRepositoryGetKeyValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT key_value FROM keys").
		WithArgs("dhl_api").
		WillReturnRows(sqlmock.NewRows([]string{"key_value"}).AddRow("secret"))

	got, err := NewSQLKeyRepository(db).GetKeyValue(context.Background(), " dhl_api ")
	require.NoError(t, err)
	require.Equal(t, "secret", got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKeyRepositoryDistinguishesFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLKeyRepository(db)

	_, err = repo.GetKeyValue(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrKeyIDUnset)

	mock.ExpectQuery("SELECT key_value FROM keys").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"key_value"}))

	_, err = repo.GetKeyValue(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
	require.ErrorContains(t, err, "missing")

	mock.ExpectQuery("SELECT key_value FROM keys").
		WithArgs("dhl_api").
		WillReturnError(errors.New("too many connections"))

	_, err = repo.GetKeyValue(context.Background(), "dhl_api")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrKeyNotFound)
	require.NotErrorIs(t, err, domain.ErrKeyIDUnset)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKeyRepositoryPutKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO keys").
		WithArgs("dhl_api", "DHL API", "secret").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewSQLKeyRepository(db).PutKey(context.Background(), "dhl_api", "DHL API", "secret"))
	require.NoError(t, mock.ExpectationsWereMet())
}
