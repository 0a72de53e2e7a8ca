package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jejutrip/pkg/utils"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var placeColumns = []string{
	"id", "created_at", "updated_at", "deleted_at",
	"external_id", "name", "category", "address", "tags", "description",
	"opening_hours", "phone", "price_info", "thumbnail_url",
	"latitude", "longitude", "sort_order",
}

func TestPlaceRepository_LoadPlaces(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepository(db)

	id := uuid.New()
	rows := sqlmock.NewRows(placeColumns).
		AddRow(uuid.New().String(), 1, 1, nil, "p-1", "협재해변", "관광지", "제주시 한림읍",
			"{바다,해변}", "에메랄드빛 바다", "", "", "", "", 33.39, 126.24, 0).
		AddRow(id.String(), 1, 1, nil, "", "애월국수", "restaurant", "제주시 애월읍",
			"{고기국수}", "", "", "", "", "", nil, nil, 1)
	mock.ExpectQuery(`SELECT \* FROM "places" WHERE "places"."deleted_at" IS NULL ORDER BY sort_order ASC`).
		WillReturnRows(rows)

	got, err := repo.LoadPlaces(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "p-1", got[0].ExternalID)
	assert.Equal(t, "바다 해변", got[0].Tags)
	require.NotNil(t, got[0].Longitude)
	assert.InDelta(t, 126.24, *got[0].Longitude, 1e-9)

	assert.Equal(t, id.String(), got[1].ExternalID, "row id stands in for a missing external id")
	assert.Nil(t, got[1].Longitude)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_ListAllError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "places"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.LoadPlaces(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list places")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 42, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_ReplaceAllRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "places"`).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear places")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_ReplaceAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "places"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
