package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
)

// Точное совпадение координат
func TestCitiesRepository_FindByCoordinates_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCitiesRepository(db)

	id := uuid.New()

	mock.ExpectQuery(`SELECT id, name, country, latitude, longitude\s+FROM cities`).
		WithArgs(30.0444, 31.2357, "Egypt").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "country", "latitude", "longitude"}).
				AddRow(id, "Cairo", "Egypt", 30.0444, 31.2357),
		)

	got, err := repo.FindByCoordinates(context.Background(), 30.0444, 31.2357, "Egypt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Cairo" || got.Country != "Egypt" {
		t.Fatalf("unexpected city: %+v", got)
	}
}

// Нет города с такими координатами — штатный исход
func TestCitiesRepository_FindByCoordinates_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCitiesRepository(db)

	mock.ExpectQuery(`SELECT id, name, country, latitude, longitude\s+FROM cities`).
		WithArgs(40.7128, -74.006, "Egypt").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByCoordinates(context.Background(), 40.7128, -74.006, "Egypt")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Ошибка сервера
func TestCitiesRepository_FindByCoordinates_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCitiesRepository(db)

	mock.ExpectQuery(`SELECT id, name, country, latitude, longitude\s+FROM cities`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindByCoordinates(context.Background(), 30.0444, 31.2357, "Egypt")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Запрос детерминирован: сортировка по id, одна строка
func TestCitiesRepository_FindByCoordinates_OrdersByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewCitiesRepository(db)

	id := uuid.New()

	// при дублях координат выигрывает строка с наименьшим id
	mock.ExpectQuery(`ORDER BY id\s+LIMIT 1`).
		WithArgs(30.0444, 31.2357, "Egypt").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "country", "latitude", "longitude"}).
				AddRow(id, "Cairo", "Egypt", 30.0444, 31.2357),
		)

	got, err := repo.FindByCoordinates(context.Background(), 30.0444, 31.2357, "Egypt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id {
		t.Fatalf("unexpected id: %v", got.ID)
	}
}
