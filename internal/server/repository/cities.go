package repository

import (
	"context"
	"database/sql"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
)

type CitiesRepository struct {
	db *sql.DB
}

func NewCitiesRepository(db *sql.DB) *CitiesRepository {
	return &CitiesRepository{db: db}
}

// FindByCoordinates ищет город по точному совпадению координат
// в пределах одной страны.
//
// Никакого радиуса допуска нет — сравнение строгое, как посеяли.
// Если несколько городов посеяны с одинаковыми координатами,
// выигрывает строка с наименьшим id (ORDER BY id LIMIT 1).
// ErrNotFound — нормальный исход, а не сбой.
func (r *CitiesRepository) FindByCoordinates(ctx context.Context, latitude, longitude float64, country string) (models.City, error) {
	var c models.City

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, country, latitude, longitude
		 FROM cities
		 WHERE latitude=$1 AND longitude=$2 AND country=$3
		 ORDER BY id
		 LIMIT 1`,
		latitude, longitude, country,
	).Scan(&c.ID, &c.Name, &c.Country, &c.Latitude, &c.Longitude)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.City{}, serr.ErrNotFound
		}
		return models.City{}, serr.ErrInternal
	}

	return c, nil
}
