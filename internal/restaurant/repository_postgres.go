package restaurant

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listRestaurantsQuery = `
		SELECT "restaurantId", name, description, array_to_string("amOpeningTime", ';') AS am_text, array_to_string("pmOpeningTime", ';') AS pm_text, "maxGuest", "createdAt", "updatedAt"
		FROM restaurant
		ORDER BY "restaurantId"
	`
	getRestaurantByIDQuery = `
		SELECT "restaurantId", name, description, array_to_string("amOpeningTime", ';') AS am_text, array_to_string("pmOpeningTime", ';') AS pm_text, "maxGuest", "createdAt", "updatedAt"
		FROM restaurant
		WHERE "restaurantId" = $1
	`
	insertRestaurantQuery = `
		INSERT INTO restaurant (name, description, "amOpeningTime", "pmOpeningTime", "maxGuest", "createdAt")
		VALUES ($1, $2, string_to_array($3, ';'), string_to_array($4, ';'), $5, $6)
		RETURNING "restaurantId"
	`
	updateRestaurantQuery = `
		UPDATE restaurant
		SET name = $1,
			description = $2,
			"amOpeningTime" = string_to_array($3, ';'),
			"pmOpeningTime" = string_to_array($4, ';'),
			"maxGuest" = $5,
			"updatedAt" = $6
		WHERE "restaurantId" = $7
	`
	deleteRestaurantQuery = `DELETE FROM restaurant WHERE "restaurantId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Restaurant {
	rows, err := r.db.Query(listRestaurantsQuery)
	if err != nil {
		return []Restaurant{}
	}
	defer rows.Close()

	restaurants := make([]Restaurant, 0)
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants
}

func (r *PostgresRepository) GetByID(id int) (Restaurant, error) {
	row := r.db.QueryRow(getRestaurantByIDQuery, id)
	restaurant, err := scanRestaurant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Restaurant{}, ErrNotFound
		}
		return Restaurant{}, err
	}

	return restaurant, nil
}

func (r *PostgresRepository) Create(restaurant Restaurant) (Restaurant, error) {
	var id int
	err := r.db.QueryRow(
		insertRestaurantQuery,
		restaurant.Name,
		restaurant.Description,
		strings.Join(restaurant.AmOpeningTime, ";"),
		strings.Join(restaurant.PmOpeningTime, ";"),
		restaurant.MaxGuest,
		restaurant.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Restaurant{}, err
	}

	restaurant.ID = id
	return restaurant, nil
}

func (r *PostgresRepository) Update(id int, update Restaurant) (Restaurant, error) {
	result, err := r.db.Exec(
		updateRestaurantQuery,
		update.Name,
		update.Description,
		strings.Join(update.AmOpeningTime, ";"),
		strings.Join(update.PmOpeningTime, ";"),
		update.MaxGuest,
		update.UpdatedAt,
		id,
	)
	if err != nil {
		return Restaurant{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Restaurant{}, err
	}
	if affected == 0 {
		return Restaurant{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteRestaurantQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanRestaurant(scanner rowScanner) (Restaurant, error) {
	restaurant := Restaurant{}
	var amText sql.NullString
	var pmText sql.NullString
	var createdAt sql.NullString
	var updatedAt sql.NullString

	if err := scanner.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Description,
		&amText,
		&pmText,
		&restaurant.MaxGuest,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Restaurant{}, err
	}

	restaurant.AmOpeningTime = splitTimes(amText)
	restaurant.PmOpeningTime = splitTimes(pmText)

	if createdAt.Valid {
		restaurant.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		restaurant.UpdatedAt = updatedAt.String
	}

	return restaurant, nil
}

func splitTimes(text sql.NullString) []string {
	out := make([]string, 0)
	if !text.Valid || text.String == "" {
		return out
	}
	for _, p := range strings.Split(text.String, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
