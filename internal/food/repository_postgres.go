package food

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listFoodsQuery = `
		SELECT "foodId", uuid, title, description, price, "categoryId", "createdAt", "updatedAt"
		FROM food
		ORDER BY "foodId"
	`
	getFoodByIDQuery = `
		SELECT "foodId", uuid, title, description, price, "categoryId", "createdAt", "updatedAt"
		FROM food
		WHERE "foodId" = $1
	`
	insertFoodQuery = `
		INSERT INTO food (uuid, title, description, price, "categoryId", "createdAt")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "foodId"
	`
	updateFoodQuery = `
		UPDATE food
		SET title = $1,
			description = $2,
			price = $3,
			"categoryId" = $4,
			"updatedAt" = $5
		WHERE "foodId" = $6
	`
	deleteFoodQuery = `DELETE FROM food WHERE "foodId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Food {
	rows, err := r.db.Query(listFoodsQuery)
	if err != nil {
		return []Food{}
	}
	defer rows.Close()

	foods := make([]Food, 0)
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			continue
		}
		foods = append(foods, food)
	}

	return foods
}

func (r *PostgresRepository) GetByID(id int) (Food, error) {
	row := r.db.QueryRow(getFoodByIDQuery, id)
	food, err := scanFood(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Food{}, ErrNotFound
		}
		return Food{}, err
	}

	return food, nil
}

func (r *PostgresRepository) Create(food Food) (Food, error) {
	var categoryArg interface{}
	if food.CategoryID != nil {
		categoryArg = *food.CategoryID
	}

	var id int
	err := r.db.QueryRow(
		insertFoodQuery,
		food.UUID,
		food.Title,
		food.Description,
		food.Price,
		categoryArg,
		food.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Food{}, err
	}

	food.ID = id
	return food, nil
}

func (r *PostgresRepository) Update(id int, update Food) (Food, error) {
	var categoryArg interface{}
	if update.CategoryID != nil {
		categoryArg = *update.CategoryID
	}

	result, err := r.db.Exec(
		updateFoodQuery,
		update.Title,
		update.Description,
		update.Price,
		categoryArg,
		update.UpdatedAt,
		id,
	)
	if err != nil {
		return Food{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Food{}, err
	}
	if affected == 0 {
		return Food{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteFoodQuery, id)
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

func scanFood(scanner rowScanner) (Food, error) {
	food := Food{}
	var categoryID sql.NullInt64
	var createdAt sql.NullString
	var updatedAt sql.NullString

	if err := scanner.Scan(
		&food.ID,
		&food.UUID,
		&food.Title,
		&food.Description,
		&food.Price,
		&categoryID,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Food{}, err
	}

	if categoryID.Valid {
		v := int(categoryID.Int64)
		food.CategoryID = &v
	}
	if createdAt.Valid {
		food.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		food.UpdatedAt = updatedAt.String
	}

	return food, nil
}
