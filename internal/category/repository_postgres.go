package category

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listCategoriesQuery = `
		SELECT "categoryId", title, description, "createdAt", "updatedAt"
		FROM category
		ORDER BY "categoryId"
	`
	getCategoryByIDQuery = `
		SELECT "categoryId", title, description, "createdAt", "updatedAt"
		FROM category
		WHERE "categoryId" = $1
	`
	insertCategoryQuery = `
		INSERT INTO category (title, description, "createdAt")
		VALUES ($1, $2, $3)
		RETURNING "categoryId"
	`
	updateCategoryQuery = `
		UPDATE category
		SET title = $1,
			description = $2,
			"updatedAt" = $3
		WHERE "categoryId" = $4
	`
	deleteCategoryQuery = `DELETE FROM category WHERE "categoryId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Category {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return []Category{}
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			continue
		}
		categories = append(categories, category)
	}

	return categories
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	row := r.db.QueryRow(getCategoryByIDQuery, id)
	category, err := scanCategory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}

	return category, nil
}

func (r *PostgresRepository) Create(category Category) (Category, error) {
	var id int
	err := r.db.QueryRow(
		insertCategoryQuery,
		category.Title,
		category.Description,
		category.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Category{}, err
	}

	category.ID = id
	return category, nil
}

func (r *PostgresRepository) Update(id int, update Category) (Category, error) {
	result, err := r.db.Exec(
		updateCategoryQuery,
		update.Title,
		update.Description,
		update.UpdatedAt,
		id,
	)
	if err != nil {
		return Category{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Category{}, err
	}
	if affected == 0 {
		return Category{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteCategoryQuery, id)
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

func scanCategory(scanner rowScanner) (Category, error) {
	category := Category{}
	var createdAt sql.NullString
	var updatedAt sql.NullString

	if err := scanner.Scan(
		&category.ID,
		&category.Title,
		&category.Description,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Category{}, err
	}

	if createdAt.Valid {
		category.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		category.UpdatedAt = updatedAt.String
	}

	return category, nil
}
