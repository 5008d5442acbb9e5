package booking

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listBookingsByUserQuery = `
		SELECT "bookingId", "userId", "restaurantId", guests, date, status, "createdAt", "updatedAt"
		FROM booking
		WHERE "userId" = $1
		ORDER BY "bookingId"
	`
	getBookingByIDQuery = `
		SELECT "bookingId", "userId", "restaurantId", guests, date, status, "createdAt", "updatedAt"
		FROM booking
		WHERE "bookingId" = $1
	`
	insertBookingQuery = `
		INSERT INTO booking ("userId", "restaurantId", guests, date, status, "createdAt")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "bookingId"
	`
	updateBookingQuery = `
		UPDATE booking
		SET guests = $1,
			date = $2,
			status = $3,
			"updatedAt" = $4
		WHERE "bookingId" = $5
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) []Booking {
	rows, err := r.db.Query(listBookingsByUserQuery, userID)
	if err != nil {
		return []Booking{}
	}
	defer rows.Close()

	bookings := make([]Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			continue
		}
		bookings = append(bookings, booking)
	}

	return bookings
}

func (r *PostgresRepository) GetByID(id int) (Booking, error) {
	row := r.db.QueryRow(getBookingByIDQuery, id)
	booking, err := scanBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Booking{}, ErrNotFound
		}
		return Booking{}, err
	}

	return booking, nil
}

func (r *PostgresRepository) Create(booking Booking) (Booking, error) {
	var id int
	err := r.db.QueryRow(
		insertBookingQuery,
		booking.UserID,
		booking.RestaurantID,
		booking.Guests,
		booking.Date,
		booking.Status,
		booking.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Booking{}, err
	}

	booking.ID = id
	return booking, nil
}

func (r *PostgresRepository) Update(id int, update Booking) (Booking, error) {
	result, err := r.db.Exec(
		updateBookingQuery,
		update.Guests,
		update.Date,
		update.Status,
		update.UpdatedAt,
		id,
	)
	if err != nil {
		return Booking{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Booking{}, err
	}
	if affected == 0 {
		return Booking{}, ErrNotFound
	}

	return r.GetByID(id)
}

func scanBooking(scanner rowScanner) (Booking, error) {
	booking := Booking{}
	var createdAt sql.NullString
	var updatedAt sql.NullString

	if err := scanner.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RestaurantID,
		&booking.Guests,
		&booking.Date,
		&booking.Status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Booking{}, err
	}

	if createdAt.Valid {
		booking.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		booking.UpdatedAt = updatedAt.String
	}

	return booking, nil
}
