package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"restaurant-backend/internal/booking"
	"restaurant-backend/internal/category"
	"restaurant-backend/internal/config"
	"restaurant-backend/internal/food"
	"restaurant-backend/internal/restaurant"
	"restaurant-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)

	restaurantRepo := restaurant.NewPostgresRepository(db)
	if n := restaurant.Seed(restaurantRepo); n > 0 {
		log.Printf("seeded %d fixture restaurants", n)
	}
	restaurantService := restaurant.NewService(restaurantRepo)
	restaurantHandler := restaurant.NewHandler(restaurantService)

	foodHandler := food.NewHandler(food.NewService(food.NewPostgresRepository(db)))
	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewPostgresRepository(db), restaurantService))

	// registration, login and menu browsing are open; everything else
	// requires the api token issued at registration
	userHandler.RegisterPublicRoutes(app)
	restaurantHandler.RegisterPublicRoutes(app)
	foodHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)

	app.Use(user.AuthMiddleware(userService))

	userHandler.RegisterProtectedRoutes(app)
	restaurantHandler.RegisterProtectedRoutes(app)
	foodHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	bookingHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s -> %d (%s)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(databaseURL string) *sql.DB {
	if databaseURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// ensureSchema creates the tables on first run. The unique index on
// lower(email) is what actually guarantees account uniqueness; the service
// pre-check only produces nicer errors.
func ensureSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			"userId" SERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			"firstName" TEXT,
			"lastName" TEXT,
			roles TEXT[] NOT NULL DEFAULT '{}',
			"apiToken" TEXT NOT NULL,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users (lower(email))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_api_token_idx ON users ("apiToken")`,
		`CREATE TABLE IF NOT EXISTS restaurant (
			"restaurantId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			"amOpeningTime" TEXT[] NOT NULL DEFAULT '{}',
			"pmOpeningTime" TEXT[] NOT NULL DEFAULT '{}',
			"maxGuest" INT NOT NULL DEFAULT 0,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS category (
			"categoryId" SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS food (
			"foodId" SERIAL PRIMARY KEY,
			uuid TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			price NUMERIC NOT NULL DEFAULT 0,
			"categoryId" INT REFERENCES category ("categoryId") ON DELETE SET NULL,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS booking (
			"bookingId" SERIAL PRIMARY KEY,
			"userId" INT NOT NULL REFERENCES users ("userId") ON DELETE CASCADE,
			"restaurantId" INT NOT NULL REFERENCES restaurant ("restaurantId") ON DELETE CASCADE,
			guests INT NOT NULL,
			date TEXT,
			status TEXT,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
