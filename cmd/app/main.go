package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/imsanjayr/ShopVerse/internal/admin"
	"github.com/imsanjayr/ShopVerse/internal/cart"
	"github.com/imsanjayr/ShopVerse/internal/category"
	"github.com/imsanjayr/ShopVerse/internal/config"
	"github.com/imsanjayr/ShopVerse/internal/order"
	"github.com/imsanjayr/ShopVerse/internal/product"
	"github.com/imsanjayr/ShopVerse/internal/store"
	"github.com/imsanjayr/ShopVerse/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(logger.New())

	st := mustOpenStore(cfg)

	productRepo := product.NewStoreRepository(st)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	categoryHandler := category.NewHandler(category.NewService(productRepo))

	cartService := cart.NewService(cart.NewStoreRepository(st), productRepo)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewStoreRepository(st), cartService, productRepo)
	orderHandler := order.NewHandler(orderService)

	userService := user.NewService(user.NewStoreRepository(st))
	userHandler := user.NewHandler(userService, []byte(cfg.JWTSecret))

	adminService := admin.NewService(admin.NewStoreRepository(st), userService, productService, orderService)
	adminHandler := admin.NewHandler(adminService, productService, orderService, []byte(cfg.JWTSecret))

	// public surface: catalog, categories, auth
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	// everything registered after this middleware needs a valid token;
	// the handlers themselves check for the user_id or admin_id claim
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		},
	}))

	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	adminHandler.RegisterProtectedRoutes(app)

	log.Printf("listening on %s", cfg.Addr)
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

func mustOpenStore(cfg config.Config) store.Store {
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("ping database: %v", err)
		}
		pg := store.NewPostgresStore(db)
		if err := pg.Init(); err != nil {
			log.Fatalf("init database: %v", err)
		}
		return pg
	}

	fs, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data dir: %v", err)
	}
	return fs
}
