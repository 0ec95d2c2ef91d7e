package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"orders/cmd"
	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/customerrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/productrepo"
	"orders/internal/generated/servers"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	mustMigrate(db)

	if err := postgres.Seed(context.Background(), db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, db)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	tokens, err := httpin.NewTokenIssuer([]byte(configs.JWTSecret), configs.JWTTTL, time.Now)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateExpirePendingOrdersCommandHandler(),
		configs.OrderExpirySchedule,
		configs.OrderPendingMaxAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, tokens, logger, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		JWTSecret: goDotEnvVariable("JWT_SECRET"),
		JWTTTL:    durationEnv("JWT_TTL", time.Hour),

		RateLimitRPS:   floatEnv("RATE_LIMIT_RPS", 20),
		RateLimitBurst: intEnv("RATE_LIMIT_BURST", 40),

		OrderExpirySchedule: envOrDefault("ORDER_EXPIRY_SCHEDULE", "0 */5 * * * *"),
		OrderPendingMaxAge:  durationEnv("ORDER_PENDING_MAX_AGE", 24*time.Hour),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envOrDefault(key, fallback string) string {
	if v := goDotEnvVariable(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return d
}

func intEnv(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid number in %s: %v", key, err)
	}
	return f
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// AutoMigrate does not create cross-package foreign keys, and both are
	// RESTRICT so referenced customers and products cannot be deleted.
	constraints := []string{
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_orders_customer') THEN
				ALTER TABLE orders ADD CONSTRAINT fk_orders_customer
					FOREIGN KEY (customer_id) REFERENCES customers (id) ON DELETE RESTRICT;
			END IF;
		END $$`,
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_order_lines_order') THEN
				ALTER TABLE order_lines ADD CONSTRAINT fk_order_lines_order
					FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE;
			END IF;
		END $$`,
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_order_lines_product') THEN
				ALTER TABLE order_lines ADD CONSTRAINT fk_order_lines_product
					FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE RESTRICT;
			END IF;
		END $$`,
	}
	for _, ddl := range constraints {
		if err := db.Exec(ddl).Error; err != nil {
			log.Fatalf("Failed to add constraint: %v", err)
		}
	}
}

func startWebServer(root cmd.CompositionRoot, tokens *httpin.TokenIssuer, logger *slog.Logger, configs cmd.Config) {
	// The embedded contract must load; failing fast beats serving an API
	// that disagrees with its published spec.
	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}
	swagger.Servers = nil

	server := httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:       root.CreateCreateOrderCommandHandler(),
			UpdateOrderStatus: root.CreateUpdateOrderStatusCommandHandler(),
			CreateCustomer:    root.CreateCreateCustomerCommandHandler(),
			UpdateCustomer:    root.CreateUpdateCustomerCommandHandler(),
			DeleteCustomer:    root.CreateDeleteCustomerCommandHandler(),
			CreateProduct:     root.CreateCreateProductCommandHandler(),
			UpdateProduct:     root.CreateUpdateProductCommandHandler(),
			DeleteProduct:     root.CreateDeleteProductCommandHandler(),
		},
		httpin.QueryHandlers{
			GetOrder:        root.CreateGetOrderQueryHandler(),
			GetAllOrders:    root.CreateGetAllOrdersQueryHandler(),
			GetCustomer:     root.CreateGetCustomerQueryHandler(),
			GetAllCustomers: root.CreateGetAllCustomersQueryHandler(),
			GetProduct:      root.CreateGetProductQueryHandler(),
			GetAllProducts:  root.CreateGetAllProductsQueryHandler(),
		},
		tokens,
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(httpin.CorrelationID())
	e.Use(httpin.RequestLogger(logger))
	e.Use(httpin.RateLimiter(configs.RateLimitRPS, configs.RateLimitBurst))

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(200, swagger)
	})

	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
