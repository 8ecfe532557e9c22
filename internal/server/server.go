package server

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/localnerve/pantrydb/internal/config"
	"github.com/localnerve/pantrydb/internal/handlers"
	"github.com/localnerve/pantrydb/internal/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/localnerve/pantrydb/docs/api" // Swagger docs
)

// Options toggles the process-wide parts of the app
type Options struct {
	// Metrics registers the Prometheus collectors and serves /metrics.
	// The collectors live in the default registry, so only one app per process may enable it.
	Metrics bool
	// AccessLog writes one line per request to stdout
	AccessLog bool
}

// New builds the Fiber app with middleware and every route
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:                  "pantrydb",
		ErrorHandler:             handlers.ErrorHandler(log),
		EnableSplittingOnParsers: true,
		DisableStartupMessage:    true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(compress.New())

	// Prometheus metrics
	if opts.Metrics {
		prometheus := fiberprometheus.New("pantrydb")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	health := &handlers.HealthHandler{Config: cfg, DB: db, Log: log}
	app.Get("/health", health.Health)

	app.Use(middleware.ResponseModeMiddleware())

	// every data route runs on one pinned connection
	pin := middleware.Connection(db, log)

	demo := &handlers.DemoHandler{}
	app.Get("/", pin, demo.Index)
	app.Get("/another", demo.Another)
	app.Post("/add", pin, demo.Add)
	app.Get("/login", middleware.DenyAll())

	recipes := &handlers.RecipeHandler{}
	app.Get("/recipes", pin, recipes.ListRecipes)
	app.Get("/cookable", pin, recipes.ListCookable)

	households := &handlers.HouseholdHandler{}
	app.Get("/households", pin, households.ListHouseholds)
	app.Post("/households", pin, households.PostHousehold)

	inventory := &handlers.InventoryHandler{}
	app.Get("/inventory", pin, inventory.GetInventory)
	app.Post("/inventory", pin, inventory.PostInventory)

	mealPlans := &handlers.MealPlanHandler{}
	app.Get("/mealplans", pin, mealPlans.GetMealPlans)
	app.Post("/mealplans", pin, mealPlans.PostMealPlan)

	// 404 handler
	app.Use(handlers.NotFound)

	return app
}
