package server

import (
	"database/sql"
	"errors"

	"farm-records/app/routes/clock"
	"farm-records/app/routes/farm"
	"farm-records/app/routes/mobs"
	"farm-records/app/routes/paddocks"
	"farm-records/app/routes/stock"
	"farm-records/app/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// New assembles the fiber app: view engine, middleware, and every route
// group. The driver name is needed by the reset action to pick its schema
// script.
func New(db *sql.DB, driver string) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        templates.Engine(),
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	// Every page needs the simulated date loaded before it runs.
	app.Use(clock.Middleware(db))

	farm.SetupFarmRoutes(app, db, driver)
	paddocks.SetupPaddocksRoutes(app, db)
	mobs.SetupMobsRoutes(app, db)
	stock.SetupStockRoutes(app, db)

	return app
}

// errorHandler renders the 404 page for unknown routes and the generic error
// page for everything else. Store failures surface here as 500s.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("404", fiber.Map{
			"Title": "Page Not Found - Farm Records",
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Farm Records",
		"ErrorTitle":   "Something went wrong",
		"ErrorMessage": err.Error(),
	})
}
