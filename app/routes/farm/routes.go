package farm

import (
	"database/sql"
	"farm-records/app/database"
	"farm-records/app/routes/clock"

	"github.com/gofiber/fiber/v2"
)

// SetupFarmRoutes registers the home page and the two whole-farm actions:
// advancing the simulated day and resetting the database.
func SetupFarmRoutes(app *fiber.App, db *sql.DB, driver string) {
	app.Get("/", HomePage)
	app.Post("/advance_date", AdvanceDateHandler(db))
	app.Get("/reset", ResetHandler(db, driver))
}

// HomePage shows the current simulated date and the farm actions.
func HomePage(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title":       "Farm Records",
		"CurrentDate": clock.CurrentDate(c).Format(clock.DisplayLayout),
	})
}

// AdvanceDateHandler moves the simulation forward one day and applies the
// pasture growth/consumption update, then redirects to the paddock listing.
func AdvanceDateHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		next, err := database.AdvanceDay(db, clock.CurrentDate(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to advance date: "+err.Error())
		}
		clock.SetCurrentDate(c, next)
		return c.Redirect("/paddocks")
	}
}

// ResetHandler reloads the seed data, destroying all current records.
func ResetHandler(db *sql.DB, driver string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.Reset(db, driver); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to reset database: "+err.Error())
		}
		date, err := database.GetCurrentDate(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to reload current date: "+err.Error())
		}
		clock.SetCurrentDate(c, date)
		return c.Redirect("/paddocks")
	}
}
