package stock

import (
	"database/sql"
	"farm-records/app/database"
	"farm-records/app/routes/clock"

	"github.com/gofiber/fiber/v2"
)

// SetupStockRoutes registers the stock listing.
func SetupStockRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/stock", StockPage(db))
}

// StockPage renders every mob with its animals, including ages computed
// against the request's cached simulated date.
func StockPage(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mobs, err := database.GetMobStock(db, clock.CurrentDate(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load stock: "+err.Error())
		}
		return c.Render("stock", fiber.Map{
			"Title": "Stock - Farm Records",
			"Mobs":  mobs,
		})
	}
}
