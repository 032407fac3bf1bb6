package clock

import (
	"database/sql"
	"farm-records/app/database"
	"time"

	"github.com/gofiber/fiber/v2"
)

const localsKey = "currDate"

// DisplayLayout is how the simulated date is shown on pages.
const DisplayLayout = "Monday 2 January 2006"

// Middleware loads the simulated current date once per request so every
// query in the request agrees on "today". Handlers read it back with
// CurrentDate.
func Middleware(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := database.GetCurrentDate(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load current date: "+err.Error())
		}
		c.Locals(localsKey, date)
		return c.Next()
	}
}

// CurrentDate returns the date cached for this request.
func CurrentDate(c *fiber.Ctx) time.Time {
	date, _ := c.Locals(localsKey).(time.Time)
	return date
}

// SetCurrentDate replaces the cached date; the advance and reset handlers
// call this after mutating the clock so the rest of the request sees the
// new value.
func SetCurrentDate(c *fiber.Ctx, date time.Time) {
	c.Locals(localsKey, date)
}
