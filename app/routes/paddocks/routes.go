package paddocks

import (
	"database/sql"
	"farm-records/app/database"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SetupPaddocksRoutes registers the paddock listing and the create, edit and
// delete actions.
func SetupPaddocksRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/paddocks", PaddocksPage(db))
	app.Get("/edit_paddock", EditPaddockPage(db))
	app.Post("/edit_paddock", SavePaddockHandler(db))
	app.Get("/edit_paddock/:id", EditPaddockPage(db))
	app.Post("/edit_paddock/:id", SavePaddockHandler(db))
	app.Get("/delete_paddock/:id", DeletePaddockHandler(db))
}

// PaddocksPage renders the paddock listing with each paddock's mob and stock
// count.
func PaddocksPage(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summaries, err := database.GetPaddockSummaries(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load paddocks: "+err.Error())
		}
		return c.Render("paddocks", fiber.Map{
			"Title":    "Paddocks - Farm Records",
			"Paddocks": summaries,
		})
	}
}

// paddockForm carries the edit form's field values as strings so a failed
// submission can be redisplayed verbatim.
type paddockForm struct {
	ID      string
	Name    string
	Area    string
	DMPerHa string
	TotalDM string
}

// EditPaddockPage renders the paddock form, blank for a create or populated
// for an edit. An unknown numeric id redirects back to the listing; a
// non-numeric id is a 404.
func EditPaddockPage(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := paddockForm{}

		if idParam := c.Params("id"); idParam != "" {
			id, err := strconv.Atoi(idParam)
			if err != nil {
				return fiber.ErrNotFound
			}
			paddock, err := database.GetPaddockByID(db, id)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to load paddock: "+err.Error())
			}
			if paddock == nil {
				return c.Redirect("/paddocks")
			}
			form = paddockForm{
				ID:      idParam,
				Name:    paddock.Name,
				Area:    formatNumber(paddock.Area),
				DMPerHa: formatNumber(paddock.DMPerHa),
				TotalDM: formatNumber(paddock.TotalDM),
			}
		}

		return c.Render("edit_paddock", fiber.Map{
			"Title":   "Edit Paddock - Farm Records",
			"Paddock": form,
		})
	}
}

// SavePaddockHandler validates the submitted form and inserts or updates the
// paddock. Non-numeric area or DM/ha re-renders the form with the submitted
// values untouched and no write performed.
func SavePaddockHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := paddockForm{
			ID:      c.Params("id"),
			Name:    c.FormValue("name"),
			Area:    c.FormValue("area"),
			DMPerHa: c.FormValue("dm_per_ha"),
		}

		area, areaErr := strconv.ParseFloat(form.Area, 64)
		dmPerHa, dmErr := strconv.ParseFloat(form.DMPerHa, 64)
		if areaErr != nil || dmErr != nil {
			return c.Render("edit_paddock", fiber.Map{
				"Title":   "Edit Paddock - Farm Records",
				"Paddock": form,
				"Error":   "Area and DM/ha must be numeric values.",
			})
		}

		totalDM := area * dmPerHa

		if form.ID != "" {
			id, err := strconv.Atoi(form.ID)
			if err != nil {
				return fiber.ErrNotFound
			}
			if err := database.UpdatePaddock(db, id, form.Name, area, dmPerHa, totalDM); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update paddock: "+err.Error())
			}
		} else {
			if err := database.CreatePaddock(db, form.Name, area, dmPerHa, totalDM); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create paddock: "+err.Error())
			}
		}

		return c.Redirect("/paddocks")
	}
}

// DeletePaddockHandler removes a paddock, unassigning any mob in it first.
// An unknown numeric id is ignored; either way it redirects to the listing.
func DeletePaddockHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.ErrNotFound
		}
		if err := database.DeletePaddock(db, id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete paddock: "+err.Error())
		}
		return c.Redirect("/paddocks")
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
