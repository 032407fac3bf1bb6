package mobs

import (
	"database/sql"
	"farm-records/app/database"
	"farm-records/app/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SetupMobsRoutes registers the mob listing and the move-mob form.
func SetupMobsRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/mobs", MobsPage(db))
	app.Get("/move_mob/:id", MoveMobPage(db))
	app.Post("/move_mob/:id", MoveMobHandler(db))
}

// MobsPage renders the mob listing with each mob's paddock.
func MobsPage(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summaries, err := database.GetMobSummaries(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load mobs: "+err.Error())
		}
		return c.Render("mobs", fiber.Map{
			"Title": "Mobs - Farm Records",
			"Mobs":  summaries,
		})
	}
}

// MoveMobPage renders the move form: the mob plus every paddock it could
// move to (vacant ones and its own).
func MoveMobPage(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mob, available, err := mobWithAvailable(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.Render("move_mob", fiber.Map{
			"Title":     "Move Mob - Farm Records",
			"Mob":       mob,
			"Available": available,
		})
	}
}

// MoveMobHandler moves the mob to the submitted paddock. The submitted id is
// checked against the same availability rule the form was built from; a
// paddock taken by another mob re-renders the form with an error instead of
// trusting the client.
func MoveMobHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mob, available, err := mobWithAvailable(db, c.Params("id"))
		if err != nil {
			return err
		}

		paddockID, err := strconv.Atoi(c.FormValue("paddock_id"))
		if err != nil || !contains(available, paddockID) {
			return c.Render("move_mob", fiber.Map{
				"Title":     "Move Mob - Farm Records",
				"Mob":       mob,
				"Available": available,
				"Error":     "That paddock is not available for this mob.",
			})
		}

		if err := database.MoveMob(db, mob.ID, paddockID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to move mob: "+err.Error())
		}
		return c.Redirect("/mobs")
	}
}

func mobWithAvailable(db *sql.DB, idParam string) (*models.Mob, []*models.Paddock, error) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return nil, nil, fiber.ErrNotFound
	}

	mob, err := database.GetMobByID(db, id)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load mob: "+err.Error())
	}
	if mob == nil {
		return nil, nil, fiber.ErrNotFound
	}

	available, err := database.GetAvailablePaddocks(db, mob)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load paddocks: "+err.Error())
	}
	return mob, available, nil
}

func contains(paddocks []*models.Paddock, id int) bool {
	for _, p := range paddocks {
		if p.ID == id {
			return true
		}
	}
	return false
}
