package database

import (
	"database/sql"
	"farm-records/app/models"
	"fmt"
	"time"
)

const daysPerYear = 365.25

// GetMobStock returns the stock page data: one block per mob (ordered by mob
// name) with its paddock, animal count and average weight, plus the mob's
// animals ordered by id with ages computed against the given simulated date.
func GetMobStock(db *sql.DB, current time.Time) ([]*models.MobStock, error) {
	query := `
		SELECT
			mobs.id AS mob_id,
			mobs.name AS mob_name,
			paddocks.name AS paddock_name,
			COUNT(stock.id) AS stock_count,
			AVG(stock.weight) AS average_weight
		FROM mobs
		LEFT JOIN paddocks ON mobs.paddock_id = paddocks.id
		LEFT JOIN stock ON mobs.id = stock.mob_id
		GROUP BY mobs.id, mobs.name, paddocks.name
		ORDER BY mobs.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}

	var mobs []*models.MobStock
	for rows.Next() {
		m := &models.MobStock{}
		var paddockName sql.NullString
		var avgWeight sql.NullFloat64
		if err := rows.Scan(&m.MobID, &m.MobName, &paddockName, &m.StockCount, &avgWeight); err != nil {
			rows.Close()
			return nil, err
		}
		m.PaddockName = paddockName.String
		if avgWeight.Valid {
			m.AverageWeight = &avgWeight.Float64
		}
		mobs = append(mobs, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, mob := range mobs {
		animals, err := getMobAnimals(db, mob.MobID, current)
		if err != nil {
			return nil, err
		}
		mob.Animals = animals
	}
	return mobs, nil
}

func getMobAnimals(db *sql.DB, mobID int, current time.Time) ([]*models.StockAnimal, error) {
	query := `SELECT id, mob_id, weight, dob FROM stock WHERE mob_id = $1 ORDER BY id`

	rows, err := db.Query(query, mobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var animals []*models.StockAnimal
	for rows.Next() {
		a := &models.StockAnimal{}
		var dob string
		if err := rows.Scan(&a.ID, &a.MobID, &a.Weight, &dob); err != nil {
			return nil, err
		}
		a.DOB, err = time.Parse(DateLayout, dob)
		if err != nil {
			return nil, fmt.Errorf("parse dob %q for animal %d: %w", dob, a.ID, err)
		}
		ageDays := current.Sub(a.DOB).Hours() / 24
		a.Age = ageDays / daysPerYear
		animals = append(animals, a)
	}
	return animals, rows.Err()
}
