package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaddockSummaries(t *testing.T) {
	db := openTestDB(t)

	summaries, err := GetPaddockSummaries(db)
	require.NoError(t, err)
	require.Len(t, summaries, 5)

	var names []string
	for _, s := range summaries {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Ash", "Birch", "Kahikatea", "Matai", "Rimu"}, names)

	birch := summaries[1]
	assert.Equal(t, "Angus Heifers", birch.MobName)
	assert.Equal(t, 3, birch.StockCount)
	assert.InDelta(t, 5000, birch.TotalDM, 1e-9)

	ash := summaries[0]
	assert.Empty(t, ash.MobName)
	assert.Zero(t, ash.StockCount)
}

func TestGetPaddockSummariesSharedPaddock(t *testing.T) {
	db := openTestDB(t)

	// The schema does not enforce paddock exclusivity; a second mob in
	// Birch must still yield one listing row per paddock.
	_, err := db.Exec(`INSERT INTO mobs (name, paddock_id) VALUES ('Aberdeen', 2)`)
	require.NoError(t, err)

	summaries, err := GetPaddockSummaries(db)
	require.NoError(t, err)
	require.Len(t, summaries, 5)

	birch := summaries[1]
	assert.Equal(t, "Birch", birch.Name)
	assert.Equal(t, "Aberdeen", birch.MobName)
	assert.Equal(t, 3, birch.StockCount)
}

func TestCreatePaddock(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, CreatePaddock(db, "Totara", 4, 1200, 4800))

	created := paddockByName(t, db, "Totara")
	assert.InDelta(t, created.Area*created.DMPerHa, created.TotalDM, 1e-9)
	assert.Equal(t, 6, countRows(t, db, "paddocks"))
}

func TestUpdatePaddock(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, UpdatePaddock(db, 1, "Ash North", 6, 1000, 6000))

	p, err := GetPaddockByID(db, 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Ash North", p.Name)
	assert.InDelta(t, 6000, p.TotalDM, 1e-9)
}

func TestGetPaddockByIDMissing(t *testing.T) {
	db := openTestDB(t)

	p, err := GetPaddockByID(db, 999)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestDeletePaddockUnassignsMob(t *testing.T) {
	db := openTestDB(t)

	// Birch (id 2) holds the Angus Heifers.
	require.NoError(t, DeletePaddock(db, 2))

	p, err := GetPaddockByID(db, 2)
	require.NoError(t, err)
	assert.Nil(t, p)

	mob, err := GetMobByID(db, 1)
	require.NoError(t, err)
	require.NotNil(t, mob)
	assert.Nil(t, mob.PaddockID)
}

func TestDeletePaddockMissingIsNoop(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, DeletePaddock(db, 999))
	assert.Equal(t, 5, countRows(t, db, "paddocks"))
}
