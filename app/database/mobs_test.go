package database

import (
	"farm-records/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paddockIDs(paddocks []*models.Paddock) []int {
	var ids []int
	for _, p := range paddocks {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestGetMobSummaries(t *testing.T) {
	db := openTestDB(t)

	summaries, err := GetMobSummaries(db)
	require.NoError(t, err)
	require.Len(t, summaries, 4)

	var names, paddocks []string
	for _, m := range summaries {
		names = append(names, m.Name)
		paddocks = append(paddocks, m.PaddockName)
	}
	assert.Equal(t, []string{"Angus Heifers", "Dry Cows", "Hereford Steers", "Jersey Calves"}, names)
	assert.Equal(t, []string{"Birch", "", "Kahikatea", "Rimu"}, paddocks)
}

func TestGetAvailablePaddocksForAssignedMob(t *testing.T) {
	db := openTestDB(t)

	mob, err := GetMobByID(db, 1)
	require.NoError(t, err)
	require.NotNil(t, mob)

	available, err := GetAvailablePaddocks(db, mob)
	require.NoError(t, err)

	// Vacant paddocks (Ash, Matai) plus the mob's own (Birch); never the
	// paddocks held by the other mobs.
	assert.Equal(t, []int{1, 2, 4}, paddockIDs(available))
}

func TestGetAvailablePaddocksForUnassignedMob(t *testing.T) {
	db := openTestDB(t)

	mob, err := GetMobByID(db, 4)
	require.NoError(t, err)
	require.NotNil(t, mob)
	require.Nil(t, mob.PaddockID)

	available, err := GetAvailablePaddocks(db, mob)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, paddockIDs(available))
}

func TestMoveMob(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, MoveMob(db, 4, 1))

	mob, err := GetMobByID(db, 4)
	require.NoError(t, err)
	require.NotNil(t, mob)
	require.NotNil(t, mob.PaddockID)
	assert.Equal(t, 1, *mob.PaddockID)
}

func TestGetMobByIDMissing(t *testing.T) {
	db := openTestDB(t)

	mob, err := GetMobByID(db, 999)
	require.NoError(t, err)
	assert.Nil(t, mob)
}
