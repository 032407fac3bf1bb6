package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMobStock(t *testing.T) {
	db := openTestDB(t)
	current, err := GetCurrentDate(db)
	require.NoError(t, err)

	mobs, err := GetMobStock(db, current)
	require.NoError(t, err)
	require.Len(t, mobs, 4)

	angus := mobs[0]
	assert.Equal(t, "Angus Heifers", angus.MobName)
	assert.Equal(t, "Birch", angus.PaddockName)
	assert.Equal(t, 3, angus.StockCount)
	require.NotNil(t, angus.AverageWeight)
	assert.InDelta(t, (410.5+398+425.2)/3, *angus.AverageWeight, 1e-9)

	require.Len(t, angus.Animals, 3)
	assert.Equal(t, 1, angus.Animals[0].ID)
	assert.Equal(t, 2, angus.Animals[1].ID)
	assert.Equal(t, 3, angus.Animals[2].ID)

	// Animal 1 born 2022-08-14; 807 days to 2024-10-29.
	assert.InDelta(t, 807.0/365.25, angus.Animals[0].Age, 1e-9)
}

func TestGetMobStockEmptyMob(t *testing.T) {
	db := openTestDB(t)

	mobs, err := GetMobStock(db, time.Date(2024, 10, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	dry := mobs[1]
	assert.Equal(t, "Dry Cows", dry.MobName)
	assert.Empty(t, dry.PaddockName)
	assert.Zero(t, dry.StockCount)
	assert.Nil(t, dry.AverageWeight)
	assert.Empty(t, dry.Animals)
}

func TestGetMobStockAgeTracksAdvancedDate(t *testing.T) {
	db := openTestDB(t)
	current, err := GetCurrentDate(db)
	require.NoError(t, err)

	before, err := GetMobStock(db, current)
	require.NoError(t, err)
	after, err := GetMobStock(db, current.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.InDelta(t, 1.0/365.25,
		after[0].Animals[0].Age-before[0].Animals[0].Age, 1e-9)
}
