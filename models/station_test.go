package models_test

import (
	"testing"

	"restaurant-pos-api/models"

	"github.com/stretchr/testify/assert"
)

func TestStationForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     models.Station
	}{
		{"raw_meat", models.StationButchery},
		{"raw meat", models.StationButchery},
		{"RAW MEAT", models.StationButchery},
		{"Raw_Meat", models.StationButchery},
		{"food", models.StationKitchen},
		{"Food", models.StationKitchen},
		{"drinks", models.StationBar},
		{"DRINKS", models.StationBar},
		// unrecognized categories route to the kitchen
		{"dessert", models.StationKitchen},
		{"", models.StationKitchen},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, models.StationForCategory(tt.category), "category %q", tt.category)
	}
}

func TestNeedsPrepTag(t *testing.T) {
	assert.True(t, models.StationKitchen.NeedsPrepTag())
	assert.True(t, models.StationButchery.NeedsPrepTag())
	assert.False(t, models.StationBar.NeedsPrepTag())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, models.IsValidCategory("food"))
	assert.True(t, models.IsValidCategory("raw meat"))
	assert.True(t, models.IsValidCategory("Drinks"))
	assert.False(t, models.IsValidCategory("dessert"))
	assert.False(t, models.IsValidCategory(""))
}

func TestIsValidRole(t *testing.T) {
	for _, r := range models.ValidRoles {
		assert.True(t, models.IsValidRole(r))
	}
	assert.False(t, models.IsValidRole("chef"))
}
