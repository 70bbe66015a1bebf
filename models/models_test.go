package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, ReservationStatus("seated").IsValid())

	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusRejected.IsActive())
}

func TestMenuCategory(t *testing.T) {
	for _, c := range []MenuCategory{CategoryAppetizer, CategoryMain, CategoryDessert,
		CategoryBeverage, CategoryWine, CategoryBeer, CategoryCocktail} {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, MenuCategory("sides").IsValid())
}

func TestFilterTags(t *testing.T) {
	got := FilterTags([]string{"vegan", "radioactive", "spicy", ""})
	assert.Equal(t, []string{"vegan", "spicy"}, got)

	assert.Nil(t, FilterTags(nil))
	assert.Nil(t, FilterTags([]string{"bogus"}))
}
