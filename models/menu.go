package models

import (
	"time"

	"github.com/google/uuid"
)

type MenuCategory string

const (
	CategoryAppetizer MenuCategory = "appetizer"
	CategoryMain      MenuCategory = "main"
	CategoryDessert   MenuCategory = "dessert"
	CategoryBeverage  MenuCategory = "beverage"
	CategoryWine      MenuCategory = "wine"
	CategoryBeer      MenuCategory = "beer"
	CategoryCocktail  MenuCategory = "cocktail"
)

func (c MenuCategory) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage,
		CategoryWine, CategoryBeer, CategoryCocktail:
		return true
	}
	return false
}

type MenuTag string

const (
	TagVegetarian MenuTag = "vegetarian"
	TagVegan      MenuTag = "vegan"
	TagGlutenFree MenuTag = "glutenFree"
	TagSpicy      MenuTag = "spicy"
)

func (t MenuTag) IsValid() bool {
	return t == TagVegetarian || t == TagVegan || t == TagGlutenFree || t == TagSpicy
}

// FilterTags drops anything outside the closed tag set.
func FilterTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if MenuTag(t).IsValid() {
			out = append(out, t)
		}
	}
	return out
}

type MenuItem struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	Description string       `db:"description" json:"description"`
	Price       float64      `db:"price" json:"price"`
	Category    MenuCategory `db:"category" json:"category"`
	Image       string       `db:"image" json:"image,omitempty"`
	Tags        []string     `db:"tags" json:"tags,omitempty"`
	Allergens   []string     `db:"allergens" json:"allergens,omitempty"`
	Available   bool         `db:"available" json:"available"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}
