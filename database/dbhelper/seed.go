package dbhelper

import "github.com/ristorante-africa/ristorante/models"

// DefaultMenuItems is the house catalog installed by the menu sync operation.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			Name:        "Bruschetta Trio",
			Description: "Three varieties of bruschetta: classic tomato & basil, mushroom & truffle, and goat cheese & honey",
			Price:       12.99,
			Category:    models.CategoryAppetizer,
			Tags:        []string{"vegetarian"},
			Available:   true,
		},
		{
			Name:        "Caesar Salad",
			Description: "Fresh romaine lettuce with parmesan cheese, croutons, and our signature Caesar dressing",
			Price:       10.99,
			Category:    models.CategoryAppetizer,
			Tags:        []string{"vegetarian"},
			Available:   true,
		},
		{
			Name:        "Shrimp Cocktail",
			Description: "Jumbo shrimp served with house-made cocktail sauce and lemon",
			Price:       15.99,
			Category:    models.CategoryAppetizer,
			Allergens:   []string{"shellfish"},
			Available:   true,
		},
		{
			Name:        "Grilled Salmon",
			Description: "Atlantic salmon grilled to perfection, served with roasted vegetables and lemon butter sauce",
			Price:       24.99,
			Category:    models.CategoryMain,
			Tags:        []string{"glutenFree"},
			Available:   true,
		},
		{
			Name:        "Ribeye Steak",
			Description: "12oz prime ribeye, cooked to your preference, with garlic mashed potatoes and seasonal vegetables",
			Price:       32.99,
			Category:    models.CategoryMain,
			Available:   true,
		},
		{
			Name:        "Vegetarian Risotto",
			Description: "Creamy arborio rice with seasonal vegetables, parmesan, and fresh herbs",
			Price:       18.99,
			Category:    models.CategoryMain,
			Tags:        []string{"vegetarian", "glutenFree"},
			Available:   true,
		},
		{
			Name:        "Spicy Thai Curry",
			Description: "Aromatic red curry with vegetables and your choice of chicken or tofu, served with jasmine rice",
			Price:       19.99,
			Category:    models.CategoryMain,
			Tags:        []string{"spicy"},
			Available:   true,
		},
		{
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten center, served with vanilla ice cream",
			Price:       9.99,
			Category:    models.CategoryDessert,
			Tags:        []string{"vegetarian"},
			Available:   true,
		},
		{
			Name:        "Tiramisu",
			Description: "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone cream",
			Price:       8.99,
			Category:    models.CategoryDessert,
			Tags:        []string{"vegetarian"},
			Available:   true,
		},
		{
			Name:        "Fresh Fruit Platter",
			Description: "Seasonal fresh fruits with a honey yogurt dip",
			Price:       7.99,
			Category:    models.CategoryDessert,
			Tags:        []string{"vegetarian", "vegan", "glutenFree"},
			Available:   true,
		},
		{
			Name:        "Fresh Orange Juice",
			Description: "Freshly squeezed orange juice",
			Price:       4.99,
			Category:    models.CategoryBeverage,
			Tags:        []string{"vegetarian", "vegan", "glutenFree"},
			Available:   true,
		},
		{
			Name:        "Espresso",
			Description: "Single or double shot of premium espresso",
			Price:       2.99,
			Category:    models.CategoryBeverage,
			Tags:        []string{"vegetarian", "vegan", "glutenFree"},
			Available:   true,
		},
		{
			Name:        "Chardonnay",
			Description: "California Chardonnay, 2019",
			Price:       12.99,
			Category:    models.CategoryWine,
			Tags:        []string{"vegetarian", "vegan", "glutenFree"},
			Available:   true,
		},
		{
			Name:        "Cabernet Sauvignon",
			Description: "Napa Valley Cabernet, 2018",
			Price:       15.99,
			Category:    models.CategoryWine,
			Tags:        []string{"vegetarian", "vegan", "glutenFree"},
			Available:   true,
		},
		{
			Name:        "Craft IPA",
			Description: "Local craft IPA, hoppy and refreshing",
			Price:       6.99,
			Category:    models.CategoryBeer,
			Tags:        []string{"vegetarian", "vegan", "glutenFree"},
			Available:   true,
		},
		{
			Name:        "Mojito",
			Description: "White rum, fresh mint, lime, and soda water",
			Price:       10.99,
			Category:    models.CategoryCocktail,
			Tags:        []string{"vegetarian", "vegan", "glutenFree"},
			Available:   true,
		},
		{
			Name:        "Old Fashioned",
			Description: "Bourbon, sugar, bitters, and orange peel",
			Price:       12.99,
			Category:    models.CategoryCocktail,
			Tags:        []string{"vegetarian", "vegan", "glutenFree"},
			Available:   true,
		},
	}
}
