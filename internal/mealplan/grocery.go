package mealplan

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/matt-dz/mealplan/internal/recipe"
)

// GroceryItem is one aggregated line of a grocery list.
type GroceryItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
} // @name GroceryItem

type groceryKey struct {
	name string
	unit string
}

// GroceryList sums the ingredient quantities of every meal in meals. Lines
// are keyed by lowercased name and unit, so the same ingredient in two units
// stays on two lines. Meals whose recipe is missing from recipes are
// skipped. The result is sorted by name, then unit.
func GroceryList(meals Meals, recipes map[int64]recipe.Recipe) []GroceryItem {
	totals := make(map[groceryKey]*GroceryItem)
	for _, dayMeals := range meals {
		for _, meal := range dayMeals {
			r, ok := recipes[meal.RecipeID]
			if !ok {
				continue
			}
			for _, ing := range r.Ingredients {
				key := groceryKey{name: strings.ToLower(ing.Name), unit: ing.Unit}
				if item, ok := totals[key]; ok {
					item.Quantity += ing.Quantity
					continue
				}
				totals[key] = &GroceryItem{Name: key.name, Quantity: ing.Quantity, Unit: key.unit}
			}
		}
	}

	items := make([]GroceryItem, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}

	col := collate.New(language.English, collate.Loose)
	slices.SortFunc(items, func(a, b GroceryItem) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Unit, b.Unit)
	})
	return items
}
