package recipes

import (
	"github.com/matt-dz/mealplan/internal/recipe"
)

type ScaleRecipeResponse struct {
	RecipeID         int64               `json:"recipeId"`
	OriginalServings int                 `json:"originalServings"`
	Servings         int                 `json:"servings"`
	Ingredients      []recipe.Ingredient `json:"ingredients"`
} // @name ScaledRecipe

type MessageResponse struct {
	Message string `json:"message"`
} // @name Message
