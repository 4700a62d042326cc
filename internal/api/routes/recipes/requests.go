package recipes

import (
	"errors"
	"strconv"
	"strings"

	"github.com/matt-dz/mealplan/internal/recipe"
)

type (
	recipeID string
	servings string
	category string
)

func (r recipeID) Parse() (int64, error) {
	v, err := strconv.ParseInt(string(r), 10, 64)
	if err != nil {
		return 0, errors.New("expected an integer")
	}
	if v <= 0 {
		return 0, errors.New("recipe id should be positive")
	}
	return v, nil
}

func (s servings) Parse() (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil {
		return 0, errors.New("servings must be an integer")
	}
	if v < recipe.MinServings || v > recipe.MaxServings {
		return 0, errors.New("servings must be between 1 and 100")
	}
	return v, nil
}

// Parse returns the lowercased category, or "" when no filter was given.
func (c category) Parse() (string, error) {
	v := strings.ToLower(strings.TrimSpace(string(c)))
	if v == "" {
		return "", nil
	}
	if !recipe.IsCategory(v) {
		return "", errors.New("category must be one of: " + strings.Join(recipe.Categories, ", "))
	}
	return v, nil
}
