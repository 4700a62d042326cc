// Package recipe holds the recipe domain model and its rules.
package recipe

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/validation"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
	MaxMinutes           = 1440
	MinServings          = 1
	MaxServings          = 100
)

const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnack     = "snack"
	CategoryDessert   = "dessert"
)

var Categories = []string{
	CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryDessert,
}

var imageURLRe = regexp.MustCompile(`^https?://.+`)

type Ingredient struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"required"`
} // @name Ingredient

// Fields are the user-editable parts of a recipe.
type Fields struct {
	Name         string       `json:"name" validate:"required,max=100"`
	Description  string       `json:"description" validate:"required,max=1000"`
	Ingredients  []Ingredient `json:"ingredients" validate:"min=1,dive"`
	Instructions []string     `json:"instructions" validate:"min=1"`
	PrepTime     int          `json:"prepTime" validate:"gte=0,lte=1440"`
	CookTime     int          `json:"cookTime" validate:"gte=0,lte=1440"`
	Servings     int          `json:"servings" validate:"gte=1,lte=100"`
	Category     string       `json:"category" validate:"required,oneof=breakfast lunch dinner snack dessert"`
	ImageURL     *string      `json:"imageUrl,omitempty"`
}

type Recipe struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
	Fields
	TotalTime int       `json:"totalTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
} // @name Recipe

// TotalTime is prep plus cook time in minutes.
func (f Fields) TotalTime() int {
	return f.PrepTime + f.CookTime
}

// Normalize trims free text, lowercases units and category, and drops an
// empty image url.
func (f Fields) Normalize() Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))

	ingredients := make([]Ingredient, len(f.Ingredients))
	for i, ing := range f.Ingredients {
		ingredients[i] = Ingredient{
			Name:     strings.TrimSpace(ing.Name),
			Quantity: ing.Quantity,
			Unit:     strings.ToLower(strings.TrimSpace(ing.Unit)),
		}
	}
	if f.Ingredients != nil {
		f.Ingredients = ingredients
	}

	if f.Instructions != nil {
		instructions := make([]string, len(f.Instructions))
		for i, step := range f.Instructions {
			instructions[i] = strings.TrimSpace(step)
		}
		f.Instructions = instructions
	}

	if f.ImageURL != nil {
		u := strings.TrimSpace(*f.ImageURL)
		if u == "" {
			f.ImageURL = nil
		} else {
			f.ImageURL = &u
		}
	}
	return f
}

// Validate reports every rule f breaks. Call Normalize first.
func (f Fields) Validate() validation.Errors {
	errs := validation.Struct(f)
	for i, step := range f.Instructions {
		if strings.TrimSpace(step) == "" {
			errs.Add(fmt.Sprintf("instructions[%d]", i), "instruction cannot be empty")
		}
	}
	if f.ImageURL != nil && !imageURLRe.MatchString(*f.ImageURL) {
		errs.Add("imageUrl", "imageUrl must be a valid URL")
	}
	return errs
}

// Scale returns the ingredients adjusted for servings, rounded to two
// decimals. f is left untouched.
func (f Fields) Scale(servings int) []Ingredient {
	factor := float64(servings) / float64(f.Servings)
	scaled := make([]Ingredient, len(f.Ingredients))
	for i, ing := range f.Ingredients {
		scaled[i] = Ingredient{
			Name:     ing.Name,
			Quantity: roundTo2(ing.Quantity * factor),
			Unit:     ing.Unit,
		}
	}
	return scaled
}

func roundTo2(v float64) float64 {
	//nolint:mnd
	return math.Round(v*100) / 100
}

// IngredientsJSON encodes the ingredients for storage.
func (f Fields) IngredientsJSON() ([]byte, error) {
	ingredients := f.Ingredients
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	data, err := json.Marshal(ingredients)
	if err != nil {
		return nil, fmt.Errorf("encoding ingredients: %w", err)
	}
	return data, nil
}

// FromRow converts a stored recipe.
func FromRow(row database.Recipe) (Recipe, error) {
	var ingredients []Ingredient
	if len(row.Ingredients) > 0 {
		if err := json.Unmarshal(row.Ingredients, &ingredients); err != nil {
			return Recipe{}, fmt.Errorf("decoding ingredients of recipe %d: %w", row.ID, err)
		}
	}
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	instructions := row.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	r := Recipe{
		ID:     row.ID,
		UserID: row.UserID,
		Fields: Fields{
			Name:         row.Name,
			Description:  row.Description,
			Ingredients:  ingredients,
			Instructions: instructions,
			PrepTime:     int(row.PrepTime),
			CookTime:     int(row.CookTime),
			Servings:     int(row.Servings),
			Category:     row.Category,
		},
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.ImageUrl.Valid {
		u := row.ImageUrl.String
		r.ImageURL = &u
	}
	r.TotalTime = r.Fields.TotalTime()
	return r, nil
}

// FromRows converts stored recipes, keeping their order.
func FromRows(rows []database.Recipe) ([]Recipe, error) {
	out := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		r, err := FromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// IsCategory reports whether c names a known category.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
