// Package mealplan holds the weekly meal plan model, its date rules, and the
// grocery list aggregator.
package mealplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/recipe"
)

// DateLayout is the format of week start dates and meal date keys.
const DateLayout = "2006-01-02"

const daysPerWeek = 7

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

var MealTypes = []string{MealBreakfast, MealLunch, MealDinner}

var ErrInvalidDate = errors.New("invalid date")

// Meal assigns a recipe to one meal of a day.
type Meal struct {
	RecipeID int64  `json:"recipeId"`
	Type     string `json:"type"`
} // @name Meal

// UnmarshalJSON also accepts the recipe id under "recipe".
func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw struct {
		RecipeID *int64 `json:"recipeId"`
		Recipe   *int64 `json:"recipe"`
		Type     string `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Meal{Type: raw.Type}
	switch {
	case raw.RecipeID != nil:
		m.RecipeID = *raw.RecipeID
	case raw.Recipe != nil:
		m.RecipeID = *raw.Recipe
	}
	return nil
}

// Meals maps a YYYY-MM-DD date to the meals planned on it.
type Meals map[string][]Meal

// Plan is a stored meal plan.
type Plan struct {
	ID            int64
	UserID        int64
	WeekStartDate time.Time
	Meals         Meals
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func IsMealType(t string) bool {
	return slices.Contains(MealTypes, t)
}

// ParseDate parses s as YYYY-MM-DD or RFC 3339 and returns the UTC calendar
// date at midnight.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return truncateToDate(t), nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the UTC week containing t.
func WeekStart(t time.Time) time.Time {
	day := truncateToDate(t)
	offset := (int(day.Weekday()) + 6) % daysPerWeek
	return day.AddDate(0, 0, -offset)
}

// InWeek reports whether date lies in [weekStart, weekStart+6].
func InWeek(date, weekStart time.Time) bool {
	end := weekStart.AddDate(0, 0, daysPerWeek-1)
	return !date.Before(weekStart) && !date.After(end)
}

// RecipeIDs returns the distinct recipe ids referenced by m in ascending
// order.
func (m Meals) RecipeIDs() []int64 {
	seen := make(map[int64]struct{})
	ids := []int64{}
	for _, meals := range m {
		for _, meal := range meals {
			if _, ok := seen[meal.RecipeID]; ok {
				continue
			}
			seen[meal.RecipeID] = struct{}{}
			ids = append(ids, meal.RecipeID)
		}
	}
	slices.Sort(ids)
	return ids
}

// SetSlot returns a copy of m where the mealType slot of date holds
// recipeID. A recipeID of zero clears the slot.
func (m Meals) SetSlot(date, mealType string, recipeID int64) Meals {
	out := m.Clone()
	var kept []Meal
	for _, meal := range out[date] {
		if meal.Type != mealType {
			kept = append(kept, meal)
		}
	}
	if recipeID != 0 {
		kept = append(kept, Meal{RecipeID: recipeID, Type: mealType})
	}
	if len(kept) == 0 {
		delete(out, date)
	} else {
		out[date] = kept
	}
	return out
}

func (m Meals) Clone() Meals {
	out := make(Meals, len(m))
	for date, meals := range m {
		out[date] = slices.Clone(meals)
	}
	return out
}

// JSON encodes m for storage.
func (m Meals) JSON() ([]byte, error) {
	if m == nil {
		m = Meals{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding meals: %w", err)
	}
	return data, nil
}

func DateParam(t time.Time) pgtype.Date {
	return pgtype.Date{Time: truncateToDate(t), Valid: true}
}

// FromRow converts a stored meal plan.
func FromRow(row database.MealPlan) (Plan, error) {
	meals := Meals{}
	if len(row.Meals) > 0 {
		if err := json.Unmarshal(row.Meals, &meals); err != nil {
			return Plan{}, fmt.Errorf("decoding meals of meal plan %d: %w", row.ID, err)
		}
	}
	return Plan{
		ID:            row.ID,
		UserID:        row.UserID,
		WeekStartDate: truncateToDate(row.WeekStartDate.Time),
		Meals:         meals,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}, nil
}

// ResolvedMeal is a meal with its recipe loaded. Recipe is nil when the
// referenced recipe no longer exists.
type ResolvedMeal struct {
	RecipeID int64          `json:"recipeId"`
	Recipe   *recipe.Recipe `json:"recipe"`
	Type     string         `json:"type"`
} // @name ResolvedMeal

type Response struct {
	ID            int64                     `json:"id"`
	UserID        int64                     `json:"userId"`
	WeekStartDate string                    `json:"weekStartDate"`
	Meals         map[string][]ResolvedMeal `json:"meals"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
} // @name MealPlan

// Resolve joins p with the recipes it references.
func (p Plan) Resolve(recipes map[int64]recipe.Recipe) Response {
	meals := make(map[string][]ResolvedMeal, len(p.Meals))
	for date, dayMeals := range p.Meals {
		resolved := make([]ResolvedMeal, 0, len(dayMeals))
		for _, meal := range dayMeals {
			rm := ResolvedMeal{RecipeID: meal.RecipeID, Type: meal.Type}
			if r, ok := recipes[meal.RecipeID]; ok {
				rm.Recipe = &r
			}
			resolved = append(resolved, rm)
		}
		meals[date] = resolved
	}
	return Response{
		ID:            p.ID,
		UserID:        p.UserID,
		WeekStartDate: FormatDate(p.WeekStartDate),
		Meals:         meals,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ByID indexes recipes by id.
func ByID(recipes []recipe.Recipe) map[int64]recipe.Recipe {
	out := make(map[int64]recipe.Recipe, len(recipes))
	for _, r := range recipes {
		out[r.ID] = r
	}
	return out
}
