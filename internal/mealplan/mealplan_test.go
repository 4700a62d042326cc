package mealplan

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/recipe"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-15", want: "2024-01-15"},
		{in: "2024-01-15T00:00:00Z", want: "2024-01-15"},
		{in: "2024-01-15T23:30:00-05:00", want: "2024-01-16"},
		{in: "2024-02-30", wantErr: true},
		{in: "15/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{in: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), want: "2024-01-15"},  // Monday
		{in: time.Date(2024, 1, 17, 23, 0, 0, 0, time.UTC), want: "2024-01-15"}, // Wednesday
		{in: time.Date(2024, 1, 21, 12, 0, 0, 0, time.UTC), want: "2024-01-15"}, // Sunday
		{in: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: "2024-01-01"},   // Monday, new year
		{in: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), want: "2023-12-25"}, // Sunday across year
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got := WeekStart(tt.in)
			assert.Equal(t, tt.want, FormatDate(got))
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestInWeek(t *testing.T) {
	start := date("2024-01-15")
	assert.True(t, InWeek(date("2024-01-15"), start))
	assert.True(t, InWeek(date("2024-01-21"), start))
	assert.False(t, InWeek(date("2024-01-22"), start))
	assert.False(t, InWeek(date("2024-01-14"), start))
}

func TestMealUnmarshal(t *testing.T) {
	var meals []Meal
	err := json.Unmarshal([]byte(`[{"recipeId":3,"type":"lunch"},{"recipe":4,"type":"dinner"}]`), &meals)
	require.NoError(t, err)
	assert.Equal(t, []Meal{{RecipeID: 3, Type: "lunch"}, {RecipeID: 4, Type: "dinner"}}, meals)
}

func TestRecipeIDs(t *testing.T) {
	meals := Meals{
		"2024-01-15": {{RecipeID: 5, Type: MealDinner}, {RecipeID: 2, Type: MealLunch}},
		"2024-01-16": {{RecipeID: 5, Type: MealDinner}},
	}
	assert.Equal(t, []int64{2, 5}, meals.RecipeIDs())
	assert.Equal(t, []int64{}, Meals{}.RecipeIDs())
}

func TestSetSlot(t *testing.T) {
	meals := Meals{
		"2024-01-15": {{RecipeID: 1, Type: MealBreakfast}, {RecipeID: 2, Type: MealDinner}},
	}

	replaced := meals.SetSlot("2024-01-15", MealDinner, 9)
	assert.Equal(t, []Meal{{RecipeID: 1, Type: MealBreakfast}, {RecipeID: 9, Type: MealDinner}}, replaced["2024-01-15"])

	added := meals.SetSlot("2024-01-16", MealLunch, 3)
	assert.Equal(t, []Meal{{RecipeID: 3, Type: MealLunch}}, added["2024-01-16"])

	cleared := meals.SetSlot("2024-01-15", MealBreakfast, 0)
	assert.Equal(t, []Meal{{RecipeID: 2, Type: MealDinner}}, cleared["2024-01-15"])

	emptied := cleared.SetSlot("2024-01-15", MealDinner, 0)
	assert.NotContains(t, emptied, "2024-01-15")

	// original untouched
	assert.Len(t, meals["2024-01-15"], 2)
	assert.Equal(t, int64(2), meals["2024-01-15"][1].RecipeID)
}

func TestFromRowAndResolve(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	row := database.MealPlan{
		ID:            11,
		UserID:        3,
		WeekStartDate: pgtype.Date{Time: date("2024-01-15"), Valid: true},
		Meals:         []byte(`{"2024-01-15":[{"recipeId":1,"type":"dinner"},{"recipeId":2,"type":"lunch"}]}`),
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}

	plan, err := FromRow(row)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", FormatDate(plan.WeekStartDate))
	require.Len(t, plan.Meals["2024-01-15"], 2)

	recipes := ByID([]recipe.Recipe{{ID: 1, Fields: recipe.Fields{Name: "Soup"}}})
	resp := plan.Resolve(recipes)
	assert.Equal(t, "2024-01-15", resp.WeekStartDate)
	meals := resp.Meals["2024-01-15"]
	require.Len(t, meals, 2)
	require.NotNil(t, meals[0].Recipe)
	assert.Equal(t, "Soup", meals[0].Recipe.Name)
	assert.Nil(t, meals[1].Recipe, "dangling reference resolves to null")
	assert.Equal(t, int64(2), meals[1].RecipeID)
}

func TestMealsJSON(t *testing.T) {
	data, err := Meals(nil).JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}
