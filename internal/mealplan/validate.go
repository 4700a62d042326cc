package mealplan

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/matt-dz/mealplan/internal/validation"
)

var dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks that weekStart is a Monday and that every meal date lies
// within its week and every meal is well formed.
func Validate(weekStart time.Time, meals Meals) validation.Errors {
	var errs validation.Errors
	if weekStart.Weekday() != time.Monday {
		errs.Add("weekStartDate", "week start date must be a Monday")
	}

	dates := make([]string, 0, len(meals))
	for date := range meals {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	for _, date := range dates {
		field := "meals." + date
		if !dateKeyRe.MatchString(date) {
			errs.Add(field, "date must be formatted as YYYY-MM-DD")
			continue
		}
		day, err := time.Parse(DateLayout, date)
		if err != nil {
			errs.Add(field, "date is not a valid calendar date")
			continue
		}
		if !InWeek(day, weekStart) {
			errs.Add(field, "date is outside the week range")
		}

		for i, meal := range meals[date] {
			if meal.RecipeID <= 0 {
				errs.Add(fmt.Sprintf("%s[%d].recipeId", field, i), "recipe reference is required")
			}
			if !IsMealType(meal.Type) {
				errs.Add(fmt.Sprintf("%s[%d].type", field, i),
					fmt.Sprintf("%q is not a valid meal type", meal.Type))
			}
		}
	}
	return errs
}

// CreateInput is the payload that creates a meal plan.
type CreateInput struct {
	WeekStartDate string `json:"weekStartDate"`
	Meals         Meals  `json:"meals"`
} // @name MealPlanInput

// Build parses and validates in.
func (in CreateInput) Build() (time.Time, Meals, validation.Errors) {
	if strings.TrimSpace(in.WeekStartDate) == "" {
		return time.Time{}, nil, validation.Errors{{Field: "weekStartDate", Message: "week start date is required"}}
	}
	weekStart, err := ParseDate(strings.TrimSpace(in.WeekStartDate))
	if err != nil {
		return time.Time{}, nil, validation.Errors{{Field: "weekStartDate", Message: "valid week start date is required"}}
	}
	meals := in.Meals
	if meals == nil {
		meals = Meals{}
	}
	if errs := Validate(weekStart, meals); len(errs) > 0 {
		return weekStart, meals, errs
	}
	return weekStart, meals, nil
}

// UpdateInput is a partial meal plan update. A nil field keeps the stored
// value.
type UpdateInput struct {
	WeekStartDate *string `json:"weekStartDate"`
	Meals         Meals   `json:"meals"`
} // @name MealPlanUpdate

// Merge applies in to p and validates the merged plan.
func (in UpdateInput) Merge(p Plan) (time.Time, Meals, validation.Errors) {
	weekStart := p.WeekStartDate
	if in.WeekStartDate != nil {
		parsed, err := ParseDate(strings.TrimSpace(*in.WeekStartDate))
		if err != nil {
			return time.Time{}, nil, validation.Errors{{Field: "weekStartDate", Message: "valid week start date is required"}}
		}
		weekStart = parsed
	}
	meals := p.Meals
	if in.Meals != nil {
		meals = in.Meals
	}
	if meals == nil {
		meals = Meals{}
	}
	if errs := Validate(weekStart, meals); len(errs) > 0 {
		return weekStart, meals, errs
	}
	return weekStart, meals, nil
}

// SlotInput sets or clears one meal of the current week.
type SlotInput struct {
	Date     string `json:"date"`
	MealType string `json:"mealType"`
	RecipeID *int64 `json:"recipeId"`
} // @name MealSlotInput

// Validate checks in against the week starting at weekStart.
func (in SlotInput) Validate(weekStart time.Time) validation.Errors {
	var errs validation.Errors
	if !dateKeyRe.MatchString(in.Date) {
		errs.Add("date", "date must be formatted as YYYY-MM-DD")
	} else if day, err := time.Parse(DateLayout, in.Date); err != nil {
		errs.Add("date", "date is not a valid calendar date")
	} else if !InWeek(day, weekStart) {
		errs.Add("date", "date is outside the current week")
	}
	if !IsMealType(in.MealType) {
		errs.Add("mealType", fmt.Sprintf("%q is not a valid meal type", in.MealType))
	}
	if in.RecipeID != nil && *in.RecipeID <= 0 {
		errs.Add("recipeId", "recipeId must be a positive id")
	}
	return errs
}
