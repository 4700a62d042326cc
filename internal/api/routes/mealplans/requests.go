package mealplans

import (
	"errors"
	"strconv"
)

type mealPlanID string

func (m mealPlanID) Parse() (int64, error) {
	v, err := strconv.ParseInt(string(m), 10, 64)
	if err != nil {
		return 0, errors.New("expected an integer")
	}
	if v <= 0 {
		return 0, errors.New("meal plan id should be positive")
	}
	return v, nil
}
