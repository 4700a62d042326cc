package recipe

import (
	"fmt"

	"github.com/matt-dz/mealplan/internal/validation"
)

// IngredientInput is an ingredient as submitted. Quantity is a pointer so an
// omitted quantity is told apart from zero.
type IngredientInput struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
} // @name IngredientInput

// Patch is a recipe payload where every field is optional. Absent fields
// keep their current value.
type Patch struct {
	Name         *string      `json:"name"`
	Description  *string      `json:"description"`
	Ingredients  []IngredientInput `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	PrepTime     *int         `json:"prepTime"`
	CookTime     *int         `json:"cookTime"`
	Servings     *int         `json:"servings"`
	Category     *string      `json:"category"`
	ImageURL     *string      `json:"imageUrl"`
} // @name RecipeInput

// Apply merges p into f.
func (p Patch) Apply(f Fields) Fields {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Ingredients != nil {
		f.Ingredients = make([]Ingredient, len(p.Ingredients))
		for i, in := range p.Ingredients {
			f.Ingredients[i] = Ingredient{Name: in.Name, Unit: in.Unit}
			if in.Quantity != nil {
				f.Ingredients[i].Quantity = *in.Quantity
			}
		}
	}
	if p.Instructions != nil {
		f.Instructions = p.Instructions
	}
	if p.PrepTime != nil {
		f.PrepTime = *p.PrepTime
	}
	if p.CookTime != nil {
		f.CookTime = *p.CookTime
	}
	if p.Servings != nil {
		f.Servings = *p.Servings
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.ImageURL != nil {
		u := *p.ImageURL
		f.ImageURL = &u
	}
	return f
}

// Missing lists the required fields p omits whose zero value is valid, so
// Validate cannot catch their absence. Times are only required on create.
func (p Patch) Missing(create bool) validation.Errors {
	var errs validation.Errors
	if create && p.PrepTime == nil {
		errs.Add("prepTime", "prepTime is required")
	}
	if create && p.CookTime == nil {
		errs.Add("cookTime", "cookTime is required")
	}
	for i, in := range p.Ingredients {
		if in.Quantity == nil {
			errs.Add(fmt.Sprintf("ingredients[%d].quantity", i), "quantity is required")
		}
	}
	return errs
}

// Build turns a create payload into validated fields.
func (p Patch) Build() (Fields, validation.Errors) {
	f := p.Apply(Fields{}).Normalize()
	errs := append(p.Missing(true), f.Validate()...)
	if len(errs) > 0 {
		return f, errs
	}
	return f, nil
}

// Merge applies p to current and re-validates the result.
func (p Patch) Merge(current Fields) (Fields, validation.Errors) {
	f := p.Apply(current).Normalize()
	if errs := append(p.Missing(false), f.Validate()...); len(errs) > 0 {
		return f, errs
	}
	return f, nil
}
