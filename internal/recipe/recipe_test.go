package recipe

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/validation"
)

func ptr[T any](v T) *T { return &v }

func validFields() Fields {
	return Fields{
		Name:        "Pancakes",
		Description: "Fluffy pancakes",
		Ingredients: []Ingredient{
			{Name: "Flour", Quantity: 2, Unit: "cup"},
			{Name: "Egg", Quantity: 1, Unit: "piece"},
		},
		Instructions: []string{"Mix", "Cook"},
		PrepTime:     10,
		CookTime:     15,
		Servings:     4,
		Category:     CategoryBreakfast,
	}
}

func fieldsOf(errs validation.Errors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestTotalTime(t *testing.T) {
	f := validFields()
	assert.Equal(t, 25, f.TotalTime())

	f.PrepTime, f.CookTime = 0, 0
	assert.Equal(t, 0, f.TotalTime())
}

func TestScale(t *testing.T) {
	tests := []struct {
		name     string
		servings int
		recipe   int
		in       []Ingredient
		want     []Ingredient
	}{
		{
			name:     "double",
			servings: 8,
			recipe:   4,
			in:       []Ingredient{{Name: "Flour", Quantity: 2, Unit: "cup"}},
			want:     []Ingredient{{Name: "Flour", Quantity: 4, Unit: "cup"}},
		},
		{
			name:     "rounded to two decimals",
			servings: 1,
			recipe:   3,
			in:       []Ingredient{{Name: "Sugar", Quantity: 1, Unit: "cup"}},
			want:     []Ingredient{{Name: "Sugar", Quantity: 0.33, Unit: "cup"}},
		},
		{
			name:     "same servings",
			servings: 4,
			recipe:   4,
			in:       []Ingredient{{Name: "Salt", Quantity: 0.5, Unit: "tsp"}},
			want:     []Ingredient{{Name: "Salt", Quantity: 0.5, Unit: "tsp"}},
		},
		{
			name:     "zero quantity",
			servings: 10,
			recipe:   2,
			in:       []Ingredient{{Name: "Pepper", Quantity: 0, Unit: "pinch"}},
			want:     []Ingredient{{Name: "Pepper", Quantity: 0, Unit: "pinch"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Fields{Servings: tt.recipe, Ingredients: tt.in}
			original := append([]Ingredient(nil), tt.in...)

			got := f.Scale(tt.servings)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, original, f.Ingredients, "stored ingredients must not change")
		})
	}
}

func TestNormalize(t *testing.T) {
	f := Fields{
		Name:         "  Soup  ",
		Description:  " Warm ",
		Ingredients:  []Ingredient{{Name: " Carrot ", Quantity: 2, Unit: " PCS "}},
		Instructions: []string{"  Chop  "},
		Category:     " DINNER ",
		ImageURL:     ptr("   "),
	}

	got := f.Normalize()
	assert.Equal(t, "Soup", got.Name)
	assert.Equal(t, "Warm", got.Description)
	assert.Equal(t, []Ingredient{{Name: "Carrot", Quantity: 2, Unit: "pcs"}}, got.Ingredients)
	assert.Equal(t, []string{"Chop"}, got.Instructions)
	assert.Equal(t, CategoryDinner, got.Category)
	assert.Nil(t, got.ImageURL)

	// input untouched
	assert.Equal(t, " PCS ", f.Ingredients[0].Unit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Fields)
		wantFields []string
	}{
		{
			name:   "valid",
			mutate: func(f *Fields) {},
		},
		{
			name:   "valid with image",
			mutate: func(f *Fields) { f.ImageURL = ptr("https://example.com/pancakes.jpg") },
		},
		{
			name:       "missing name",
			mutate:     func(f *Fields) { f.Name = "" },
			wantFields: []string{"name"},
		},
		{
			name: "name too long",
			mutate: func(f *Fields) {
				b := make([]byte, MaxNameLength+1)
				for i := range b {
					b[i] = 'a'
				}
				f.Name = string(b)
			},
			wantFields: []string{"name"},
		},
		{
			name:       "no ingredients",
			mutate:     func(f *Fields) { f.Ingredients = []Ingredient{} },
			wantFields: []string{"ingredients"},
		},
		{
			name:       "negative quantity",
			mutate:     func(f *Fields) { f.Ingredients[1].Quantity = -1 },
			wantFields: []string{"ingredients[1].quantity"},
		},
		{
			name:       "missing unit",
			mutate:     func(f *Fields) { f.Ingredients[0].Unit = "" },
			wantFields: []string{"ingredients[0].unit"},
		},
		{
			name:       "no instructions",
			mutate:     func(f *Fields) { f.Instructions = nil },
			wantFields: []string{"instructions"},
		},
		{
			name:       "blank instruction",
			mutate:     func(f *Fields) { f.Instructions = []string{"Mix", "  "} },
			wantFields: []string{"instructions[1]"},
		},
		{
			name:       "prep time too long",
			mutate:     func(f *Fields) { f.PrepTime = MaxMinutes + 1 },
			wantFields: []string{"prepTime"},
		},
		{
			name:       "negative cook time",
			mutate:     func(f *Fields) { f.CookTime = -5 },
			wantFields: []string{"cookTime"},
		},
		{
			name:       "servings out of range",
			mutate:     func(f *Fields) { f.Servings = 101 },
			wantFields: []string{"servings"},
		},
		{
			name:       "unknown category",
			mutate:     func(f *Fields) { f.Category = "brunch" },
			wantFields: []string{"category"},
		},
		{
			name:       "bad image url",
			mutate:     func(f *Fields) { f.ImageURL = ptr("ftp://example.com/x.jpg") },
			wantFields: []string{"imageUrl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)

			errs := f.Validate()
			if tt.wantFields == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(errs))
		})
	}
}

func TestPatchBuild(t *testing.T) {
	p := Patch{
		Name:         ptr(" Omelette "),
		Description:  ptr("Eggs"),
		Ingredients:  []IngredientInput{{Name: "Egg", Quantity: ptr(3.0), Unit: "Piece"}},
		Instructions: []string{"Whisk", "Fry"},
		PrepTime:     ptr(5),
		CookTime:     ptr(0),
		Servings:     ptr(1),
		Category:     ptr("Breakfast"),
	}

	f, errs := p.Build()
	require.Nil(t, errs)
	assert.Equal(t, "Omelette", f.Name)
	assert.Equal(t, "piece", f.Ingredients[0].Unit)
	assert.Equal(t, CategoryBreakfast, f.Category)
	assert.Equal(t, 5, f.TotalTime())
}

func TestPatchBuild_MissingTimes(t *testing.T) {
	p := Patch{
		Name:         ptr("Toast"),
		Description:  ptr("Bread"),
		Ingredients:  []IngredientInput{{Name: "Bread", Quantity: ptr(1.0), Unit: "slice"}},
		Instructions: []string{"Toast"},
		Servings:     ptr(1),
		Category:     ptr("snack"),
	}

	_, errs := p.Build()
	assert.Equal(t, []string{"prepTime", "cookTime"}, fieldsOf(errs))
}

func TestPatchBuild_MissingQuantity(t *testing.T) {
	p := Patch{
		Name:        ptr("Toast"),
		Description: ptr("Bread"),
		Ingredients: []IngredientInput{
			{Name: "Bread", Quantity: ptr(1.0), Unit: "slice"},
			{Name: "Butter", Unit: "tbsp"},
		},
		Instructions: []string{"Toast"},
		PrepTime:     ptr(1),
		CookTime:     ptr(2),
		Servings:     ptr(1),
		Category:     ptr("snack"),
	}

	_, errs := p.Build()
	assert.Equal(t, []string{"ingredients[1].quantity"}, fieldsOf(errs))

	p.Ingredients[1].Quantity = ptr(0.0)
	_, errs = p.Build()
	assert.Empty(t, errs)
}

func TestPatchMerge(t *testing.T) {
	current := validFields()

	merged, errs := Patch{Servings: ptr(2), Name: ptr("Crepes")}.Merge(current)
	require.Nil(t, errs)
	assert.Equal(t, "Crepes", merged.Name)
	assert.Equal(t, 2, merged.Servings)
	assert.Equal(t, current.Ingredients, merged.Ingredients)

	_, errs = Patch{Servings: ptr(0)}.Merge(current)
	assert.Equal(t, []string{"servings"}, fieldsOf(errs))

	_, errs = Patch{Ingredients: []IngredientInput{{Name: "Salt", Unit: "pinch"}}}.Merge(current)
	assert.Equal(t, []string{"ingredients[0].quantity"}, fieldsOf(errs))
}

func TestFromRow(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	row := database.Recipe{
		ID:           7,
		UserID:       3,
		Name:         "Salad",
		Description:  "Green",
		Ingredients:  []byte(`[{"name":"Lettuce","quantity":1,"unit":"head"}]`),
		Instructions: []string{"Wash", "Chop"},
		PrepTime:     5,
		CookTime:     0,
		Servings:     2,
		Category:     CategoryLunch,
		ImageUrl:     pgtype.Text{String: "https://example.com/salad.png", Valid: true},
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}

	r, err := FromRow(row)
	require.NoError(t, err)
	assert.Equal(t, int64(7), r.ID)
	assert.Equal(t, int64(3), r.UserID)
	assert.Equal(t, []Ingredient{{Name: "Lettuce", Quantity: 1, Unit: "head"}}, r.Ingredients)
	assert.Equal(t, 5, r.TotalTime)
	require.NotNil(t, r.ImageURL)
	assert.Equal(t, "https://example.com/salad.png", *r.ImageURL)
	assert.Equal(t, now, r.CreatedAt)
}

func TestFromRow_BadIngredients(t *testing.T) {
	_, err := FromRow(database.Recipe{ID: 1, Ingredients: []byte(`{`)})
	assert.Error(t, err)
}

func TestIngredientsJSON(t *testing.T) {
	data, err := Fields{}.IngredientsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	data, err = validFields().IngredientsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Flour","quantity":2,"unit":"cup"},{"name":"Egg","quantity":1,"unit":"piece"}]`, string(data))
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("dessert"))
	assert.False(t, IsCategory("Dessert"))
	assert.False(t, IsCategory(""))
}
