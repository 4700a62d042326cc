// Package mealplans contains handlers for the meal plan endpoints.
package mealplans

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apiError "github.com/matt-dz/mealplan/internal/api/error"
	"github.com/matt-dz/mealplan/internal/api/requestid"
	"github.com/matt-dz/mealplan/internal/api/token"
	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/env"
	mJson "github.com/matt-dz/mealplan/internal/json"
	"github.com/matt-dz/mealplan/internal/mealplan"
	"github.com/matt-dz/mealplan/internal/recipe"
)

const (
	// IDParam is the URL parameter holding the meal plan id.
	IDParam = "id"

	mealPlanNotFoundMessage = "Meal plan not found"
	mealPlanConflictMessage = "A meal plan already exists for this week"
	invalidRecipesMessage   = "One or more recipes are invalid"
)

// now is the clock used to find the current week.
var now = time.Now

// HandleListMealPlans godoc
//
//	@Summary		List meal plans
//	@Description	Lists the caller's meal plans, latest week first, with recipes resolved.
//	@Tags			Meal Plans
//	@Produce		json
//	@Success		200	{array}		mealplan.Response
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/meal-plans [get]
func HandleListMealPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "listing meal plans")
	rows, err := env.Database.ListMealPlans(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list meal plans", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	plans := make([]mealplan.Plan, 0, len(rows))
	var ids []int64
	for _, row := range rows {
		plan, err := mealplan.FromRow(row)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to convert meal plan", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		plans = append(plans, plan)
		ids = append(ids, plan.Meals.RecipeIDs()...)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	recipes, err := loadRecipes(ctx, env, userID, ids)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to load recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	resp := make([]mealplan.Response, 0, len(plans))
	for _, plan := range plans {
		resp = append(resp, plan.Resolve(recipes))
	}
	if err := mJson.WriteJSON(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleCreateMealPlan godoc
//
//	@Summary		Create a meal plan
//	@Description	Creates the caller's plan for a week. The week must start on a Monday,
//	@Description	every date must fall inside it and every recipe must belong to the caller.
//	@Tags			Meal Plans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mealplan.CreateInput	true	"Meal plan"
//	@Success		201		{object}	mealplan.Response
//	@Failure		400		{object}	apiError.Error	"Validation failed, invalid recipes or week already planned"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/meal-plans [post]
func HandleCreateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "decoding request")
	var in mealplan.CreateInput
	if err := mJson.DecodeRequest(w, r, &in); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}
	weekStart, meals, errs := in.Build()
	if len(errs) > 0 {
		env.Logger.DebugContext(ctx, "invalid meal plan", slog.Any("errors", errs))
		_ = apiError.EncodeValidationError(w, errs, requestID)
		return
	}

	recipes, ok := checkRecipes(w, r, userID, meals)
	if !ok {
		return
	}
	data, err := meals.JSON()
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to encode meals", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "creating meal plan")
	row, err := env.Database.CreateMealPlan(ctx, database.CreateMealPlanParams{
		UserID:        userID,
		WeekStartDate: mealplan.DateParam(weekStart),
		Meals:         data,
	})
	if database.IsUniqueViolation(err) {
		env.Logger.DebugContext(ctx, "week already planned")
		_ = apiError.EncodeError(w, apiError.MealPlanConflict, mealPlanConflictMessage, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create meal plan", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writePlan(w, r, http.StatusCreated, row, recipes)
}

// HandleGetMealPlan godoc
//
//	@Summary	Get a meal plan
//	@Tags		Meal Plans
//	@Produce	json
//	@Param		id	path		int	true	"Meal plan ID"
//	@Success	200	{object}	mealplan.Response
//	@Failure	400	{object}	apiError.Error	"Invalid meal plan id"
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Failure	404	{object}	apiError.Error	"Meal plan not found"
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Security	BearerAuth
//	@Router		/api/meal-plans/{id} [get]
func HandleGetMealPlan(w http.ResponseWriter, r *http.Request) {
	row, ok := loadPlan(w, r)
	if !ok {
		return
	}
	writePlan(w, r, http.StatusOK, row, nil)
}

// HandleUpdateMealPlan godoc
//
//	@Summary		Update a meal plan
//	@Description	Replaces the week start date and/or the meals of a plan. The merged
//	@Description	plan is validated again; recipes are checked when meals are given.
//	@Tags			Meal Plans
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Meal plan ID"
//	@Param			request	body		mealplan.UpdateInput	true	"Fields to change"
//	@Success		200		{object}	mealplan.Response
//	@Failure		400		{object}	apiError.Error	"Validation failed, invalid recipes or week already planned"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		404		{object}	apiError.Error	"Meal plan not found"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/meal-plans/{id} [put]
func HandleUpdateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "decoding request")
	var in mealplan.UpdateInput
	if err := mJson.DecodeRequest(w, r, &in); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}

	row, ok := loadPlan(w, r)
	if !ok {
		return
	}
	plan, err := mealplan.FromRow(row)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to convert meal plan", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	weekStart, meals, errs := in.Merge(plan)
	if len(errs) > 0 {
		env.Logger.DebugContext(ctx, "invalid meal plan", slog.Any("errors", errs))
		_ = apiError.EncodeValidationError(w, errs, requestID)
		return
	}

	var recipes map[int64]recipe.Recipe
	if in.Meals != nil {
		if recipes, ok = checkRecipes(w, r, row.UserID, meals); !ok {
			return
		}
	}
	data, err := meals.JSON()
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to encode meals", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "updating meal plan")
	updated, err := env.Database.UpdateMealPlan(ctx, database.UpdateMealPlanParams{
		ID:            row.ID,
		UserID:        row.UserID,
		WeekStartDate: mealplan.DateParam(weekStart),
		Meals:         data,
	})
	if database.IsUniqueViolation(err) {
		env.Logger.DebugContext(ctx, "week already planned")
		_ = apiError.EncodeError(w, apiError.MealPlanConflict, mealPlanConflictMessage, requestID)
		return
	} else if database.IsNotFound(err) {
		env.Logger.DebugContext(ctx, "meal plan deleted during update")
		_ = apiError.EncodeError(w, apiError.MealPlanNotFound, mealPlanNotFoundMessage, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update meal plan", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writePlan(w, r, http.StatusOK, updated, recipes)
}

// HandleDeleteMealPlan godoc
//
//	@Summary	Delete a meal plan
//	@Tags		Meal Plans
//	@Produce	json
//	@Param		id	path		int	true	"Meal plan ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	400	{object}	apiError.Error	"Invalid meal plan id"
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Failure	404	{object}	apiError.Error	"Meal plan not found"
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Security	BearerAuth
//	@Router		/api/meal-plans/{id} [delete]
func HandleDeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	id, err := mealPlanID(chi.URLParam(r, IDParam)).Parse()
	if err != nil {
		env.Logger.DebugContext(ctx, "invalid meal plan id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid meal plan id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "deleting meal plan", slog.Int64("meal-plan-id", id))
	deleted, err := env.Database.DeleteMealPlan(ctx, database.DeleteMealPlanParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete meal plan", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if deleted == 0 {
		env.Logger.DebugContext(ctx, "meal plan not found")
		_ = apiError.EncodeError(w, apiError.MealPlanNotFound, mealPlanNotFoundMessage, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Meal plan deleted successfully"}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGroceryList godoc
//
//	@Summary		Grocery list of a meal plan
//	@Description	Sums the ingredients of every planned meal by name and unit, sorted by name.
//	@Tags			Meal Plans
//	@Produce		json
//	@Param			id	path		int	true	"Meal plan ID"
//	@Success		200	{array}		mealplan.GroceryItem
//	@Failure		400	{object}	apiError.Error	"Invalid meal plan id"
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Failure		404	{object}	apiError.Error	"Meal plan not found"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/meal-plans/{id}/grocery-list [get]
func HandleGroceryList(w http.ResponseWriter, r *http.Request) {
	row, ok := loadPlan(w, r)
	if !ok {
		return
	}
	writeGroceryList(w, r, &row)
}

// HandleCurrentMealPlan godoc
//
//	@Summary		Current week's meal plan
//	@Description	Returns the caller's plan for the week containing today (UTC), or null.
//	@Tags			Meal Plans
//	@Produce		json
//	@Success		200	{object}	mealplan.Response
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/meal-plans/current [get]
func HandleCurrentMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	row, found, ok := loadCurrentPlan(w, r)
	if !ok {
		return
	}
	if !found {
		if err := mJson.WriteJSON(w, http.StatusOK, nil); err != nil {
			env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		}
		return
	}
	writePlan(w, r, http.StatusOK, row, nil)
}

// HandleSetCurrentMeal godoc
//
//	@Summary		Set or clear a meal of the current week
//	@Description	Puts recipeId in the mealType slot of date, or empties the slot when
//	@Description	recipeId is absent. The current week's plan is created when needed.
//	@Tags			Meal Plans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mealplan.SlotInput	true	"Slot"
//	@Success		200		{object}	mealplan.Response
//	@Failure		400		{object}	apiError.Error	"Validation failed or invalid recipe"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/meal-plans/current/meals [put]
func HandleSetCurrentMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "decoding request")
	var in mealplan.SlotInput
	if err := mJson.DecodeRequest(w, r, &in); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}
	weekStart := mealplan.WeekStart(now())
	if errs := in.Validate(weekStart); len(errs) > 0 {
		env.Logger.DebugContext(ctx, "invalid meal slot", slog.Any("errors", errs))
		_ = apiError.EncodeValidationError(w, errs, requestID)
		return
	}

	var recipeID int64
	if in.RecipeID != nil {
		recipeID = *in.RecipeID
		if _, ok := checkRecipes(w, r, userID, mealplan.Meals{in.Date: {{RecipeID: recipeID, Type: in.MealType}}}); !ok {
			return
		}
	}

	row, found, ok := loadCurrentPlan(w, r)
	if !ok {
		return
	}
	plan := mealplan.Plan{Meals: mealplan.Meals{}}
	if found {
		if plan, err = mealplan.FromRow(row); err != nil {
			env.Logger.ErrorContext(ctx, "failed to convert meal plan", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
	}
	data, err := plan.Meals.SetSlot(in.Date, in.MealType, recipeID).JSON()
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to encode meals", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if found {
		env.Logger.DebugContext(ctx, "updating current meal plan")
		row, err = env.Database.UpdateMealPlan(ctx, database.UpdateMealPlanParams{
			ID:            row.ID,
			UserID:        userID,
			WeekStartDate: row.WeekStartDate,
			Meals:         data,
		})
	} else {
		env.Logger.DebugContext(ctx, "creating current meal plan")
		row, err = env.Database.CreateMealPlan(ctx, database.CreateMealPlanParams{
			UserID:        userID,
			WeekStartDate: mealplan.DateParam(weekStart),
			Meals:         data,
		})
	}
	if database.IsUniqueViolation(err) {
		env.Logger.DebugContext(ctx, "current week planned concurrently")
		_ = apiError.EncodeError(w, apiError.MealPlanConflict, mealPlanConflictMessage, requestID)
		return
	} else if database.IsNotFound(err) {
		env.Logger.DebugContext(ctx, "meal plan deleted during update")
		_ = apiError.EncodeError(w, apiError.MealPlanNotFound, mealPlanNotFoundMessage, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to save current meal plan", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writePlan(w, r, http.StatusOK, row, nil)
}

// HandleCurrentGroceryList godoc
//
//	@Summary		Grocery list of the current week
//	@Description	Like the grocery list of a plan, for the current week. Empty when the
//	@Description	week has no plan.
//	@Tags			Meal Plans
//	@Produce		json
//	@Success		200	{array}		mealplan.GroceryItem
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/meal-plans/current/grocery-list [get]
func HandleCurrentGroceryList(w http.ResponseWriter, r *http.Request) {
	row, found, ok := loadCurrentPlan(w, r)
	if !ok {
		return
	}
	if !found {
		writeGroceryList(w, r, nil)
		return
	}
	writeGroceryList(w, r, &row)
}

// loadPlan fetches the meal plan named by the id URL parameter for the
// caller. On failure the error response is written and ok is false.
func loadPlan(w http.ResponseWriter, r *http.Request) (row database.MealPlan, ok bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return row, false
	}

	id, err := mealPlanID(chi.URLParam(r, IDParam)).Parse()
	if err != nil {
		env.Logger.DebugContext(ctx, "invalid meal plan id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid meal plan id", requestID)
		return row, false
	}

	env.Logger.DebugContext(ctx, "getting meal plan", slog.Int64("meal-plan-id", id))
	row, err = env.Database.GetMealPlan(ctx, database.GetMealPlanParams{
		ID:     id,
		UserID: userID,
	})
	if database.IsNotFound(err) {
		env.Logger.DebugContext(ctx, "meal plan not found")
		_ = apiError.EncodeError(w, apiError.MealPlanNotFound, mealPlanNotFoundMessage, requestID)
		return row, false
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get meal plan", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return row, false
	}
	return row, true
}

// loadCurrentPlan fetches the caller's plan for the current week. found is
// false when the week has no plan.
func loadCurrentPlan(w http.ResponseWriter, r *http.Request) (row database.MealPlan, found, ok bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return row, false, false
	}

	weekStart := mealplan.WeekStart(now())
	env.Logger.DebugContext(ctx, "getting current meal plan", slog.String("week", mealplan.FormatDate(weekStart)))
	row, err = env.Database.GetMealPlanByWeek(ctx, database.GetMealPlanByWeekParams{
		UserID:        userID,
		WeekStartDate: mealplan.DateParam(weekStart),
	})
	if database.IsNotFound(err) {
		return row, false, true
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get current meal plan", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return row, false, false
	}
	return row, true, true
}

// checkRecipes batch loads the recipes meals refer to and rejects the
// request unless every one of them belongs to userID.
func checkRecipes(
	w http.ResponseWriter, r *http.Request, userID int64, meals mealplan.Meals,
) (map[int64]recipe.Recipe, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	ids := meals.RecipeIDs()
	env.Logger.DebugContext(ctx, "checking referenced recipes", slog.Int("count", len(ids)))
	recipes, err := loadRecipes(ctx, env, userID, ids)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to load recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return nil, false
	}
	if len(recipes) != len(ids) {
		env.Logger.DebugContext(ctx, "meal plan references unknown recipes")
		_ = apiError.EncodeError(w, apiError.InvalidRecipes, invalidRecipesMessage, requestID)
		return nil, false
	}
	return recipes, true
}

func loadRecipes(ctx context.Context, env *env.Env, userID int64, ids []int64) (map[int64]recipe.Recipe, error) {
	if len(ids) == 0 {
		return map[int64]recipe.Recipe{}, nil
	}
	rows, err := env.Database.GetRecipesByIDs(ctx, database.GetRecipesByIDsParams{
		UserID: userID,
		Ids:    ids,
	})
	if err != nil {
		return nil, err
	}
	recipes, err := recipe.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return mealplan.ByID(recipes), nil
}

// writePlan resolves the recipes of row and writes it. recipes may be nil,
// in which case they are loaded.
func writePlan(
	w http.ResponseWriter, r *http.Request, status int, row database.MealPlan, recipes map[int64]recipe.Recipe,
) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	plan, err := mealplan.FromRow(row)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to convert meal plan", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if recipes == nil {
		if recipes, err = loadRecipes(ctx, env, plan.UserID, plan.Meals.RecipeIDs()); err != nil {
			env.Logger.ErrorContext(ctx, "failed to load recipes", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
	}

	if err := mJson.WriteJSON(w, status, plan.Resolve(recipes)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// writeGroceryList aggregates the meals of row. A nil row yields an empty
// list.
func writeGroceryList(w http.ResponseWriter, r *http.Request, row *database.MealPlan) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	items := []mealplan.GroceryItem{}
	if row != nil {
		plan, err := mealplan.FromRow(*row)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to convert meal plan", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		recipes, err := loadRecipes(ctx, env, plan.UserID, plan.Meals.RecipeIDs())
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to load recipes", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		env.Logger.DebugContext(ctx, "building grocery list")
		items = mealplan.GroceryList(plan.Meals, recipes)
	}

	if err := mJson.WriteJSON(w, http.StatusOK, items); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
