// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"

	apiError "github.com/matt-dz/mealplan/internal/api/error"
	"github.com/matt-dz/mealplan/internal/api/requestid"
	"github.com/matt-dz/mealplan/internal/api/token"
	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/env"
	"github.com/matt-dz/mealplan/internal/form"
	"github.com/matt-dz/mealplan/internal/imagestore"
	mJson "github.com/matt-dz/mealplan/internal/json"
	"github.com/matt-dz/mealplan/internal/recipe"
	"github.com/matt-dz/mealplan/internal/validation"
)

const (
	// IDParam is the URL parameter holding the recipe id.
	IDParam = "id"

	recipeNotFoundMessage = "Recipe not found"
	maxUploadSize         = form.MaxImageBytes + 1<<20
)

// HandleListRecipes godoc
//
//	@Summary		List recipes
//	@Description	Lists the caller's recipes, newest first, optionally filtered by category.
//	@Tags			Recipes
//	@Produce		json
//	@Param			category	query		string	false	"breakfast, lunch, dinner, snack or dessert"
//	@Success		200			{array}		recipe.Recipe
//	@Failure		400			{object}	apiError.Error	"Invalid category"
//	@Failure		401			{object}	apiError.Error	"Unauthorized"
//	@Failure		500			{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/recipes [get]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "reading request")
	cat, err := category(r.URL.Query().Get("category")).Parse()
	if err != nil {
		env.Logger.DebugContext(ctx, "invalid category", slog.Any("error", err))
		_ = apiError.EncodeValidationError(w, validation.Errors{{Field: "category", Message: err.Error()}}, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "listing recipes")
	rows, err := env.Database.ListRecipes(ctx, database.ListRecipesParams{
		UserID: userID,
		Category: pgtype.Text{
			String: cat,
			Valid:  cat != "",
		},
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	recipes, err := recipe.FromRows(rows)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to convert recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, recipes); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleCreateRecipe godoc
//
//	@Summary	Create a recipe
//	@Tags		Recipes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		recipe.Patch	true	"Recipe"
//	@Success	201		{object}	recipe.Recipe
//	@Failure	400		{object}	apiError.Error	"Validation failed"
//	@Failure	401		{object}	apiError.Error	"Unauthorized"
//	@Failure	500		{object}	apiError.Error	"Internal server error"
//	@Security	BearerAuth
//	@Router		/api/recipes [post]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
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
	var patch recipe.Patch
	if err := mJson.DecodeRequest(w, r, &patch); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}
	fields, errs := patch.Build()
	if len(errs) > 0 {
		env.Logger.DebugContext(ctx, "invalid recipe", slog.Any("errors", errs))
		_ = apiError.EncodeValidationError(w, errs, requestID)
		return
	}
	ingredients, err := fields.IngredientsJSON()
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to encode ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "creating recipe")
	row, err := env.Database.CreateRecipe(ctx, database.CreateRecipeParams{
		UserID:       userID,
		Name:         fields.Name,
		Description:  fields.Description,
		Ingredients:  ingredients,
		Instructions: fields.Instructions,
		PrepTime:     int32(fields.PrepTime),
		CookTime:     int32(fields.CookTime),
		Servings:     int32(fields.Servings),
		Category:     fields.Category,
		ImageUrl:     imageURLParam(fields.ImageURL),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writeRecipe(w, r, http.StatusCreated, row)
}

// HandleGetRecipe godoc
//
//	@Summary	Get a recipe
//	@Tags		Recipes
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	200	{object}	recipe.Recipe
//	@Failure	400	{object}	apiError.Error	"Invalid recipe id"
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Security	BearerAuth
//	@Router		/api/recipes/{id} [get]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	row, ok := loadRecipe(w, r)
	if !ok {
		return
	}
	writeRecipe(w, r, http.StatusOK, row)
}

// HandleUpdateRecipe godoc
//
//	@Summary		Update a recipe
//	@Description	Merges the given fields into the stored recipe and validates the result.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Recipe ID"
//	@Param			request	body		recipe.Patch	true	"Fields to change"
//	@Success		200		{object}	recipe.Recipe
//	@Failure		400		{object}	apiError.Error	"Validation failed"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		404		{object}	apiError.Error	"Recipe not found"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/recipes/{id} [put]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "decoding request")
	var patch recipe.Patch
	if err := mJson.DecodeRequest(w, r, &patch); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}

	row, ok := loadRecipe(w, r)
	if !ok {
		return
	}
	current, err := recipe.FromRow(row)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to convert recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	fields, errs := patch.Merge(current.Fields)
	if len(errs) > 0 {
		env.Logger.DebugContext(ctx, "invalid recipe", slog.Any("errors", errs))
		_ = apiError.EncodeValidationError(w, errs, requestID)
		return
	}
	ingredients, err := fields.IngredientsJSON()
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to encode ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "updating recipe")
	updated, err := env.Database.UpdateRecipe(ctx, database.UpdateRecipeParams{
		ID:           row.ID,
		UserID:       row.UserID,
		Name:         fields.Name,
		Description:  fields.Description,
		Ingredients:  ingredients,
		Instructions: fields.Instructions,
		PrepTime:     int32(fields.PrepTime),
		CookTime:     int32(fields.CookTime),
		Servings:     int32(fields.Servings),
		Category:     fields.Category,
		ImageUrl:     imageURLParam(fields.ImageURL),
	})
	if database.IsNotFound(err) {
		env.Logger.DebugContext(ctx, "recipe deleted during update")
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFoundMessage, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writeRecipe(w, r, http.StatusOK, updated)
}

// HandleDeleteRecipe godoc
//
//	@Summary		Delete a recipe
//	@Description	Deletes a recipe. Meal plans that reference it keep the dangling reference.
//	@Tags			Recipes
//	@Produce		json
//	@Param			id	path		int	true	"Recipe ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		400	{object}	apiError.Error	"Invalid recipe id"
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Failure		404	{object}	apiError.Error	"Recipe not found"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/recipes/{id} [delete]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	row, ok := loadRecipe(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "deleting recipe")
	deleted, err := env.Database.DeleteRecipe(ctx, database.DeleteRecipeParams{
		ID:     row.ID,
		UserID: row.UserID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if deleted == 0 {
		env.Logger.DebugContext(ctx, "recipe already deleted")
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFoundMessage, requestID)
		return
	}

	if row.ImageUrl.Valid {
		removeImage(ctx, env, row.ImageUrl.String)
	}

	if err := mJson.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Recipe deleted successfully"}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleScaleRecipe godoc
//
//	@Summary		Scale a recipe
//	@Description	Returns the recipe's ingredients adjusted to the requested servings,
//	@Description	rounded to two decimals. The stored recipe is not changed.
//	@Tags			Recipes
//	@Produce		json
//	@Param			id			path		int	true	"Recipe ID"
//	@Param			servings	query		int	true	"Servings, 1 to 100"
//	@Success		200			{object}	ScaleRecipeResponse
//	@Failure		400			{object}	apiError.Error	"Invalid servings"
//	@Failure		401			{object}	apiError.Error	"Unauthorized"
//	@Failure		404			{object}	apiError.Error	"Recipe not found"
//	@Failure		500			{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/recipes/{id}/scale [get]
func HandleScaleRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "reading request")
	n, err := servings(r.URL.Query().Get("servings")).Parse()
	if err != nil {
		env.Logger.DebugContext(ctx, "invalid servings", slog.Any("error", err))
		_ = apiError.EncodeValidationError(w, validation.Errors{{Field: "servings", Message: err.Error()}}, requestID)
		return
	}

	row, ok := loadRecipe(w, r)
	if !ok {
		return
	}
	rec, err := recipe.FromRow(row)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to convert recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, ScaleRecipeResponse{
		RecipeID:         rec.ID,
		OriginalServings: rec.Servings,
		Servings:         n,
		Ingredients:      rec.Scale(n),
	}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleUploadRecipeImage godoc
//
//	@Summary		Upload a recipe cover image
//	@Description	Stores the image in the object store and points the recipe's imageUrl at it.
//	@Description	The previous stored image, if any, is removed.
//	@Tags			Recipes
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"Recipe ID"
//	@Param			image	formData	file	true	"Cover image (JPEG/PNG/WebP/GIF/SVG)"
//	@Success		200		{object}	recipe.Recipe
//	@Failure		400		{object}	apiError.Error	"Missing or oversized image"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		404		{object}	apiError.Error	"Recipe not found"
//	@Failure		415		{object}	apiError.Error	"Unsupported image type"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/recipes/{id}/image [post]
func HandleUploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	if env.Images == nil {
		env.Logger.ErrorContext(ctx, "image upload called without an object store")
		_ = apiError.EncodeError(w, apiError.NotFound, "route not found", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "reading image")
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	image, err := form.ReadImage(r, "image")
	var maxBytesErr *http.MaxBytesError
	if errors.Is(err, form.ErrNoImageUploaded) {
		env.Logger.DebugContext(ctx, "no image uploaded")
		_ = apiError.EncodeError(w, apiError.BadRequest, "expected an image in the form", requestID)
		return
	} else if errors.Is(err, form.ErrUnsupportedMimeType) {
		env.Logger.DebugContext(ctx, "unsupported file type", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UnsupportedImage, "invalid file type", requestID)
		return
	} else if errors.Is(err, form.ErrImageTooLarge) || errors.As(err, &maxBytesErr) {
		env.Logger.DebugContext(ctx, "image too large", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "image too large", requestID)
		return
	} else if err != nil {
		env.Logger.DebugContext(ctx, "failed to read image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed multipart form", requestID)
		return
	}

	row, ok := loadRecipe(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "uploading image")
	location, err := env.Images.PutRecipeCover(ctx, row.ID, image.Ext, image.ContentType, image.Data)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to upload image", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	updated, err := env.Database.UpdateRecipeImage(ctx, database.UpdateRecipeImageParams{
		ID:     row.ID,
		UserID: row.UserID,
		ImageUrl: pgtype.Text{
			String: location,
			Valid:  true,
		},
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update recipe image", slog.Any("error", err))
		removeImage(ctx, env, location)
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if row.ImageUrl.Valid && row.ImageUrl.String != location {
		removeImage(ctx, env, row.ImageUrl.String)
	}

	writeRecipe(w, r, http.StatusOK, updated)
}

// loadRecipe fetches the recipe named by the id URL parameter for the
// caller. On failure the error response is written and ok is false.
func loadRecipe(w http.ResponseWriter, r *http.Request) (row database.Recipe, ok bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return row, false
	}

	id, err := recipeID(chi.URLParam(r, IDParam)).Parse()
	if err != nil {
		env.Logger.DebugContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return row, false
	}

	env.Logger.DebugContext(ctx, "getting recipe", slog.Int64("recipe-id", id))
	row, err = env.Database.GetRecipe(ctx, database.GetRecipeParams{
		ID:     id,
		UserID: userID,
	})
	if database.IsNotFound(err) {
		env.Logger.DebugContext(ctx, "recipe not found")
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFoundMessage, requestID)
		return row, false
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return row, false
	}
	return row, true
}

func writeRecipe(w http.ResponseWriter, r *http.Request, status int, row database.Recipe) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	rec, err := recipe.FromRow(row)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to convert recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := mJson.WriteJSON(w, status, rec); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// removeImage deletes a stored image. Failures are logged only; URLs that
// point outside the store are left alone.
func removeImage(ctx context.Context, env *env.Env, location string) {
	if env.Images == nil {
		return
	}
	err := env.Images.DeleteURL(ctx, location)
	if errors.Is(err, imagestore.ErrForeignURL) {
		env.Logger.DebugContext(ctx, "image is not stored by us", slog.String("url", location))
	} else if err != nil {
		env.Logger.WarnContext(ctx, "failed to remove image", slog.String("url", location), slog.Any("error", err))
	}
}

func imageURLParam(u *string) pgtype.Text {
	if u == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *u, Valid: true}
}
