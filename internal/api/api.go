// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/matt-dz/mealplan/docs"
	"github.com/matt-dz/mealplan/internal/api/middleware"
	"github.com/matt-dz/mealplan/internal/api/routes/auth"
	"github.com/matt-dz/mealplan/internal/api/routes/mealplans"
	"github.com/matt-dz/mealplan/internal/api/routes/ping"
	"github.com/matt-dz/mealplan/internal/api/routes/recipes"
	"github.com/matt-dz/mealplan/internal/env"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func addDocs(r chi.Router) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL("/api/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)
	r.Get("/swagger/*", swagger.ServeHTTP)
}

func addRoutes(router chi.Router, env *env.Env) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)
		addDocs(r)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", auth.HandleSignup)
			r.Post("/login", auth.HandleLogin)
			r.With(middleware.Authenticate).Get("/me", auth.HandleMe)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Use(middleware.Authenticate)

			r.Get("/", recipes.HandleListRecipes)
			r.Post("/", recipes.HandleCreateRecipe)
			r.Route(fmt.Sprintf("/{%s}", recipes.IDParam), func(r chi.Router) {
				r.Get("/", recipes.HandleGetRecipe)
				r.Put("/", recipes.HandleUpdateRecipe)
				r.Delete("/", recipes.HandleDeleteRecipe)
				r.Get("/scale", recipes.HandleScaleRecipe)
				if env.Images != nil {
					r.Post("/image", recipes.HandleUploadRecipeImage)
				}
			})
		})

		r.Route("/meal-plans", func(r chi.Router) {
			r.Use(middleware.Authenticate)

			r.Get("/", mealplans.HandleListMealPlans)
			r.Post("/", mealplans.HandleCreateMealPlan)
			r.Route("/current", func(r chi.Router) {
				r.Get("/", mealplans.HandleCurrentMealPlan)
				r.Put("/meals", mealplans.HandleSetCurrentMeal)
				r.Get("/grocery-list", mealplans.HandleCurrentGroceryList)
			})
			r.Route(fmt.Sprintf("/{%s}", mealplans.IDParam), func(r chi.Router) {
				r.Get("/", mealplans.HandleGetMealPlan)
				r.Put("/", mealplans.HandleUpdateMealPlan)
				r.Delete("/", mealplans.HandleDeleteMealPlan)
				r.Get("/grocery-list", mealplans.HandleGroceryList)
			})
		})
	})
}

// NewRouter builds the API handler with every middleware and route.
func NewRouter(env *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.Recover)
	router.Use(middleware.Cors(env.Config.CORS.Origin))
	router.Use(middleware.RateLimit(env.Config.RateLimit.Max, env.Config.RateLimit.Window.Std()))
	router.NotFound(middleware.NotFound)
	router.MethodNotAllowed(middleware.MethodNotAllowed)

	addRoutes(router, env)
	return router
}

// Start godoc
//
//	@title						Meal Planner API
//	@version					1.0
//	@description				API Server for the meal planner.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//
//	@host						localhost:5000
//	@BasePath					/
func Start(ctx context.Context, env *env.Env) error {
	addr := fmt.Sprintf(":%d", env.Config.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0%s", addr))
		env.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0%s/api/swagger/index.html", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	env.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
