// Package ping contains handlers for pinging the server
package ping

import (
	"log/slog"
	"net/http"

	"github.com/matt-dz/mealplan/internal/env"
	mJson "github.com/matt-dz/mealplan/internal/json"
)

type PingResponse struct {
	Status string `json:"status"`
} // @name Ping

// HandlePing godoc
//
//	@Summary	Ping endpoint.
//	@Tags		Ping
//	@Produce	json
//	@Success	200	{object}	PingResponse
//	@Router		/api/ping [GET]
func HandlePing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	if err := mJson.WriteJSON(w, http.StatusOK, PingResponse{Status: "ok"}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
