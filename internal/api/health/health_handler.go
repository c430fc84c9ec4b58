package health

import (
	"net/http"

	"github.com/hsm-gustavo/smart-pantry/internal/api/respond"
)

type StatusResponse struct {
	Status  string `json:"status" example:"online"`
	Message string `json:"message" example:"API is working correctly"`
}

type PingResponse struct {
	Message string `json:"message" example:"ping"`
}

// HealthHandler godoc
//
//	@Summary		Health check endpoint
//	@Description	Check if the API is running and healthy
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	StatusResponse	"API is healthy"
//	@Router			/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, StatusResponse{
		Status:  "online",
		Message: "API is working correctly",
	})
}

// PingHandler godoc
//
//	@Summary		Ping
//	@Description	Reply with the configured ping message
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	PingResponse
//	@Router			/api/ping [get]
func PingHandler(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, PingResponse{Message: message})
	}
}
