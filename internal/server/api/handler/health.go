package handler

import (
	"net/http"

	"github.com/courtside/courtside/internal/server/api/apierr"
	"github.com/courtside/courtside/internal/server/api/response"
)

// Health handles GET /api/health. It touches no backing store.
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewMethodNotAllowedError())
}
