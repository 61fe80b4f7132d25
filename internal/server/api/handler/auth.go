package handler

import (
	"encoding/json"
	"net/http"

	"github.com/courtside/courtside/internal/server/api/apierr"
	"github.com/courtside/courtside/internal/server/api/middleware"
	"github.com/courtside/courtside/internal/server/api/request"
	"github.com/courtside/courtside/internal/server/api/response"
	"github.com/courtside/courtside/internal/server/models"
	"github.com/courtside/courtside/internal/server/services"
)

const maxBodyBytes = 1 << 20

// AuthHandler handles the /api/auth endpoints.
type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.authService.Signup(r.Context(), services.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.Role(req.Role),
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SignupResponse{
		Message: "User created successfully",
		User:    response.UserResponseFromModel(user),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.authService.Login(r.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{
		Token: res.Token,
		User:  response.UserResponseFromModel(res.User),
	})
}

// Me handles GET /api/auth/me. Requires the Auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		apierr.WriteError(w, apierr.NewUnauthorizedError())
		return
	}
	response.JSON(w, http.StatusOK, response.MeResponseFromClaims(claims))
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return false
	}
	return true
}
