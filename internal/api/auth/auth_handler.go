package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hsm-gustavo/smart-pantry/internal/api/respond"
	"github.com/hsm-gustavo/smart-pantry/internal/common"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
)

// Request/Response structures

type SignupRequest struct {
	Email    string  `json:"email" example:"joao@example.com"`
	Password string  `json:"password" example:"password123"`
	Role     db.Role `json:"role,omitempty" example:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"joao@example.com"`
	Password string `json:"password" example:"password123"`
}

type AuthResponse struct {
	Token string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  Identity `json:"user"`
}

type AuthHandler struct {
	service *AuthService
}

func NewAuthHandler(s *AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Signup godoc
// @Summary		Register a new user
// @Description	Create an account and receive a bearer token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		SignupRequest			true	"Signup data"
// @Success		201		{object}	AuthResponse			"User registered"
// @Failure		400		{object}	respond.ErrorResponse	"Missing email or password"
// @Failure		409		{object}	respond.ErrorResponse	"Email already registered"
// @Failure		500		{object}	respond.ErrorResponse	"Internal server error"
// @Router			/api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	res, err := h.service.Signup(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			respond.FromError(w, err, "Email and password are required; role must be user or admin")
		case errors.Is(err, common.ErrConflict):
			respond.FromError(w, err, "A user with this email already exists")
		default:
			h.service.logger.Error(r.Context(), "signup failed", "error", err)
			respond.FromError(w, err, "Error creating user account")
		}
		return
	}

	respond.JSON(w, http.StatusCreated, AuthResponse{Token: res.Token, User: res.User})
}

// Login godoc
// @Summary		User login
// @Description	Authenticate with email and password and receive a bearer token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			credentials	body		LoginRequest			true	"User login credentials"
// @Success		200			{object}	AuthResponse			"Login successful"
// @Failure		400			{object}	respond.ErrorResponse	"Invalid JSON"
// @Failure		401			{object}	respond.ErrorResponse	"Invalid credentials"
// @Failure		500			{object}	respond.ErrorResponse	"Internal server error"
// @Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials", "Email or password is incorrect")
			return
		}
		h.service.logger.Error(r.Context(), "login failed", "error", err)
		respond.FromError(w, err, "Error during login")
		return
	}

	respond.JSON(w, http.StatusOK, AuthResponse{Token: res.Token, User: res.User})
}

// Me godoc
// @Summary		Get current user info
// @Description	Return the identity carried by the bearer token
// @Tags			auth
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Identity				"Current identity"
// @Failure		401	{object}	respond.ErrorResponse	"Invalid or missing token"
// @Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized", "Invalid or missing authentication token")
		return
	}

	respond.JSON(w, http.StatusOK, id)
}
