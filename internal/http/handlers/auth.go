package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/http/middleware"
	"backoffice/internal/supabase"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Metadata map[string]any `json:"metadata"`
}

type recoverRequest struct {
	Email string `json:"email"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

// POST /api/auth/login delegates credential checks to the hosted backend.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "email y contraseña son obligatorios", nil)
		return
	}

	session, err := h.Backend.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "credenciales no válidas", nil)
		return
	}

	c.JSON(http.StatusOK, session)
}

// POST /api/auth/registro
func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "validation_error", "email obligatorio y contraseña de al menos 6 caracteres", nil)
		return
	}

	session, err := h.Backend.SignUp(c.Request.Context(), req.Email, req.Password, req.Metadata)
	if err != nil {
		respondError(c, http.StatusConflict, "signup_failed", "no se pudo crear la cuenta", err.Error())
		return
	}

	c.JSON(http.StatusCreated, session)
}

// POST /api/auth/logout revokes the bearer token of the request.
func (h *Handlers) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		respondError(c, http.StatusUnauthorized, "missing_token", "falta el token de sesión", nil)
		return
	}

	if err := h.Backend.SignOut(c.Request.Context(), token); err != nil {
		respondError(c, http.StatusBadGateway, "logout_failed", "no se pudo cerrar la sesión", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sesión cerrada"})
}

// POST /api/auth/recuperar triggers the password recovery email.
func (h *Handlers) RecoverPassword(c *gin.Context) {
	var req recoverRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "el email es obligatorio", nil)
		return
	}

	if err := h.Backend.ResetPasswordForEmail(c.Request.Context(), req.Email); err != nil {
		respondError(c, http.StatusBadGateway, "recover_failed", "no se pudo enviar el correo de recuperación", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "correo de recuperación enviado"})
}

// PUT /api/auth/password updates the password of the authenticated user.
func (h *Handlers) ChangePassword(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		respondError(c, http.StatusUnauthorized, "missing_token", "falta el token de sesión", nil)
		return
	}

	var req passwordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "validation_error", "la contraseña debe tener al menos 6 caracteres", nil)
		return
	}

	if err := h.Backend.UpdatePassword(c.Request.Context(), token, req.Password); err != nil {
		respondError(c, http.StatusBadGateway, "update_failed", "no se pudo actualizar la contraseña", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contraseña actualizada"})
}

// GET /api/auth/usuario returns the session user resolved by the guard,
// enriched with the profiles row when one exists.
func (h *Handlers) CurrentUser(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "no_session", "sesión no encontrada", nil)
		return
	}

	var profiles []map[string]any
	if h.Backend != nil {
		ctx := supabase.WithBearer(c.Request.Context(), bearerToken(c))
		// Profile rows are optional; the session user alone is a valid answer.
		_ = h.Backend.From("profiles").Eq("id", user.ID).Limit(1).Select(ctx, &profiles)
	}

	out := gin.H{"usuario": user}
	if len(profiles) > 0 {
		out["perfil"] = profiles[0]
	}
	c.JSON(http.StatusOK, out)
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
