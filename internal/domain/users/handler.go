package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, logger *zap.SugaredLogger) {
	r.Post("/register", registerHandler(svc, logger))
	r.Post("/login", loginHandler(svc, logger))
}

type credentialsRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	SignupCode string `json:"signupCode,omitempty"`
}

// registerHandler godoc
// @Summary Register a new account
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /register [post]
func registerHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
			return
		}

		_, err := svc.Register(r.Context(), RegisterInput{
			Username:   req.Username,
			Password:   req.Password,
			SignupCode: req.SignupCode,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "VALIDATION", "username and password are required")
			case errors.Is(err, ErrUsernameTaken):
				// el original devolvía 500 acá; 409 refleja mejor el conflicto
				writeError(w, http.StatusConflict, "USERNAME_TAKEN", "username is already taken")
			default:
				logger.Errorf("registering user: %v", err)
				writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// loginResponse es la forma del login exitoso: token y userStatus van
// siempre, incluso si el status fuera 0.
type loginResponse struct {
	Success    bool   `json:"success"`
	Token      string `json:"token"`
	UserStatus int    `json:"userStatus"`
}

// loginHandler godoc
// @Summary Log in with username and password
// @Accept json
// @Produce json
// @Success 200 {object} users.loginResponse
// @Router /login [post]
func loginHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
			return
		}

		res, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			logger.Errorf("logging in: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		// usuario desconocido y contraseña incorrecta responden igual:
		// negativo esperado, nunca status de error
		if !res.Authenticated {
			writeJSON(w, http.StatusOK, map[string]bool{"success": false})
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Success:    true,
			Token:      res.Token,
			UserStatus: res.UserStatus,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
