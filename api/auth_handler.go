package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/melaverse-glitch/Mirror-Dashboard/config"
	"github.com/melaverse-glitch/Mirror-Dashboard/utils"
)

// AdminLoginRequest is the payload for the dashboard login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginHandler exchanges the dashboard password for a bearer token.
func AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Login API]")

	var req AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Password is required", http.StatusBadRequest)
		return
	}

	if config.AdminPasswordHash == "" || config.JWTSecret == "" {
		utils.RespondError(w, &logMessageBuilder, "Admin login is not configured", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(req.Password)); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to generate token: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Admin login successful")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// AdminAuthMiddleware guards the dashboard routes with a bearer token.
// When ADMIN_PASSWORD_HASH is unset the kiosk runs open and requests
// pass straight through.
func AdminAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if config.AdminPasswordHash == "" {
			next(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			utils.RespondError(w, nil, "Authorization token required", http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAdminToken(tokenString)
		if err != nil || !token.Valid {
			utils.RespondError(w, nil, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}
