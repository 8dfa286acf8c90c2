package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/melaverse-glitch/Mirror-Dashboard/store"
	"github.com/melaverse-glitch/Mirror-Dashboard/utils"
)

// SessionsHandler lists all sessions, newest first, for the dashboard.
func (h *Handler) SessionsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Sessions API]")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessions, err := h.Store.List(ctx)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to fetch sessions: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Fetched %d sessions", len(sessions)))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// SessionDetailHandler fetches one session by id.
func (h *Handler) SessionDetailHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Session Detail API]")

	sessionID := r.PathValue("id")
	if sessionID == "" {
		utils.RespondError(w, &logMessageBuilder, "Session ID is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := h.Store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			utils.RespondError(w, &logMessageBuilder, "Session not found", http.StatusNotFound)
			return
		}
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to fetch session: %v", err), http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"session": session})
}
