package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/melaverse-glitch/Mirror-Dashboard/store"
	"github.com/melaverse-glitch/Mirror-Dashboard/utils"
)

// ShareRequest is the payload for emailing a session's results.
type ShareRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ShareSessionHandler emails the session's image links to the visitor.
func (h *Handler) ShareSessionHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Share Session API]")

	sessionID := r.PathValue("id")
	if sessionID == "" {
		utils.RespondError(w, &logMessageBuilder, "Session ID is required", http.StatusBadRequest)
		return
	}

	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		utils.RespondError(w, &logMessageBuilder, "Email is required", http.StatusBadRequest)
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

	var text, html strings.Builder
	text.WriteString("Here are your Mirror results:\n\n")
	fmt.Fprintf(&text, "Original photo: %s\n", session.OriginalImageURL)
	fmt.Fprintf(&text, "Fresh-faced look: %s\n", session.DerenderedImageURL)

	html.WriteString("<h2>Your Mirror results</h2>")
	fmt.Fprintf(&html, `<p><a href="%s">Original photo</a></p>`, session.OriginalImageURL)
	fmt.Fprintf(&html, `<p><a href="%s">Fresh-faced look</a></p>`, session.DerenderedImageURL)

	for _, tryon := range session.FoundationTryons {
		fmt.Fprintf(&text, "Foundation %s (%s): %s\n", tryon.Name, tryon.SKU, tryon.ResultImageURL)
		fmt.Fprintf(&html, `<p><a href="%s">Foundation %s (%s)</a></p>`, tryon.ResultImageURL, tryon.Name, tryon.SKU)
	}

	if err := h.SendMail(req.Name, req.Email, "Your Mirror results", text.String(), html.String()); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to send email: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Shared session %s with %s", sessionID, req.Email))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Results sent successfully"})
}
