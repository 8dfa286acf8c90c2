package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/melaverse-glitch/Mirror-Dashboard/gemini"
	"github.com/melaverse-glitch/Mirror-Dashboard/models"
	"github.com/melaverse-glitch/Mirror-Dashboard/utils"
)

// DerenderRequest is the payload for the derender route.
type DerenderRequest struct {
	Image    string `json:"image"` // base64
	MimeType string `json:"mimeType"`
}

// DerenderResponse carries the derendered image. SessionID is omitted
// when session persistence failed; the image is still usable.
type DerenderResponse struct {
	Image                string   `json:"image"` // base64
	MimeType             string   `json:"mimeType"`
	SessionID            string   `json:"sessionId,omitempty"`
	SuggestedFoundations []string `json:"suggestedFoundations"`
}

// softFailure is the 200-with-error body returned when the model
// produced no image part. Clients distinguish it from transport-level
// failures by the error field.
type softFailure struct {
	Error   string `json:"error"`
	RawText string `json:"rawText,omitempty"`
}

// DerenderHandler removes makeup from an uploaded portrait, persists
// the session and suggests matching foundation shades.
func (h *Handler) DerenderHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Derender API]")

	var req DerenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Image == "" {
		utils.RespondError(w, &logMessageBuilder, "Image data is required", http.StatusBadRequest)
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid base64 image data", http.StatusBadRequest)
		return
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	// Long-running model call gets its own timeout, decoupled from the
	// client connection.
	geminiCtx, cancelGemini := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancelGemini()

	result, err := h.Gen.Derender(geminiCtx, imageData, mimeType)
	if err != nil {
		if errors.Is(err, gemini.ErrMissingAPIKey) {
			utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusInternalServerError)
			return
		}
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to derender image: %v", err), http.StatusInternalServerError)
		return
	}

	if !result.HasImage() {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Model returned text instead of image: %s", result.RawText))
		utils.RespondJSON(w, http.StatusOK, softFailure{Error: "No image generated by model", RawText: result.RawText})
		return
	}

	// Persist both images and the session record. Failures here are
	// logged and swallowed: the user still gets their result, the
	// session id is just omitted from the response.
	sessionID := h.persistSession(&logMessageBuilder, imageData, mimeType, result)

	// Best-effort shade suggestions; any failure leaves the list empty.
	suggestions := []string{}
	if suggested, err := h.Gen.SuggestFoundations(geminiCtx, result.Image, result.MimeType); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Error getting foundation suggestions: %v", err))
	} else {
		suggestions = suggested
	}

	utils.AddToLogMessage(&logMessageBuilder, "Derender successful")
	utils.RespondJSON(w, http.StatusOK, DerenderResponse{
		Image:                base64.StdEncoding.EncodeToString(result.Image),
		MimeType:             result.MimeType,
		SessionID:            sessionID,
		SuggestedFoundations: suggestions,
	})
}

// persistSession uploads the original and derendered blobs and creates
// the session document. Returns the new session id, or "" when any
// step failed.
func (h *Handler) persistSession(logger *strings.Builder, original []byte, originalMime string, result *gemini.Result) string {
	sessionID := uuid.New().String()
	createdAt := time.Now()

	storeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	originalURL, err := h.Blobs.Upload(storeCtx, fmt.Sprintf("sessions/%s/original.jpg", sessionID), original, originalMime)
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error storing original image: %v", err))
		return ""
	}

	derenderedURL, err := h.Blobs.Upload(storeCtx, fmt.Sprintf("sessions/%s/derendered.jpg", sessionID), result.Image, result.MimeType)
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error storing derendered image: %v", err))
		return ""
	}

	session := &models.Session{
		ID:                 sessionID,
		CreatedAt:          createdAt,
		OriginalImageURL:   originalURL,
		OriginalMimeType:   originalMime,
		DerenderedImageURL: derenderedURL,
		DerenderedMimeType: result.MimeType,
		Model:              gemini.ImageModel,
		DerenderPrompt:     gemini.DerenderPrompt,
		FoundationTryons:   []models.FoundationTryon{},
		Status:             models.SessionStatusActive,
		CompletedAt:        nil,
	}

	if err := h.Store.Create(storeCtx, session); err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error creating session: %v", err))
		return ""
	}

	utils.AddToLogMessage(logger, fmt.Sprintf("Successfully created session: %s", sessionID))
	return sessionID
}
