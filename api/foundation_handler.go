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

	"github.com/melaverse-glitch/Mirror-Dashboard/gemini"
	"github.com/melaverse-glitch/Mirror-Dashboard/models"
	"github.com/melaverse-glitch/Mirror-Dashboard/utils"
)

// ApplyFoundationRequest is the payload for the apply-foundation route.
// The foundation descriptor is taken as submitted; it is not validated
// against the server-side catalog.
type ApplyFoundationRequest struct {
	Image      string            `json:"image"` // base64, the derendered portrait
	MimeType   string            `json:"mimeType"`
	Foundation models.Foundation `json:"foundation"`
	SessionID  string            `json:"sessionId"`
}

// ApplyFoundationResponse carries the rendered try-on image.
type ApplyFoundationResponse struct {
	Image      string `json:"image"` // base64
	MimeType   string `json:"mimeType"`
	Foundation string `json:"foundation"` // echoed SKU
}

// ApplyFoundationHandler renders the selected shade onto the portrait
// and appends the try-on to the session's history.
func (h *Handler) ApplyFoundationHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Apply Foundation API]")

	var req ApplyFoundationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Image == "" {
		utils.RespondError(w, &logMessageBuilder, "Image data is required", http.StatusBadRequest)
		return
	}

	if req.Foundation.SKU == "" {
		utils.RespondError(w, &logMessageBuilder, "Foundation selection is required", http.StatusBadRequest)
		return
	}

	if req.SessionID == "" {
		utils.RespondError(w, &logMessageBuilder, "Session ID is required", http.StatusBadRequest)
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

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Try-On Request: SessionID=%s, SKU=%s", req.SessionID, req.Foundation.SKU))

	geminiCtx, cancelGemini := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancelGemini()

	result, err := h.Gen.ApplyFoundation(geminiCtx, imageData, mimeType, req.Foundation)
	if err != nil {
		if errors.Is(err, gemini.ErrMissingAPIKey) {
			utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusInternalServerError)
			return
		}
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to apply foundation: %v", err), http.StatusInternalServerError)
		return
	}

	if !result.HasImage() {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Model returned text instead of image: %s", result.RawText))
		utils.RespondJSON(w, http.StatusOK, softFailure{Error: "No image generated by model", RawText: result.RawText})
		return
	}

	// Record the try-on. Persistence failures are logged and swallowed;
	// the generated image is returned to the user regardless.
	h.persistTryon(&logMessageBuilder, req.SessionID, req.Foundation, result)

	utils.RespondJSON(w, http.StatusOK, ApplyFoundationResponse{
		Image:      base64.StdEncoding.EncodeToString(result.Image),
		MimeType:   result.MimeType,
		Foundation: req.Foundation.SKU,
	})
}

// persistTryon uploads the result blob and appends the try-on record
// to the session document.
func (h *Handler) persistTryon(logger *strings.Builder, sessionID string, foundation models.Foundation, result *gemini.Result) {
	appliedAt := time.Now()

	storeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	objectKey := fmt.Sprintf("sessions/%s/foundation-%s-%d.jpg", sessionID, foundation.SKU, appliedAt.UnixMilli())
	resultURL, err := h.Blobs.Upload(storeCtx, objectKey, result.Image, result.MimeType)
	if err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error storing try-on image: %v", err))
		return
	}

	tryon := models.FoundationTryon{
		AppliedAt:      appliedAt,
		SKU:            foundation.SKU,
		Name:           foundation.Name,
		Hex:            foundation.Hex,
		Undertone:      foundation.Undertone,
		ResultImageURL: resultURL,
		ResultMimeType: result.MimeType,
	}

	if err := h.Store.AppendTryon(storeCtx, sessionID, tryon); err != nil {
		utils.AddToLogMessage(logger, fmt.Sprintf("Error updating session %s: %v", sessionID, err))
		return
	}

	utils.AddToLogMessage(logger, fmt.Sprintf("Successfully added foundation %s to session %s", foundation.SKU, sessionID))
}
