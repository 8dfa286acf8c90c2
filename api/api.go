package api

import (
	"github.com/melaverse-glitch/Mirror-Dashboard/blob"
	"github.com/melaverse-glitch/Mirror-Dashboard/gemini"
	"github.com/melaverse-glitch/Mirror-Dashboard/store"
	"github.com/melaverse-glitch/Mirror-Dashboard/utils"
)

// MailSender sends a rendered email. Matches utils.SendEmail.
type MailSender func(toName, toEmail, subject, textContent, htmlContent string) error

// Handler carries the injected clients used by all routes. One Handler
// is constructed at startup; requests share no other state.
type Handler struct {
	Store    store.SessionStore
	Blobs    blob.Store
	Gen      gemini.Generator
	SendMail MailSender
}

// NewHandler wires the route handlers to their dependencies.
func NewHandler(sessions store.SessionStore, blobs blob.Store, gen gemini.Generator) *Handler {
	return &Handler{
		Store:    sessions,
		Blobs:    blobs,
		Gen:      gen,
		SendMail: utils.SendEmail,
	}
}
