package models

import "time"

// Foundation identifies a shade as presented to the model and the user.
// Try-on requests carry the full descriptor rather than a catalog
// reference so that catalog edits never rewrite history.
type Foundation struct {
	SKU       string `bson:"sku" json:"sku"`
	Name      string `bson:"name" json:"name"`
	Hex       string `bson:"hex" json:"hex"`
	Undertone string `bson:"undertone" json:"undertone"` // warm, neutral or cool
}

// FoundationTryon is one generated try-on result embedded in a session.
type FoundationTryon struct {
	AppliedAt      time.Time `bson:"appliedAt" json:"appliedAt"`
	SKU            string    `bson:"sku" json:"sku"`
	Name           string    `bson:"name" json:"name"`
	Hex            string    `bson:"hex" json:"hex"`
	Undertone      string    `bson:"undertone" json:"undertone"`
	ResultImageURL string    `bson:"resultImageUrl" json:"resultImageUrl"`
	ResultMimeType string    `bson:"resultMimeType" json:"resultMimeType"`
}

// Session records one user journey: the uploaded portrait, its
// derendered counterpart and every foundation applied afterwards.
// FoundationTryons is append-only; repeated applications of the same
// shade produce separate entries.
type Session struct {
	ID                 string            `bson:"_id" json:"id"`
	CreatedAt          time.Time         `bson:"createdAt" json:"createdAt"`
	OriginalImageURL   string            `bson:"originalImageUrl" json:"originalImageUrl"`
	OriginalMimeType   string            `bson:"originalMimeType" json:"originalMimeType"`
	DerenderedImageURL string            `bson:"derenderedImageUrl" json:"derenderedImageUrl"`
	DerenderedMimeType string            `bson:"derenderedMimeType" json:"derenderedMimeType"`
	Model              string            `bson:"model" json:"model"`
	DerenderPrompt     string            `bson:"derenderPrompt" json:"derenderPrompt"`
	FoundationTryons   []FoundationTryon `bson:"foundationTryons" json:"foundationTryons"`
	Status             string            `bson:"status" json:"status"` // active, completed
	CompletedAt        *time.Time        `bson:"completedAt" json:"completedAt"`
	Rating             *int              `bson:"rating,omitempty" json:"rating,omitempty"` // 0-5 stars, reserved
}

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)
