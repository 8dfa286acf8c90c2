package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/melaverse-glitch/Mirror-Dashboard/models"
)

const maxSuggestions = 3

// SuggestFoundations asks the suggestion model to pick the best shade
// matches for the derendered portrait. The reply is free text that
// should contain a JSON array of SKUs; anything unparseable yields an
// empty slice. Callers treat this whole operation as best-effort.
func (c *Client) SuggestFoundations(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(SuggestionModel)

	resp, err := model.GenerateContent(ctx,
		genai.Text(suggestionPrompt()),
		genai.Blob{MIMEType: mimeType, Data: image},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %v", err)
	}

	var text strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}

	return ParseSuggestions(text.String()), nil
}

func suggestionPrompt() string {
	var catalog strings.Builder
	for _, f := range models.FoundationCatalog {
		fmt.Fprintf(&catalog, "- %s: %s (%s, %s undertone)\n", f.SKU, f.Name, f.Hex, f.Undertone)
	}

	return fmt.Sprintf(`Analyze this person's natural skin tone in the portrait and recommend exactly 3 foundation shades that would be the best match.

Available foundations:
%s
Consider:
1. The person's skin depth (light to deep)
2. Their undertone (warm, cool, or neutral)
3. Match to face, neck, and visible skin areas

Return ONLY a JSON array with exactly 3 SKU codes, ordered from best match to third best match.
Example: ["110W", "120W", "100N"]

Do not include any other text, just the JSON array.`, catalog.String())
}

// ParseSuggestions sanitizes and parses the model's reply: markdown
// code fences are stripped, the first bracketed array substring is
// extracted, and the parsed SKUs are filtered against the catalog and
// capped at three. Malformed input returns an empty slice.
func ParseSuggestions(raw string) []string {
	text := strings.TrimSpace(raw)

	if strings.Contains(text, "```") {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```JSON", "")
		text = strings.ReplaceAll(text, "```", "")
		text = strings.TrimSpace(text)
	}

	// The model sometimes wraps the array in prose; keep only the
	// first [...] span.
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return []string{}
	}
	text = text[start : end+1]

	var parsed []string
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return []string{}
	}

	suggestions := []string{}
	for _, sku := range parsed {
		if len(suggestions) == maxSuggestions {
			break
		}
		if _, ok := models.FindFoundation(strings.TrimSpace(sku)); ok {
			suggestions = append(suggestions, strings.TrimSpace(sku))
		}
	}
	return suggestions
}
