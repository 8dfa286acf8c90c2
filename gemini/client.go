package gemini

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/melaverse-glitch/Mirror-Dashboard/models"
)

const (
	// ImageModel renders derender and try-on results.
	ImageModel = "gemini-3-pro-image-preview"
	// SuggestionModel picks shade suggestions; smaller and faster.
	SuggestionModel = "gemini-3-flash-preview"
)

const derenderSystemInstruction = `You are an expert digital retoucher and dermatologist. Your goal is to reveal the subject's natural, healthy skin by digitally removing all cosmetic makeup.

1. Remove all foundation, blush, eyeshadow, eyeliner, lipstick, and contour.
2. Reveal the underlying skin tone consistent with the neck/hairline.
3. The resulting skin should appear **naturally clear, hydrated, and healthy**. It should NOT look airbrushed, plastic, or blurry.
4. RETAIN natural skin micro-texture (pores) to ensure realism, but DO NOT GENERATE blemishes, acne, redness, or blotchiness that is not present.
5. Strictly preserve the original facial identity, bone structure, and expression.`

// DerenderPrompt is recorded on the session as provenance metadata.
const DerenderPrompt = "Remove all makeup to reveal a clean, fresh-faced, natural look. The skin should look healthy and clear with realistic micro-texture, but free of blemishes. Do not smooth the skin excessively."

const foundationSystemInstruction = `You are an expert cosmetic artist and digital makeup specialist. Your task is to apply foundation makeup to the provided portrait image.

IMPORTANT GUIDELINES:
1. Apply the foundation ONLY to the face and neck areas - do not alter hair, eyes, lips, eyebrows, or background.
2. The foundation should create a smooth, polished, professional makeup finish - like real foundation does.
3. Strictly preserve the original facial identity, bone structure, and expression.
4. Even out skin tone and create a smooth, refined complexion by softening pores, fine lines, and minor imperfections.
5. The coverage should be medium to full - creating that polished makeup look with the foundation shade.
6. Blend the foundation seamlessly at the jawline and hairline edges with no harsh lines.
7. The result should look like professionally applied makeup - smooth and polished but still realistic, NOT plastic or heavily airbrushed.`

// Result is the outcome of an image-generation call. An empty Image
// with a populated RawText means the model declined to produce an
// image; that is a signaled outcome, not an error.
type Result struct {
	Image    []byte
	MimeType string
	RawText  string
}

// HasImage reports whether the model produced an image part.
func (r *Result) HasImage() bool {
	return len(r.Image) > 0
}

// Generator abstracts the generative-model calls so handlers can be
// exercised against fakes.
type Generator interface {
	Derender(ctx context.Context, image []byte, mimeType string) (*Result, error)
	ApplyFoundation(ctx context.Context, image []byte, mimeType string, foundation models.Foundation) (*Result, error)
	SuggestFoundations(ctx context.Context, image []byte, mimeType string) ([]string, error)
}

// Client calls the Gemini API. The underlying SDK client is created
// per call and closed when the call returns; a missing API key
// surfaces as ErrMissingAPIKey at request time.
type Client struct {
	APIKey string
	// SwatchDir holds per-SKU reference swatch images ({SKU}.png).
	// Missing swatches are tolerated; the prompt then describes the
	// shade by hex and undertone alone.
	SwatchDir string
}

// ErrMissingAPIKey indicates the Gemini credential is not configured.
var ErrMissingAPIKey = fmt.Errorf("GEMINI_API_KEY is not set")

func NewClient(apiKey, swatchDir string) *Client {
	return &Client{APIKey: apiKey, SwatchDir: swatchDir}
}

// Derender asks the model to strip all makeup from the portrait.
func (c *Client) Derender(ctx context.Context, image []byte, mimeType string) (*Result, error) {
	return c.generateImage(ctx, derenderSystemInstruction, []genai.Part{
		genai.Text(DerenderPrompt),
		genai.Blob{MIMEType: mimeType, Data: image},
	})
}

// ApplyFoundation renders the shade onto the face. When a reference
// swatch exists for the SKU it is attached as a second image.
func (c *Client) ApplyFoundation(ctx context.Context, image []byte, mimeType string, foundation models.Foundation) (*Result, error) {
	prompt := fmt.Sprintf(`Apply this foundation to the face in the portrait:
- Foundation shade: %s
- Color: %s
- Undertone: %s

Create a smooth, polished foundation finish that looks like professional makeup application. The skin should appear even-toned and refined with the foundation color, with a natural but polished appearance. Blend seamlessly at all edges.`,
		foundation.Name, foundation.Hex, foundation.Undertone)

	parts := []genai.Part{
		genai.Text(prompt),
		genai.Blob{MIMEType: mimeType, Data: image},
	}

	if swatch := c.loadSwatch(foundation.SKU); swatch != nil {
		parts[0] = genai.Text(prompt + "\n\nThe second image shows the exact foundation color/texture to apply.")
		parts = append(parts, genai.Blob{MIMEType: "image/png", Data: swatch})
	}

	return c.generateImage(ctx, foundationSystemInstruction, parts)
}

// loadSwatch reads the reference swatch for a SKU, best-effort.
func (c *Client) loadSwatch(sku string) []byte {
	if c.SwatchDir == "" || sku == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(c.SwatchDir, sku+".png"))
	if err != nil {
		return nil
	}
	return data
}

func (c *Client) generateImage(ctx context.Context, systemInstruction string, parts []genai.Part) (*Result, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(ImageModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %v", err)
	}

	return extractResult(resp), nil
}

// extractResult pulls the first image part out of the response. When
// no image part exists, the concatenated text parts are kept so the
// caller can report what the model said instead.
func extractResult(resp *genai.GenerateContentResponse) *Result {
	result := &Result{}
	var text strings.Builder

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			switch p := part.(type) {
			case genai.Blob:
				if !result.HasImage() {
					result.Image = p.Data
					result.MimeType = p.MIMEType
				}
			case genai.Text:
				text.WriteString(string(p))
			}
		}
	}

	result.RawText = strings.TrimSpace(text.String())
	return result
}
