package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain array",
			raw:  `["110W", "120W", "100N"]`,
			want: []string{"110W", "120W", "100N"},
		},
		{
			name: "code fenced",
			raw:  "```json\n[\"110W\", \"120W\", \"100N\"]\n```",
			want: []string{"110W", "120W", "100N"},
		},
		{
			name: "wrapped in prose",
			raw:  `Based on the skin tone, I recommend: ["330W", "340N", "280N"] for the best match.`,
			want: []string{"330W", "340N", "280N"},
		},
		{
			name: "unknown skus filtered out",
			raw:  `["110W", "999X", "120W"]`,
			want: []string{"110W", "120W"},
		},
		{
			name: "capped at three",
			raw:  `["110W", "120W", "100N", "80N", "60C"]`,
			want: []string{"110W", "120W", "100N"},
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: []string{},
		},
		{
			name: "no array at all",
			raw:  "I cannot determine the skin tone from this image.",
			want: []string{},
		},
		{
			name: "malformed json",
			raw:  `["110W", "120W"`,
			want: []string{},
		},
		{
			name: "array of objects",
			raw:  `[{"sku": "110W"}]`,
			want: []string{},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "fenced without language tag",
			raw:  "```\n[\"550W\"]\n```",
			want: []string{"550W"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSuggestions(tt.raw))
		})
	}
}

func TestParseSuggestionsNeverExceedsThree(t *testing.T) {
	got := ParseSuggestions(`["30W","40N","50N","60C","80N","100N"]`)
	assert.LessOrEqual(t, len(got), 3)
}

func TestResultHasImage(t *testing.T) {
	assert.False(t, (&Result{RawText: "refused"}).HasImage())
	assert.True(t, (&Result{Image: []byte{0xff}, MimeType: "image/png"}).HasImage())
}
