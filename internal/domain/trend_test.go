package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  ConfidenceLevel
	}{
		{1.0, ConfidenceHigh},
		{0.75, ConfidenceHigh},
		{0.749999, ConfidenceMedium},
		{0.50, ConfidenceMedium},
		{0.499999, ConfidenceLow},
		{0.0, ConfidenceLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceForScore(tt.score), "score %v", tt.score)
	}
}

func TestContentItem_Validate(t *testing.T) {
	valid := ContentItem{
		ID:          1,
		Source:      "rss",
		Title:       "AI agents reshape tooling",
		PublishedAt: time.Now(),
	}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	err := missingTitle.Validate()
	assert.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)

	missingSource := valid
	missingSource.Source = ""
	assert.Error(t, missingSource.Validate())

	noDate := valid
	noDate.PublishedAt = time.Time{}
	assert.Error(t, noDate.Validate())
}

func TestContentItem_Text(t *testing.T) {
	summary := "a short summary"
	item := ContentItem{
		Title:    "headline",
		Summary:  &summary,
		Keywords: []string{"agents"},
	}
	assert.Equal(t, "headline a short summary agents", item.Text())
}
