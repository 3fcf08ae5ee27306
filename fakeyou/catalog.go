package fakeyou

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-fakeyou/models"
)

// ListVoices returns every TTS voice. A response without a voices key
// yields an empty slice.
func (c *Client) ListVoices(ctx context.Context) ([]models.Voice, error) {
	return c.voices(ctx, "tts/voices")
}

// VoicesByCategory returns the voices of one category.
func (c *Client) VoicesByCategory(ctx context.Context, categoryToken string) ([]models.Voice, error) {
	return c.voices(ctx, "tts/voices/"+url.PathEscape(categoryToken))
}

// ListVoiceCategories returns every voice category. A response without a
// categories key yields an empty slice.
func (c *Client) ListVoiceCategories(ctx context.Context) ([]models.Category, error) {
	var list models.CategoryList
	if err := c.get(ctx, "tts/categories", &list, requireOK, nil); err != nil {
		return nil, err
	}
	if list.Categories == nil {
		return []models.Category{}, nil
	}
	return list.Categories, nil
}

func (c *Client) voices(ctx context.Context, endpoint string) ([]models.Voice, error) {
	var list models.VoiceList
	if err := c.get(ctx, endpoint, &list, requireOK, nil); err != nil {
		return nil, err
	}
	if list.Voices == nil {
		return []models.Voice{}, nil
	}
	return list.Voices, nil
}
