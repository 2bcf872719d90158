package genai

import (
	"context"
	"fmt"
)

// The wrapper prompts are deliberately plain: each one formats the artisan's
// description into a fixed template and goes through GenerateText with the
// default token budget.

func (c *Client) GenerateMarketingCopy(ctx context.Context, craftDescription, targetAudience string) (string, error) {
	if targetAudience == "" {
		targetAudience = "general"
	}
	prompt := fmt.Sprintf("Write compelling marketing copy for a traditional craft product. Description: %s. Target audience: %s. Make it engaging and highlight the unique, handmade nature.", craftDescription, targetAudience)
	return c.GenerateText(ctx, prompt, defaultMaxOutputTokens)
}

func (c *Client) GenerateSocialMediaPost(ctx context.Context, craftDescription, platform string) (string, error) {
	if platform == "" {
		platform = "Instagram"
	}
	prompt := fmt.Sprintf("Create a %s post about this craft: %s. Include emojis and hashtags suitable for the platform.", platform, craftDescription)
	return c.GenerateText(ctx, prompt, defaultMaxOutputTokens)
}

func (c *Client) GenerateCraftStory(ctx context.Context, craftDescription string) (string, error) {
	prompt := fmt.Sprintf("Write an inspiring story about an artisan and their craft. Description: %s. Focus on tradition, passion, and cultural heritage.", craftDescription)
	return c.GenerateText(ctx, prompt, defaultMaxOutputTokens)
}

func (c *Client) GenerateProductVisualDescription(ctx context.Context, productName, craftType string) (string, error) {
	prompt := fmt.Sprintf("Describe a high-quality, professional photograph of a %s product called '%s'. Include details about lighting, composition, and style to make it appealing for marketing.", craftType, productName)
	return c.GenerateText(ctx, prompt, defaultMaxOutputTokens)
}
