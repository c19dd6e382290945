package contentapi

import (
	"context"

	"pitchside/types"
)

// FetchArticles fetches rawURL and parses the body. It never fails: every
// error is logged and an empty list is returned instead.
func (c *Client) FetchArticles(ctx context.Context, rawURL string) []types.Article {
	body, err := c.Fetch(ctx, rawURL)
	if err != nil {
		c.logger.Printf("contentapi: fetch failed: %v", err)
		return []types.Article{}
	}
	return parseWith(c.logger, body)
}
