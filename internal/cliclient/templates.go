package cliclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/printcraft-dev/printcraft/internal/models"
)

// ListTemplates returns the template catalog, optionally filtered by category.
func (c *Client) ListTemplates(ctx context.Context, category string) ([]models.Template, error) {
	path := "/templates"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var templates []models.Template
	if _, err := c.Get(ctx, path, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplate returns a template by ID.
func (c *Client) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	var template models.Template
	if _, err := c.Get(ctx, fmt.Sprintf("/templates/%s", url.PathEscape(id)), &template); err != nil {
		return nil, err
	}
	return &template, nil
}
