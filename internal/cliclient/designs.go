package cliclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/printcraft-dev/printcraft/internal/models"
)

// PDFExport mirrors the server's mock export descriptor.
type PDFExport struct {
	DesignID    string `json:"designId"`
	FileName    string `json:"fileName"`
	DownloadURL string `json:"downloadUrl"`
	Size        string `json:"size"`
	Pages       int    `json:"pages"`
	Format      string `json:"format"`
}

// ListDesigns returns all designs.
func (c *Client) ListDesigns(ctx context.Context) ([]models.Design, error) {
	var designs []models.Design
	if _, err := c.Get(ctx, "/designs", &designs); err != nil {
		return nil, err
	}
	return designs, nil
}

// GetDesign returns a design by ID.
func (c *Client) GetDesign(ctx context.Context, id string) (*models.Design, error) {
	var design models.Design
	if _, err := c.Get(ctx, fmt.Sprintf("/designs/%s", url.PathEscape(id)), &design); err != nil {
		return nil, err
	}
	return &design, nil
}

// CreateDesign creates a new design.
func (c *Client) CreateDesign(ctx context.Context, insert models.InsertDesign) (*models.Design, error) {
	var design models.Design
	if _, err := c.Post(ctx, "/designs", insert, &design); err != nil {
		return nil, err
	}
	return &design, nil
}

// UpdateDesign applies a partial update to a design.
func (c *Client) UpdateDesign(ctx context.Context, id string, patch models.DesignPatch) (*models.Design, error) {
	var design models.Design
	if _, err := c.Put(ctx, fmt.Sprintf("/designs/%s", url.PathEscape(id)), patch, &design); err != nil {
		return nil, err
	}
	return &design, nil
}

// DeleteDesign deletes a design by ID.
func (c *Client) DeleteDesign(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/designs/%s", url.PathEscape(id)))
	return err
}

// ExportPDF requests a mock PDF export for a design.
func (c *Client) ExportPDF(ctx context.Context, id string) (*PDFExport, error) {
	var export PDFExport
	if _, err := c.Post(ctx, fmt.Sprintf("/designs/%s/pdf", url.PathEscape(id)), nil, &export); err != nil {
		return nil, err
	}
	return &export, nil
}
