package cliclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/printcraft-dev/printcraft/internal/models"
)

// ListPrintOrders returns all print orders.
func (c *Client) ListPrintOrders(ctx context.Context) ([]models.PrintOrder, error) {
	var orders []models.PrintOrder
	if _, err := c.Get(ctx, "/print-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetPrintOrder returns a print order by ID.
func (c *Client) GetPrintOrder(ctx context.Context, id string) (*models.PrintOrder, error) {
	var order models.PrintOrder
	if _, err := c.Get(ctx, fmt.Sprintf("/print-orders/%s", url.PathEscape(id)), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreatePrintOrder creates a print order.
func (c *Client) CreatePrintOrder(ctx context.Context, insert models.InsertPrintOrder) (*models.PrintOrder, error) {
	var order models.PrintOrder
	if _, err := c.Post(ctx, "/print-orders", insert, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
