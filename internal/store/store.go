// Package store owns all entity state. It exposes CRUD over templates,
// designs and print orders behind a storage-agnostic interface; the only
// implementation is an in-memory one seeded with the template catalog.
package store

import (
	"context"
	"errors"

	"github.com/printcraft-dev/printcraft/internal/models"
)

// ErrNotFound is returned when the requested entity id is absent.
var ErrNotFound = errors.New("not found")

// Store provides atomic single-entity CRUD over the three collections.
// Implementations trust validated input: no field validation happens here,
// only existence checks.
type Store interface {
	// Templates (read-only catalog, seeded once at construction)
	ListTemplates(ctx context.Context) ([]models.Template, error)
	ListTemplatesByCategory(ctx context.Context, category models.Category) ([]models.Template, error)
	GetTemplate(ctx context.Context, id string) (*models.Template, error)

	// Designs
	CreateDesign(ctx context.Context, insert models.InsertDesign) (*models.Design, error)
	GetDesign(ctx context.Context, id string) (*models.Design, error)
	ListDesigns(ctx context.Context) ([]models.Design, error)
	UpdateDesign(ctx context.Context, id string, patch models.DesignPatch) (*models.Design, error)
	DeleteDesign(ctx context.Context, id string) (bool, error)

	// Print orders
	CreatePrintOrder(ctx context.Context, insert models.InsertPrintOrder) (*models.PrintOrder, error)
	GetPrintOrder(ctx context.Context, id string) (*models.PrintOrder, error)
	ListPrintOrders(ctx context.Context) ([]models.PrintOrder, error)
}
