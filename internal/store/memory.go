package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/printcraft-dev/printcraft/internal/models"
)

// MemoryStore is an in-memory Store implementation. State lives for the
// process lifetime and resets on restart; acceptable for a prototype-grade
// store. A single instance is constructed at boot and passed explicitly to
// the handlers.
//
// All state is guarded by mu: handlers run on concurrent goroutines under
// net/http, so plain map access would race.
type MemoryStore struct {
	mu sync.RWMutex

	templates     map[string]models.Template
	templateOrder []string

	designs     map[string]models.Design
	designOrder []string

	orders     map[string]models.PrintOrder
	orderOrder []string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store seeded with the fixed template catalog.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		templates: make(map[string]models.Template),
		designs:   make(map[string]models.Design),
		orders:    make(map[string]models.PrintOrder),
	}

	for _, t := range seedTemplates() {
		s.templates[t.ID] = t
		s.templateOrder = append(s.templateOrder, t.ID)
	}

	slog.Info("Initialized in-memory store", "templates", len(s.templates))
	return s
}

// ListTemplates returns all templates in seed order.
func (s *MemoryStore) ListTemplates(ctx context.Context) ([]models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Template, 0, len(s.templateOrder))
	for _, id := range s.templateOrder {
		out = append(out, copyTemplate(s.templates[id]))
	}
	return out, nil
}

// ListTemplatesByCategory returns the templates in the given category, seed
// order preserved. An unknown category yields an empty list, not an error.
func (s *MemoryStore) ListTemplatesByCategory(ctx context.Context, category models.Category) ([]models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Template{}
	for _, id := range s.templateOrder {
		if t := s.templates[id]; t.Category == category {
			out = append(out, copyTemplate(t))
		}
	}
	return out, nil
}

// GetTemplate returns a template by id.
func (s *MemoryStore) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, ErrNotFound
	}
	t = copyTemplate(t)
	return &t, nil
}

// CreateDesign assigns a fresh id, applies field defaults and stamps both
// timestamps with the same instant.
func (s *MemoryStore) CreateDesign(ctx context.Context, insert models.InsertDesign) (*models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	d := models.Design{
		ID:              uuid.NewString(),
		Title:           insert.Title,
		Type:            insert.Type,
		IdeaDescription: insert.IdeaDescription,
		TemplateID:      insert.TemplateID,
		DesignData:      cloneDoc(insert.DesignData),
		Size:            insert.Size,
		ColorPreference: insert.ColorPreference,
		Status:          insert.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if d.Size == "" {
		d.Size = models.SizeStandard
	}
	if d.ColorPreference == "" {
		d.ColorPreference = models.ColorAuto
	}
	if d.Status == "" {
		d.Status = models.DesignStatusDraft
	}

	s.designs[d.ID] = d
	s.designOrder = append(s.designOrder, d.ID)

	slog.Debug("Design created", "design_id", d.ID, "type", d.Type)
	d = copyDesign(d)
	return &d, nil
}

// GetDesign returns a design by id.
func (s *MemoryStore) GetDesign(ctx context.Context, id string) (*models.Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.designs[id]
	if !ok {
		return nil, ErrNotFound
	}
	d = copyDesign(d)
	return &d, nil
}

// ListDesigns returns all designs in insertion order.
func (s *MemoryStore) ListDesigns(ctx context.Context) ([]models.Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Design, 0, len(s.designOrder))
	for _, id := range s.designOrder {
		out = append(out, copyDesign(s.designs[id]))
	}
	return out, nil
}

// UpdateDesign merges non-nil patch fields onto the existing record and
// re-stamps updatedAt. The full merged record is returned.
func (s *MemoryStore) UpdateDesign(ctx context.Context, id string, patch models.DesignPatch) (*models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.designs[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Type != nil {
		d.Type = *patch.Type
	}
	if patch.IdeaDescription != nil {
		d.IdeaDescription = *patch.IdeaDescription
	}
	if patch.TemplateID != nil {
		d.TemplateID = patch.TemplateID
	}
	if patch.DesignData != nil {
		d.DesignData = cloneDoc(patch.DesignData)
	}
	if patch.Size != nil {
		d.Size = *patch.Size
	}
	if patch.ColorPreference != nil {
		d.ColorPreference = *patch.ColorPreference
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	d.UpdatedAt = time.Now().UTC()

	s.designs[id] = d

	slog.Debug("Design updated", "design_id", id)
	d = copyDesign(d)
	return &d, nil
}

// DeleteDesign removes a design permanently. It reports whether a record
// existed; deleting an absent id returns false, never an error.
func (s *MemoryStore) DeleteDesign(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.designs[id]; !ok {
		return false, nil
	}
	delete(s.designs, id)
	for i, did := range s.designOrder {
		if did == id {
			s.designOrder = append(s.designOrder[:i], s.designOrder[i+1:]...)
			break
		}
	}

	slog.Debug("Design deleted", "design_id", id)
	return true, nil
}

// CreatePrintOrder assigns a fresh id, applies field defaults and stamps
// createdAt. DesignID is stored as given; it is not checked against
// existing designs.
func (s *MemoryStore) CreatePrintOrder(ctx context.Context, insert models.InsertPrintOrder) (*models.PrintOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := models.PrintOrder{
		ID:              uuid.NewString(),
		DesignID:        insert.DesignID,
		Quantity:        1,
		Size:            insert.Size,
		PaperType:       insert.PaperType,
		FinishType:      insert.FinishType,
		Status:          insert.Status,
		ShippingAddress: cloneDoc(insert.ShippingAddress),
		CreatedAt:       time.Now().UTC(),
	}
	if insert.Quantity != nil && *insert.Quantity != 0 {
		o.Quantity = *insert.Quantity
	}
	if insert.Price != nil {
		o.Price = *insert.Price
	}
	if o.PaperType == "" {
		o.PaperType = "standard"
	}
	if o.FinishType == "" {
		o.FinishType = "matte"
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}

	s.orders[o.ID] = o
	s.orderOrder = append(s.orderOrder, o.ID)

	slog.Debug("Print order created", "order_id", o.ID, "design_id", o.DesignID)
	o = copyPrintOrder(o)
	return &o, nil
}

// GetPrintOrder returns a print order by id.
func (s *MemoryStore) GetPrintOrder(ctx context.Context, id string) (*models.PrintOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o = copyPrintOrder(o)
	return &o, nil
}

// ListPrintOrders returns all print orders in insertion order.
func (s *MemoryStore) ListPrintOrders(ctx context.Context) ([]models.PrintOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PrintOrder, 0, len(s.orderOrder))
	for _, id := range s.orderOrder {
		out = append(out, copyPrintOrder(s.orders[id]))
	}
	return out, nil
}

// cloneDoc shallow-copies an opaque document so callers cannot mutate store
// state through a returned record. Nil stays nil.
func cloneDoc(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func copyTemplate(t models.Template) models.Template {
	t.DesignData = cloneDoc(t.DesignData)
	return t
}

func copyDesign(d models.Design) models.Design {
	d.DesignData = cloneDoc(d.DesignData)
	return d
}

func copyPrintOrder(o models.PrintOrder) models.PrintOrder {
	o.ShippingAddress = cloneDoc(o.ShippingAddress)
	return o
}
