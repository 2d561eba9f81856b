package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/printcraft-dev/printcraft/internal/models"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	return NewMemoryStore()
}

func validInsertDesign() models.InsertDesign {
	return models.InsertDesign{
		Title:           "Banner Design",
		Type:            models.CategoryBanner,
		IdeaDescription: "grand opening",
		DesignData: map[string]any{
			"mainHeading":     "Grand Opening",
			"subtitle":        "Join us this weekend",
			"backgroundColor": "#6366F1",
			"textColor":       "#FFFFFF",
			"font":            "Inter",
		},
	}
}

// --- Template catalog ---

func TestSeedCatalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	templates, err := s.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 14 {
		t.Fatalf("expected 14 seeded templates, got %d", len(templates))
	}

	counts := map[models.Category]int{}
	for _, tpl := range templates {
		counts[tpl.Category]++
	}
	want := map[models.Category]int{
		models.CategoryBanner:  6,
		models.CategoryLeaflet: 4,
		models.CategoryPoster:  4,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("category counts = %v, want %v", counts, want)
	}

	// Seed order is stable: banners first, then leaflets, then posters.
	if templates[0].ID != "banner-1" {
		t.Errorf("expected first template banner-1, got %s", templates[0].ID)
	}
	if templates[13].ID != "poster-4" {
		t.Errorf("expected last template poster-4, got %s", templates[13].ID)
	}
}

func TestListTemplatesByCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	posters, err := s.ListTemplatesByCategory(ctx, models.CategoryPoster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posters) != 4 {
		t.Fatalf("expected 4 posters, got %d", len(posters))
	}
	for i, want := range []string{"poster-1", "poster-2", "poster-3", "poster-4"} {
		if posters[i].ID != want {
			t.Errorf("posters[%d].ID = %s, want %s", i, posters[i].ID, want)
		}
	}
}

func TestListTemplatesByCategory_Unknown(t *testing.T) {
	s := newTestStore(t)

	templates, err := s.ListTemplatesByCategory(context.Background(), "postcard")
	if err != nil {
		t.Fatalf("unknown category must not error, got %v", err)
	}
	if len(templates) != 0 {
		t.Errorf("expected empty list for unknown category, got %d entries", len(templates))
	}
}

func TestListTemplatesByCategory_UnaffectedByMutations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Mutate the other collections heavily.
	for i := 0; i < 5; i++ {
		d, err := s.CreateDesign(ctx, validInsertDesign())
		if err != nil {
			t.Fatalf("create design: %v", err)
		}
		if _, err := s.CreatePrintOrder(ctx, validInsertPrintOrder(d.ID)); err != nil {
			t.Fatalf("create print order: %v", err)
		}
		if _, err := s.DeleteDesign(ctx, d.ID); err != nil {
			t.Fatalf("delete design: %v", err)
		}
	}

	posters, err := s.ListTemplatesByCategory(ctx, models.CategoryPoster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posters) != 4 {
		t.Errorf("expected 4 posters regardless of prior mutations, got %d", len(posters))
	}
}

func TestGetTemplate(t *testing.T) {
	s := newTestStore(t)

	tpl, err := s.GetTemplate(context.Background(), "leaflet-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Name != "Real Estate" {
		t.Errorf("expected Real Estate, got %s", tpl.Name)
	}

	if _, err := s.GetTemplate(context.Background(), "unknown-id"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// --- Designs ---

func TestCreateDesign_Defaults(t *testing.T) {
	s := newTestStore(t)

	d, err := s.CreateDesign(context.Background(), validInsertDesign())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.ID == "" {
		t.Error("expected a generated id")
	}
	if d.Size != models.SizeStandard {
		t.Errorf("expected default size=standard, got %q", d.Size)
	}
	if d.ColorPreference != models.ColorAuto {
		t.Errorf("expected default colorPreference=auto, got %q", d.ColorPreference)
	}
	if d.Status != models.DesignStatusDraft {
		t.Errorf("expected default status=draft, got %q", d.Status)
	}
	if !d.CreatedAt.Equal(d.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt on create, got %v / %v", d.CreatedAt, d.UpdatedAt)
	}
}

func TestCreateDesign_ExplicitFieldsKept(t *testing.T) {
	s := newTestStore(t)

	insert := validInsertDesign()
	insert.Size = models.SizeLarge
	insert.ColorPreference = models.ColorWarm
	insert.Status = models.DesignStatusReady

	d, err := s.CreateDesign(context.Background(), insert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Size != models.SizeLarge || d.ColorPreference != models.ColorWarm || d.Status != models.DesignStatusReady {
		t.Errorf("explicit fields overridden: size=%q color=%q status=%q", d.Size, d.ColorPreference, d.Status)
	}
}

func TestCreateDesign_UniqueIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		d, err := s.CreateDesign(ctx, validInsertDesign())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[d.ID] {
			t.Fatalf("duplicate id generated: %s", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestGetDesign_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateDesign(ctx, validInsertDesign())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := s.GetDesign(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(created, fetched) {
		t.Errorf("round-trip mismatch:\ncreated: %+v\nfetched: %+v", created, fetched)
	}
}

func TestListDesigns_InsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		d, err := s.CreateDesign(ctx, validInsertDesign())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, d.ID)
	}

	designs, err := s.ListDesigns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(designs) != 5 {
		t.Fatalf("expected 5 designs, got %d", len(designs))
	}
	for i, d := range designs {
		if d.ID != ids[i] {
			t.Errorf("designs[%d].ID = %s, want %s (insertion order)", i, d.ID, ids[i])
		}
	}
}

func TestUpdateDesign_PartialMerge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateDesign(ctx, validInsertDesign())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "Renamed Banner"
	updated, err := s.UpdateDesign(ctx, created.ID, models.DesignPatch{Title: &newTitle})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("title = %q, want %q", updated.Title, newTitle)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("updatedAt went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}

	// Every field other than title and updatedAt is untouched.
	want := *created
	want.Title = newTitle
	want.UpdatedAt = updated.UpdatedAt
	if !reflect.DeepEqual(&want, updated) {
		t.Errorf("unexpected side effects:\nwant: %+v\ngot:  %+v", want, *updated)
	}
}

func TestUpdateDesign_NotFound(t *testing.T) {
	s := newTestStore(t)

	title := "x"
	if _, err := s.UpdateDesign(context.Background(), "missing", models.DesignPatch{Title: &title}); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteDesign_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d, err := s.CreateDesign(ctx, validInsertDesign())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := s.DeleteDesign(ctx, d.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("expected first delete to report true")
	}

	deleted, err = s.DeleteDesign(ctx, d.ID)
	if err != nil {
		t.Fatalf("second delete must not error, got %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}

	designs, err := s.ListDesigns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, got := range designs {
		if got.ID == d.ID {
			t.Errorf("deleted design %s still listed", d.ID)
		}
	}
}

func TestDesign_MutationIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateDesign(ctx, validInsertDesign())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the returned document must not leak into the store.
	created.DesignData["mainHeading"] = "tampered"

	fetched, err := s.GetDesign(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.DesignData["mainHeading"] != "Grand Opening" {
		t.Errorf("store state mutated through returned record: %v", fetched.DesignData["mainHeading"])
	}
}

// --- Print orders ---

func validInsertPrintOrder(designID string) models.InsertPrintOrder {
	price := 2999
	return models.InsertPrintOrder{
		DesignID: designID,
		Size:     "standard",
		Price:    &price,
	}
}

func TestCreatePrintOrder_Defaults(t *testing.T) {
	s := newTestStore(t)

	o, err := s.CreatePrintOrder(context.Background(), validInsertPrintOrder("some-design"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.ID == "" {
		t.Error("expected a generated id")
	}
	if o.Quantity != 1 {
		t.Errorf("expected default quantity=1, got %d", o.Quantity)
	}
	if o.PaperType != "standard" {
		t.Errorf("expected default paperType=standard, got %q", o.PaperType)
	}
	if o.FinishType != "matte" {
		t.Errorf("expected default finishType=matte, got %q", o.FinishType)
	}
	if o.Status != models.OrderStatusPending {
		t.Errorf("expected default status=pending, got %q", o.Status)
	}
	if o.Price != 2999 {
		t.Errorf("price = %d, want 2999", o.Price)
	}
	if o.CreatedAt.IsZero() {
		t.Error("expected createdAt to be stamped")
	}
}

func TestCreatePrintOrder_ZeroPrice(t *testing.T) {
	s := newTestStore(t)

	price := 0
	o, err := s.CreatePrintOrder(context.Background(), models.InsertPrintOrder{
		DesignID: "some-design",
		Size:     "large",
		Price:    &price,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Price != 0 {
		t.Errorf("price = %d, want 0", o.Price)
	}
}

func TestCreatePrintOrder_DanglingDesignAccepted(t *testing.T) {
	s := newTestStore(t)

	// DesignID is a referential hint, not an enforced foreign key.
	o, err := s.CreatePrintOrder(context.Background(), validInsertPrintOrder("no-such-design"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.DesignID != "no-such-design" {
		t.Errorf("designId = %q, want no-such-design", o.DesignID)
	}
}

func TestGetPrintOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreatePrintOrder(ctx, validInsertPrintOrder("d1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := s.GetPrintOrder(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(created, fetched) {
		t.Errorf("round-trip mismatch:\ncreated: %+v\nfetched: %+v", created, fetched)
	}

	if _, err := s.GetPrintOrder(ctx, "missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPrintOrders_InsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		o, err := s.CreatePrintOrder(ctx, validInsertPrintOrder("d1"))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, o.ID)
	}

	orders, err := s.ListPrintOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, o := range orders {
		if o.ID != ids[i] {
			t.Errorf("orders[%d].ID = %s, want %s (insertion order)", i, o.ID, ids[i])
		}
	}
}
