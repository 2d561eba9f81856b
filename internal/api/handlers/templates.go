package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/printcraft-dev/printcraft/internal/models"
	"github.com/printcraft-dev/printcraft/internal/store"
)

// TemplateHandler serves the read-only template catalog.
type TemplateHandler struct {
	store store.Store
}

func NewTemplateHandler(s store.Store) *TemplateHandler {
	return &TemplateHandler{store: s}
}

// ListTemplates godoc
// @Summary List templates, optionally filtered by category
// @Tags templates
// @Produce json
// @Param category query string false "Template category" Enums(banner, leaflet, poster)
// @Success 200 {array} models.Template
// @Failure 500 {object} ErrorResponse
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var (
		templates []models.Template
		err       error
	)

	// An unknown category yields an empty list, not an error.
	if category := c.Query("category"); category != "" {
		templates, err = h.store.ListTemplatesByCategory(c.Request.Context(), models.Category(category))
	} else {
		templates, err = h.store.ListTemplates(c.Request.Context())
	}
	if err != nil {
		respondStoreError(c, err, "Template", "Failed to fetch templates")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate godoc
// @Summary Get a template by ID
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} models.Template
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	template, err := h.store.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Template", "Failed to fetch template")
		return
	}

	c.JSON(http.StatusOK, template)
}
