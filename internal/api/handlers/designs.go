package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/printcraft-dev/printcraft/internal/models"
	"github.com/printcraft-dev/printcraft/internal/store"
)

// DesignHandler serves the design CRUD lifecycle and the mock PDF export.
type DesignHandler struct {
	store store.Store
}

func NewDesignHandler(s store.Store) *DesignHandler {
	return &DesignHandler{store: s}
}

// PDFExport describes a fabricated PDF export. No file is ever produced; the
// endpoint simulates success only.
type PDFExport struct {
	DesignID    string `json:"designId"`
	FileName    string `json:"fileName"`
	DownloadURL string `json:"downloadUrl"`
	Size        string `json:"size"`
	Pages       int    `json:"pages"`
	Format      string `json:"format"`
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CreateDesign godoc
// @Summary Create a new design
// @Tags designs
// @Accept json
// @Produce json
// @Param design body models.InsertDesign true "Design details"
// @Success 201 {object} models.Design
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /designs [post]
func (h *DesignHandler) CreateDesign(c *gin.Context) {
	var insert models.InsertDesign
	if err := c.ShouldBindJSON(&insert); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid design data", Errors: bindingIssues(err)})
		return
	}

	design, err := h.store.CreateDesign(c.Request.Context(), insert)
	if err != nil {
		respondStoreError(c, err, "Design", "Failed to create design")
		return
	}

	c.JSON(http.StatusCreated, design)
}

// ListDesigns godoc
// @Summary List all designs
// @Tags designs
// @Produce json
// @Success 200 {array} models.Design
// @Failure 500 {object} ErrorResponse
// @Router /designs [get]
func (h *DesignHandler) ListDesigns(c *gin.Context) {
	designs, err := h.store.ListDesigns(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Design", "Failed to fetch designs")
		return
	}

	c.JSON(http.StatusOK, designs)
}

// GetDesign godoc
// @Summary Get a design by ID
// @Tags designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} models.Design
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /designs/{id} [get]
func (h *DesignHandler) GetDesign(c *gin.Context) {
	design, err := h.store.GetDesign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Design", "Failed to fetch design")
		return
	}

	c.JSON(http.StatusOK, design)
}

// UpdateDesign godoc
// @Summary Partially update a design
// @Description Merges the supplied fields onto the existing design; omitted fields are left untouched.
// @Tags designs
// @Accept json
// @Produce json
// @Param id path string true "Design ID"
// @Param design body models.DesignPatch true "Fields to update"
// @Success 200 {object} models.Design
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /designs/{id} [put]
func (h *DesignHandler) UpdateDesign(c *gin.Context) {
	var patch models.DesignPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid design data", Errors: bindingIssues(err)})
		return
	}

	design, err := h.store.UpdateDesign(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "Design", "Failed to update design")
		return
	}

	c.JSON(http.StatusOK, design)
}

// DeleteDesign godoc
// @Summary Delete a design permanently
// @Tags designs
// @Param id path string true "Design ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /designs/{id} [delete]
func (h *DesignHandler) DeleteDesign(c *gin.Context) {
	deleted, err := h.store.DeleteDesign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Design", "Failed to delete design")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Design not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GeneratePDF godoc
// @Summary Generate a PDF export for a design (mock)
// @Description Fabricates an export descriptor. No file is produced.
// @Tags designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} PDFExport
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /designs/{id}/pdf [post]
func (h *DesignHandler) GeneratePDF(c *gin.Context) {
	design, err := h.store.GetDesign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Design", "Failed to generate PDF")
		return
	}

	c.JSON(http.StatusOK, PDFExport{
		DesignID:    design.ID,
		FileName:    pdfFileName(design.Title),
		DownloadURL: "/api/downloads/" + design.ID + ".pdf",
		Size:        "2.5MB",
		Pages:       1,
		Format:      string(design.Size),
	})
}

// pdfFileName builds the export file name from a design title, with
// whitespace runs collapsed to single underscores.
func pdfFileName(title string) string {
	return whitespaceRe.ReplaceAllString(title, "_") + ".pdf"
}
