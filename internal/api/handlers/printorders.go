package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/printcraft-dev/printcraft/internal/models"
	"github.com/printcraft-dev/printcraft/internal/store"
)

// PrintOrderHandler serves print order creation and reads.
type PrintOrderHandler struct {
	store store.Store
}

func NewPrintOrderHandler(s store.Store) *PrintOrderHandler {
	return &PrintOrderHandler{store: s}
}

// CreatePrintOrder godoc
// @Summary Create a print order for a finalized design
// @Description The design reference is a hint: its existence is not verified.
// @Tags print-orders
// @Accept json
// @Produce json
// @Param order body models.InsertPrintOrder true "Order details"
// @Success 201 {object} models.PrintOrder
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /print-orders [post]
func (h *PrintOrderHandler) CreatePrintOrder(c *gin.Context) {
	var insert models.InsertPrintOrder
	if err := c.ShouldBindJSON(&insert); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid order data", Errors: bindingIssues(err)})
		return
	}

	order, err := h.store.CreatePrintOrder(c.Request.Context(), insert)
	if err != nil {
		respondStoreError(c, err, "Print order", "Failed to create print order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListPrintOrders godoc
// @Summary List all print orders
// @Tags print-orders
// @Produce json
// @Success 200 {array} models.PrintOrder
// @Failure 500 {object} ErrorResponse
// @Router /print-orders [get]
func (h *PrintOrderHandler) ListPrintOrders(c *gin.Context) {
	orders, err := h.store.ListPrintOrders(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Print order", "Failed to fetch print orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetPrintOrder godoc
// @Summary Get a print order by ID
// @Tags print-orders
// @Produce json
// @Param id path string true "Print order ID"
// @Success 200 {object} models.PrintOrder
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /print-orders/{id} [get]
func (h *PrintOrderHandler) GetPrintOrder(c *gin.Context) {
	order, err := h.store.GetPrintOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Print order", "Failed to fetch print order")
		return
	}

	c.JSON(http.StatusOK, order)
}
