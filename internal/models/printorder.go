package models

import "time"

// OrderStatus represents the fulfillment state of a print order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPrinted    OrderStatus = "printed"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// PrintOrder is a fulfillment request tied to one design.
//
// DesignID is a referential hint only: it is not checked against existing
// designs at write time. Price is denominated in the smallest currency unit
// (cents); there is no currency field, a single currency is assumed. No
// status transition rules are enforced.
type PrintOrder struct {
	ID              string         `json:"id"`
	DesignID        string         `json:"designId"`
	Quantity        int            `json:"quantity"`
	Size            string         `json:"size"`
	PaperType       string         `json:"paperType"`
	FinishType      string         `json:"finishType"`
	Price           int            `json:"price"`
	Status          OrderStatus    `json:"status"`
	ShippingAddress map[string]any `json:"shippingAddress"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// InsertPrintOrder is the client-supplied shape for creating a print order.
// Quantity and Price are pointers so a valid zero survives the required
// check; quantity, paperType, finishType and status are defaulted by the
// store when omitted.
type InsertPrintOrder struct {
	DesignID        string         `json:"designId" binding:"required"`
	Quantity        *int           `json:"quantity" binding:"omitempty,min=1"`
	Size            string         `json:"size" binding:"required"`
	PaperType       string         `json:"paperType"`
	FinishType      string         `json:"finishType"`
	Price           *int           `json:"price" binding:"required,min=0"`
	Status          OrderStatus    `json:"status" binding:"omitempty,oneof=pending processing printed shipped delivered"`
	ShippingAddress map[string]any `json:"shippingAddress"`
}
