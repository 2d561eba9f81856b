package models

import "time"

// Size represents the requested print dimensions of a design.
type Size string

const (
	SizeStandard Size = "standard"
	SizeLarge    Size = "large"
	SizeSmall    Size = "small"
	SizeCustom   Size = "custom"
)

// ColorPreference steers the color direction of a generated design.
type ColorPreference string

const (
	ColorAuto         ColorPreference = "auto"
	ColorBright       ColorPreference = "bright"
	ColorProfessional ColorPreference = "professional"
	ColorDark         ColorPreference = "dark"
	ColorWarm         ColorPreference = "warm"
)

// DesignStatus represents the state of a design in its lifecycle.
type DesignStatus string

const (
	DesignStatusDraft    DesignStatus = "draft"
	DesignStatusReady    DesignStatus = "ready"
	DesignStatusPrinting DesignStatus = "printing"
)

// Design is a user's in-progress or completed print artifact.
//
// TemplateID is a weak reference to the template catalog: it is never
// validated against existing templates and a dangling id is not an error.
// DesignData mirrors the live editor state as an opaque document; by
// convention it carries backgroundColor, textColor, font, mainHeading and
// subtitle keys, but none of them are enforced.
type Design struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Type            Category        `json:"type"`
	IdeaDescription string          `json:"ideaDescription"`
	TemplateID      *string         `json:"templateId"`
	DesignData      map[string]any  `json:"designData"`
	Size            Size            `json:"size"`
	ColorPreference ColorPreference `json:"colorPreference"`
	Status          DesignStatus    `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// InsertDesign is the client-supplied shape for creating a design. Server
// generated fields (id, timestamps) are absent; size, colorPreference and
// status are defaulted by the store when omitted.
type InsertDesign struct {
	Title           string          `json:"title" binding:"required"`
	Type            Category        `json:"type" binding:"required,oneof=banner leaflet poster"`
	IdeaDescription string          `json:"ideaDescription" binding:"required"`
	TemplateID      *string         `json:"templateId"`
	DesignData      map[string]any  `json:"designData" binding:"required"`
	Size            Size            `json:"size" binding:"omitempty,oneof=standard large small custom"`
	ColorPreference ColorPreference `json:"colorPreference" binding:"omitempty,oneof=auto bright professional dark warm"`
	Status          DesignStatus    `json:"status" binding:"omitempty,oneof=draft ready printing"`
}

// DesignPatch is InsertDesign with every field optional. Nil fields are left
// untouched on update, they are never reset to a zero value.
type DesignPatch struct {
	Title           *string          `json:"title" binding:"omitempty,min=1"`
	Type            *Category        `json:"type" binding:"omitempty,oneof=banner leaflet poster"`
	IdeaDescription *string          `json:"ideaDescription"`
	TemplateID      *string          `json:"templateId"`
	DesignData      map[string]any   `json:"designData"`
	Size            *Size            `json:"size" binding:"omitempty,oneof=standard large small custom"`
	ColorPreference *ColorPreference `json:"colorPreference" binding:"omitempty,oneof=auto bright professional dark warm"`
	Status          *DesignStatus    `json:"status" binding:"omitempty,oneof=draft ready printing"`
}
