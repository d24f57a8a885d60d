package models

import (
	"strings"
	"time"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
)

// Category classifies a catalog entry or holding
type Category string

const (
	CategoryCardRaw    Category = "card_raw"
	CategoryCardGraded Category = "card_graded"
	CategorySealed     Category = "sealed"
)

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryCardRaw, CategoryCardGraded, CategorySealed:
		return true
	}
	return false
}

// CatalogEntry is a master record for a collectible item
type CatalogEntry struct {
	ID          string            `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	Category    Category          `json:"category" gorm:"column:category;type:varchar(20);not null;index"`
	Name        string            `json:"name" gorm:"column:name;type:varchar(255);not null"`
	SetName     *string           `json:"set_name,omitempty" gorm:"column:set_name;type:varchar(255)"`
	Number      *string           `json:"number,omitempty" gorm:"column:number;type:varchar(50)"`
	Variant     *string           `json:"variant,omitempty" gorm:"column:variant;type:varchar(100)"`
	ImageURL    *string           `json:"image_url,omitempty" gorm:"column:image_url;type:text"`
	ExternalIDs map[string]string `json:"external_ids,omitempty" gorm:"column:external_ids;serializer:json"`
	CreatedAt   time.Time         `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (CatalogEntry) TableName() string { return "catalog_entries" }

// Validate validates the catalog entry
func (c *CatalogEntry) Validate() error {
	if !c.Category.IsValid() {
		return apperrors.NewValidation("category", "must be one of card_raw, card_graded, sealed")
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidation("name", "is required")
	}
	return nil
}

// Search limits for catalog lookups
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// CatalogFilter narrows catalog listings.
// Query matches name, set name or number case-insensitively.
type CatalogFilter struct {
	Category Category
	Name     string
	Query    string
	Limit    int
	Offset   int
}
