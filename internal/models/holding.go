package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
)

// Holding is one portfolio line: N units of an item.
// CatalogID is a lookup key, not ownership; the entry it names may be gone.
type Holding struct {
	ID               string           `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	OwnerID          *string          `json:"owner_id,omitempty" gorm:"column:owner_id;type:varchar(64);index"`
	CatalogID        *string          `json:"catalog_id,omitempty" gorm:"column:catalog_id;type:varchar(36);index"`
	Category         Category         `json:"category" gorm:"column:category;type:varchar(20);not null"`
	Name             string           `json:"name" gorm:"column:name;type:varchar(255);not null"`
	SetName          *string          `json:"set_name,omitempty" gorm:"column:set_name;type:varchar(255)"`
	Number           *string          `json:"number,omitempty" gorm:"column:number;type:varchar(50)"`
	Variant          *string          `json:"variant,omitempty" gorm:"column:variant;type:varchar(100)"`
	Condition        *Condition       `json:"condition,omitempty" gorm:"column:condition;type:varchar(20)"`
	IsGraded         bool             `json:"is_graded" gorm:"column:is_graded;not null;default:false"`
	GradeService     *string          `json:"grade_service,omitempty" gorm:"column:grade_service;type:varchar(50)"`
	GradeScore       *decimal.Decimal `json:"grade_score,omitempty" gorm:"column:grade_score;type:decimal(4,1)"`
	GradeLabel       *string          `json:"grade_label,omitempty" gorm:"column:grade_label;type:varchar(50)"`
	Quantity         int              `json:"quantity" gorm:"column:quantity;not null;default:1"`
	PurchasePrice    decimal.Decimal  `json:"purchase_price" gorm:"column:purchase_price;type:decimal(20,8);not null;default:0"`
	PurchaseCurrency string           `json:"purchase_currency" gorm:"column:purchase_currency;type:varchar(10);not null"`
	PurchaseDate     *time.Time       `json:"purchase_date,omitempty" gorm:"column:purchase_date"`
	Source           *string          `json:"source,omitempty" gorm:"column:source;type:varchar(100)"`
	CreatedAt        time.Time        `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time        `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Holding) TableName() string { return "holdings" }

// Condition is the physical state of a raw card
type Condition string

const (
	ConditionMint      Condition = "Mint"
	ConditionNearMint  Condition = "Near Mint"
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionPlayed    Condition = "Played"
	ConditionPoor      Condition = "Poor"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionMint, ConditionNearMint, ConditionExcellent, ConditionGood, ConditionPlayed, ConditionPoor:
		return true
	}
	return false
}

// ApplyDefaults fills quantity and currency when the caller left them out
func (h *Holding) ApplyDefaults() {
	if h.Quantity == 0 {
		h.Quantity = 1
	}
	h.PurchaseCurrency = strings.ToUpper(strings.TrimSpace(h.PurchaseCurrency))
	if h.PurchaseCurrency == "" {
		h.PurchaseCurrency = ReferenceCurrency
	}
}

// Validate validates the holding
func (h *Holding) Validate() error {
	if !h.Category.IsValid() {
		return apperrors.NewValidation("category", "must be one of card_raw, card_graded, sealed")
	}
	if strings.TrimSpace(h.Name) == "" {
		return apperrors.NewValidation("name", "is required")
	}
	if h.Quantity < 1 {
		return apperrors.NewValidation("quantity", "must be at least 1")
	}
	if h.PurchasePrice.IsNegative() {
		return apperrors.NewValidation("purchase_price", "must not be negative")
	}
	if strings.TrimSpace(h.PurchaseCurrency) == "" {
		return apperrors.NewValidation("purchase_currency", "is required")
	}
	if h.Condition != nil && !h.Condition.IsValid() {
		return apperrors.NewValidation("condition", "must be one of Mint, Near Mint, Excellent, Good, Played, Poor")
	}
	if h.GradeScore != nil && (h.GradeScore.IsNegative() || h.GradeScore.GreaterThan(decimal.NewFromInt(10))) {
		return apperrors.NewValidation("grade_score", "must be between 0 and 10")
	}
	return nil
}

// HasCatalogRef reports whether the holding points at a catalog entry
func (h *Holding) HasCatalogRef() bool {
	return h.CatalogID != nil && *h.CatalogID != ""
}

// FillFromCatalog copies descriptive fields the holding leaves blank
func (h *Holding) FillFromCatalog(entry *CatalogEntry) {
	if h.Category == "" {
		h.Category = entry.Category
	}
	if h.Name == "" {
		h.Name = entry.Name
	}
	if h.SetName == nil {
		h.SetName = entry.SetName
	}
	if h.Number == nil {
		h.Number = entry.Number
	}
	if h.Variant == nil {
		h.Variant = entry.Variant
	}
}

// HoldingUpdate lists the only fields that may change after creation.
// Nil means "leave as is".
type HoldingUpdate struct {
	PurchasePrice    *decimal.Decimal `json:"purchase_price,omitempty"`
	PurchaseCurrency *string          `json:"purchase_currency,omitempty"`
	Condition        *Condition       `json:"condition,omitempty"`
	IsGraded         *bool            `json:"is_graded,omitempty"`
	GradeService     *string          `json:"grade_service,omitempty"`
	GradeScore       *decimal.Decimal `json:"grade_score,omitempty"`
	GradeLabel       *string          `json:"grade_label,omitempty"`
	Quantity         *int             `json:"quantity,omitempty"`
	PurchaseDate     *time.Time       `json:"purchase_date,omitempty"`
}

// IsEmpty reports whether the update carries no changes
func (u *HoldingUpdate) IsEmpty() bool {
	return u.PurchasePrice == nil && u.PurchaseCurrency == nil && u.Condition == nil &&
		u.IsGraded == nil && u.GradeService == nil && u.GradeScore == nil && u.GradeLabel == nil &&
		u.Quantity == nil && u.PurchaseDate == nil
}

// ApplyTo writes the set fields onto h
func (u *HoldingUpdate) ApplyTo(h *Holding) {
	if u.PurchasePrice != nil {
		h.PurchasePrice = *u.PurchasePrice
	}
	if u.PurchaseCurrency != nil {
		h.PurchaseCurrency = strings.ToUpper(*u.PurchaseCurrency)
	}
	if u.Condition != nil {
		h.Condition = u.Condition
	}
	if u.IsGraded != nil {
		h.IsGraded = *u.IsGraded
	}
	if u.GradeService != nil {
		h.GradeService = u.GradeService
	}
	if u.GradeScore != nil {
		h.GradeScore = u.GradeScore
	}
	if u.GradeLabel != nil {
		h.GradeLabel = u.GradeLabel
	}
	if u.Quantity != nil {
		h.Quantity = *u.Quantity
	}
	if u.PurchaseDate != nil {
		h.PurchaseDate = u.PurchaseDate
	}
}

// HoldingFilter narrows holding listings
type HoldingFilter struct {
	OwnerID   string
	CatalogID string
	Category  Category
}
