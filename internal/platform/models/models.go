package models

import "time"

// RecordType is WooCommerce product type tag.
type RecordType string

const (
	// TypeSimple is product with single implicit variant.
	TypeSimple RecordType = "simple"
	// TypeVariable is product with many variations.
	TypeVariable RecordType = "variable"
	// TypeVariation is single variation of variable product.
	TypeVariation RecordType = "variation"
)

// Record is source catalog record. It is one of *Simple, *Variable or *Variation.
type Record interface {
	// ExternalID returns id assigned by source store.
	ExternalID() string
	// Type returns record type tag.
	Type() RecordType

	isRecord()
}

// ParsingResult contains decoded record with decoding error if there is any.
type ParsingResult struct {
	Record Record
	Error  error
}

// Image is reference to product image.
type Image struct {
	URL  string
	Name string
}

// Attribute is variable product attribute definition.
type Attribute struct {
	Name    string
	Options []string
}

// AttributeValue is attribute option chosen by variation.
type AttributeValue struct {
	Name   string
	Option string
}

// ProductFields are fields shared by simple and variable products.
type ProductFields struct {
	ID            string
	Name          string
	Slug          string
	Description   string
	SKU           string
	Price         string
	StockQuantity int
	Weight        string
	Images        []Image
}

// ExternalID returns source product id.
func (p *ProductFields) ExternalID() string { return p.ID }

// Simple is product with single implicit variant.
type Simple struct {
	ProductFields
}

// Type returns TypeSimple.
func (*Simple) Type() RecordType { return TypeSimple }
func (*Simple) isRecord()        {}

// Variable is product whose variants are its variations.
type Variable struct {
	ProductFields
	Attributes []Attribute
	// Variations are variation records embedded in product payload.
	Variations []Variation
	// VariationIDs are ids of variations which weren't embedded in product payload.
	VariationIDs []string
}

// Type returns TypeVariable.
func (*Variable) Type() RecordType { return TypeVariable }
func (*Variable) isRecord()        {}

// Variation is single variation of variable product.
type Variation struct {
	ID            string
	ParentID      string
	SKU           string
	Price         string
	StockQuantity int
	Weight        string
	Attributes    []AttributeValue
	Image         *Image
}

// ExternalID returns source variation id.
func (v *Variation) ExternalID() string { return v.ID }

// Type returns TypeVariation.
func (*Variation) Type() RecordType { return TypeVariation }
func (*Variation) isRecord()        {}

// RequestContext is privileged actor on whose behalf destination writes are done.
type RequestContext struct {
	AdministratorID int
	ChannelID       int
	ChannelCode     string
}

// StockLocation is destination stock location.
type StockLocation struct {
	ID        int
	Name      string
	ChannelID int
}

// TaxCategory is destination tax category.
type TaxCategory struct {
	ID        int
	Name      string
	IsDefault bool
}

// Product is destination product.
type Product struct {
	ID              int
	CreatedAt       time.Time
	DeletedAt       *time.Time
	ChannelID       int
	Name            string
	Slug            string
	Description     string
	Enabled         bool
	FeaturedAssetID *int
	WooCommerceID   *string
}

// ProductInput is input for product creation.
type ProductInput struct {
	Name        string
	Slug        string
	Description string
	ExternalID  string
	AssetIDs    []int
}

// Variant is destination product variant.
type Variant struct {
	ID              int
	ProductID       int
	SKU             string
	Name            string
	Price           int64
	TaxCategoryID   int
	FeaturedAssetID *int
	ExternalID      *string
	Weight          *string
}

// VariantInput is input for variant creation.
type VariantInput struct {
	ProductID       int
	SKU             string
	Name            string
	Price           int64
	StockOnHand     int
	StockLocationID int
	TaxCategoryID   int
	ExternalID      *string
	Weight          *string
	AssetIDs        []int
}

// Asset is destination asset.
type Asset struct {
	ID       int
	Name     string
	Type     string
	MimeType string
	FileSize int
	Source   string
	Preview  string
}

// Run is population process run model.
type Run struct {
	ID                int
	CreatedAt         time.Time
	FinishedAt        *time.Time
	IsSuccess         *bool
	StatusMessage     *string
	FetchedRecords    *int32
	CreatedProducts   *int32
	SkippedProducts   *int32
	FailedProducts    *int32
	DroppedVariations *int32
	CreatedVariants   *int32
}
