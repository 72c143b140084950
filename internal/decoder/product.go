package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/samber/lo"
)

// Product is model for product items in WooCommerce REST API responses.
// It is used for products and for variations.
type Product struct {
	ID            int64             `json:"id"`
	ParentID      int64             `json:"parent_id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Type          string            `json:"type"`
	Description   string            `json:"description"`
	SKU           string            `json:"sku"`
	Price         string            `json:"price"`
	StockQuantity *int64            `json:"stock_quantity"`
	Weight        string            `json:"weight"`
	Images        []Image           `json:"images,omitempty"`
	Image         *Image            `json:"image,omitempty"`
	Attributes    []Attribute       `json:"attributes,omitempty"`
	Variations    []json.RawMessage `json:"variations,omitempty"`
}

// Image is model for product images.
type Image struct {
	ID   int64  `json:"id"`
	Src  string `json:"src"`
	Name string `json:"name"`
}

// Attribute is model for product attributes and variation attribute values.
// Products fill Options, variations fill Option.
type Attribute struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
	Option  string   `json:"option,omitempty"`
}

// toRecord validates product and converts it into models.Record.
// parentID and fallbackType are used when payload doesn't carry them (variations endpoint).
func toRecord(product *Product, parentID string, fallbackType models.RecordType) (models.Record, error) {
	if product.ID <= 0 {
		return nil, ErrMissingID
	}
	id := formatID(product.ID)

	recordType := models.RecordType(product.Type)
	if recordType == "" {
		recordType = fallbackType
	}
	if recordType == "" && product.ParentID > 0 {
		recordType = models.TypeVariation
	}

	switch recordType {
	case models.TypeSimple:
		fields, err := toProductFields(product, id)
		if err != nil {
			return nil, err
		}
		return &models.Simple{ProductFields: *fields}, nil
	case models.TypeVariable:
		variable, err := toVariable(product, id)
		if err != nil {
			return nil, err
		}
		return variable, nil
	case models.TypeVariation:
		if product.ParentID > 0 {
			parentID = formatID(product.ParentID)
		}
		if parentID == "" {
			return nil, fmt.Errorf("variation %s: %w", id, ErrMissingParent)
		}
		variation, err := toVariation(product, id, parentID)
		if err != nil {
			return nil, err
		}
		return variation, nil
	case "":
		return nil, fmt.Errorf("product %s: %w", id, ErrMissingType)
	default:
		return nil, fmt.Errorf("product %s has type %q: %w", id, recordType, ErrUnsupportedType)
	}
}

func toProductFields(product *Product, id string) (*models.ProductFields, error) {
	name := strings.TrimSpace(html.UnescapeString(product.Name))
	if name == "" {
		return nil, fmt.Errorf("product %s: %w", id, ErrMissingName)
	}

	stock, err := stockQuantity(product.StockQuantity)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, err)
	}

	images := lo.FilterMap(product.Images, func(img Image, _ int) (models.Image, bool) {
		return toImage(&img)
	})

	return &models.ProductFields{
		ID:            id,
		Name:          name,
		Slug:          product.Slug,
		Description:   product.Description,
		SKU:           strings.TrimSpace(product.SKU),
		Price:         product.Price,
		StockQuantity: stock,
		Weight:        strings.TrimSpace(product.Weight),
		Images:        images,
	}, nil
}

func toVariable(product *Product, id string) (*models.Variable, error) {
	fields, err := toProductFields(product, id)
	if err != nil {
		return nil, err
	}

	variable := &models.Variable{
		ProductFields: *fields,
		Attributes: lo.Map(product.Attributes, func(attr Attribute, _ int) models.Attribute {
			return models.Attribute{Name: attr.Name, Options: attr.Options}
		}),
	}

	for ix, raw := range product.Variations {
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '{' {
			var embedded Product
			if err := json.Unmarshal(raw, &embedded); err != nil {
				return nil, fmt.Errorf("can't decode variation %d of product %s: %w", ix, id, err)
			}
			if embedded.ID <= 0 {
				return nil, fmt.Errorf("variation %d of product %s: %w", ix, id, ErrMissingID)
			}
			variation, err := toVariation(&embedded, formatID(embedded.ID), id)
			if err != nil {
				return nil, fmt.Errorf("variation %d of product %s: %w", ix, id, err)
			}
			variable.Variations = append(variable.Variations, *variation)
			continue
		}

		var variationID int64
		if err := json.Unmarshal(raw, &variationID); err != nil {
			return nil, fmt.Errorf("can't decode variation %d of product %s: %w", ix, id, err)
		}
		variable.VariationIDs = append(variable.VariationIDs, formatID(variationID))
	}

	return variable, nil
}

func toVariation(product *Product, id, parentID string) (*models.Variation, error) {
	stock, err := stockQuantity(product.StockQuantity)
	if err != nil {
		return nil, fmt.Errorf("variation %s: %w", id, err)
	}

	variation := &models.Variation{
		ID:            id,
		ParentID:      parentID,
		SKU:           strings.TrimSpace(product.SKU),
		Price:         product.Price,
		StockQuantity: stock,
		Weight:        strings.TrimSpace(product.Weight),
		Attributes: lo.Map(product.Attributes, func(attr Attribute, _ int) models.AttributeValue {
			return models.AttributeValue{Name: attr.Name, Option: attr.Option}
		}),
	}

	if product.Image != nil {
		if img, ok := toImage(product.Image); ok {
			variation.Image = &img
		}
	}

	return variation, nil
}

// stockQuantity returns stock of product, 0 when it isn't managed.
// Stock is stored as 32-bit integer so larger values are rejected.
func stockQuantity(quantity *int64) (int, error) {
	stock := lo.FromPtr(quantity)
	if stock > math.MaxInt32 || stock < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStock, stock)
	}
	return int(stock), nil
}

func toImage(img *Image) (models.Image, bool) {
	src := strings.TrimSpace(img.Src)
	if src == "" {
		return models.Image{}, false
	}
	return models.Image{URL: src, Name: img.Name}, true
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
