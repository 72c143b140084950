package populator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/samber/lo"
)

const (
	defaultAttributeValue = "default"
	// maxColumnLength is length of variant sku and name columns in characters.
	maxColumnLength = 255
)

// variantName returns "<product> - <values>" where values are variation options of product attributes in
// product attributes order. Attributes without option get "default".
func variantName(productName string, attributes []models.Attribute, values []models.AttributeValue) string {
	var options []string

	if len(attributes) > 0 {
		options = lo.Map(attributes, func(attr models.Attribute, _ int) string {
			value, ok := lo.Find(values, func(v models.AttributeValue) bool {
				return strings.EqualFold(v.Name, attr.Name)
			})
			if !ok || value.Option == "" {
				return defaultAttributeValue
			}
			return value.Option
		})
	} else {
		options = lo.FilterMap(values, func(v models.AttributeValue, _ int) (string, bool) {
			return v.Option, v.Option != ""
		})
	}

	if len(options) == 0 {
		options = []string{defaultAttributeValue}
	}

	return withSuffix(productName, " - "+strings.Join(options, ", "))
}

// withSuffix returns base cut to fit maxColumnLength together with suffix.
// Suffix is cut too when it doesn't fit alone.
func withSuffix(base, suffix string) string {
	limit := maxColumnLength - utf8.RuneCountInString(suffix)
	if limit < 0 {
		return string([]rune(base + suffix)[:maxColumnLength])
	}

	if runes := []rune(base); len(runes) > limit {
		return string(runes[:limit]) + suffix
	}

	return base + suffix
}

// slugify returns lowercase slug of s with runs of other characters than letters and digits replaced by "-".
func slugify(s string) string {
	var b strings.Builder
	dash := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func groupName(group *productGroup) string {
	switch product := group.product.(type) {
	case *models.Simple:
		return product.Name
	case *models.Variable:
		return product.Name
	default:
		return ""
	}
}
