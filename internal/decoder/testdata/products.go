package testdata

import "github.com/MichalMitros/woocommerce-populator/internal/platform/models"

// Records are expected records decoded from products.json, nil where decoding fails.
var Records = []models.Record{
	&models.Simple{
		ProductFields: models.ProductFields{
			ID:            "101",
			Name:          "Classic T-Shirt & Logo",
			Slug:          "classic-t-shirt",
			Description:   "<p>Cotton t-shirt.</p>",
			SKU:           "TS-101",
			Price:         "19.99",
			StockQuantity: 12,
			Weight:        "0.2",
			Images: []models.Image{
				{URL: "https://shop.example.com/img/ts-front.jpg", Name: "ts-front"},
			},
		},
	},
	&models.Variable{
		ProductFields: models.ProductFields{
			ID:          "102",
			Name:        "Hoodie",
			Slug:        "hoodie",
			Description: "Warm hoodie.",
			Price:       "49.50",
			Images:      []models.Image{},
		},
		Attributes:   []models.Attribute{{Name: "Size", Options: []string{"S", "M"}}},
		VariationIDs: []string{"201", "202"},
	},
	&models.Variable{
		ProductFields: models.ProductFields{
			ID:            "103",
			Name:          "Mug",
			Slug:          "mug",
			SKU:           "MUG",
			Price:         "9",
			StockQuantity: 3,
			Images:        []models.Image{},
		},
		Attributes: []models.Attribute{{Name: "Color", Options: []string{"Red"}}},
		Variations: []models.Variation{
			{
				ID:            "301",
				ParentID:      "103",
				SKU:           "MUG-RED",
				Price:         "9.00",
				StockQuantity: 7,
				Weight:        "0.4",
				Attributes:    []models.AttributeValue{{Name: "Color", Option: "Red"}},
				Image:         &models.Image{URL: "https://shop.example.com/img/mug-red.jpg", Name: "mug-red"},
			},
		},
	},
	nil,
	nil,
	&models.Variation{
		ID:            "205",
		ParentID:      "102",
		SKU:           "HD-L",
		Price:         "51.00",
		StockQuantity: 1,
		Attributes:    []models.AttributeValue{{Name: "Size", Option: "L"}},
	},
}
