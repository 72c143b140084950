package modelstesting

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/go-faker/faker/v4"
)

// FakeSimple returns models.Simple with fake data and random number of fake images.
func FakeSimple(ops ...func(p *models.Simple)) *models.Simple {
	product := &models.Simple{
		ProductFields: fakeProductFields(),
	}

	for _, op := range ops {
		op(product)
	}

	return product
}

// FakeVariable returns models.Variable with fake data and provided number of embedded fake variations.
func FakeVariable(variations int, ops ...func(p *models.Variable)) *models.Variable {
	product := &models.Variable{
		ProductFields: fakeProductFields(),
		Attributes: []models.Attribute{
			{Name: faker.Word(), Options: []string{faker.Word(), faker.Word()}},
		},
	}

	for range variations {
		product.Variations = append(product.Variations, *FakeVariation(product.ID))
	}

	for _, op := range ops {
		op(product)
	}

	return product
}

// FakeVariation returns models.Variation of parent with provided id with fake data.
func FakeVariation(parentID string, ops ...func(v *models.Variation)) *models.Variation {
	variation := &models.Variation{
		ID:            fakeID(),
		ParentID:      parentID,
		SKU:           faker.Word(),
		Price:         fakePrice(),
		StockQuantity: rand.Intn(100),
		Weight:        fakePrice(),
		Attributes: []models.AttributeValue{
			{Name: faker.Word(), Option: faker.Word()},
		},
	}

	for _, op := range ops {
		op(variation)
	}

	return variation
}

// FakeImage returns models.Image with fake data.
func FakeImage() models.Image {
	return models.Image{
		URL:  faker.URL(),
		Name: faker.Word(),
	}
}

func fakeProductFields() models.ProductFields {
	return models.ProductFields{
		ID:            fakeID(),
		Name:          faker.Word(),
		Slug:          faker.Username(),
		Description:   faker.Sentence(),
		SKU:           faker.Word(),
		Price:         fakePrice(),
		StockQuantity: rand.Intn(100),
		Weight:        fakePrice(),
		Images:        fakeImages(),
	}
}

func fakeImages() []models.Image {
	imagesLen := rand.Intn(3)
	images := make([]models.Image, 0, imagesLen)
	for range imagesLen {
		images = append(images, FakeImage())
	}

	return images
}

func fakeID() string {
	return strconv.Itoa(rand.Intn(1_000_000) + 1)
}

func fakePrice() string {
	return fmt.Sprintf("%d.%02d", rand.Intn(1000), rand.Intn(100))
}
