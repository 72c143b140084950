package populator_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/MichalMitros/woocommerce-populator/internal/platform"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/models/modelstesting"
	"github.com/MichalMitros/woocommerce-populator/internal/populator"
	"github.com/MichalMitros/woocommerce-populator/internal/populator/mocks"
	"github.com/MichalMitros/woocommerce-populator/internal/pricing"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	logger    = zerolog.Nop()
	timestamp = int64(1700000000000)
	loc       = func() *time.Location {
		loc, err := time.LoadLocation("Etc/UTC")
		if err != nil {
			panic(err)
		}
		return loc
	}()
	now      = time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	runID    = rand.Int()
	settings = populator.Settings{
		SuperadminIdentifier: "superadmin",
		ChannelCode:          "__default_channel__",
		BatchSize:            2,
		PricePolicy:          pricing.PolicyZero,
	}
	rc            = &models.RequestContext{AdministratorID: 1, ChannelID: 2, ChannelCode: "__default_channel__"}
	stockLocation = &models.StockLocation{ID: 3, Name: "Default Stock Location", ChannelID: 2}
	taxCategory   = &models.TaxCategory{ID: 4, Name: "Standard Tax", IsDefault: true}

	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

type fakeClock struct {
	timestamp int64
	now       *time.Time
}

func (c fakeClock) Timestamp() int64 { return c.timestamp }
func (c fakeClock) Now() *time.Time  { return c.now }

type testMocks struct {
	source    *mocks.Source
	storage   *mocks.Storage
	assets    *mocks.AssetImporter
	reindexer *mocks.Reindexer
}

func newMocks(t *testing.T) testMocks {
	t.Helper()

	return testMocks{
		source:    mocks.NewSource(t),
		storage:   mocks.NewStorage(t),
		assets:    mocks.NewAssetImporter(t),
		reindexer: mocks.NewReindexer(t),
	}
}

func (m testMocks) populator(s populator.Settings) *populator.Populator {
	return populator.NewPopulator(
		m.source,
		m.storage,
		m.assets,
		m.reindexer,
		s,
		&logger,
		populator.WithClock(fakeClock{timestamp: timestamp, now: &now}),
	)
}

// mockStart mocks superadmin context, run start, fetching and destination defaults.
func (m testMocks) mockStart(results []models.ParsingResult) {
	m.storage.On("SuperadminContext", mock.Anything, settings.SuperadminIdentifier, settings.ChannelCode).
		Return(rc, nil).Once()
	m.storage.On("StartRun", mock.Anything).Return(&models.Run{ID: runID, CreatedAt: now}, nil).Once()
	m.source.On("FetchAll", mock.Anything).Return(results, nil).Once()
	m.storage.On("DefaultStockLocation", mock.Anything, rc).Return(stockLocation, nil).Once()
	m.storage.On("DefaultTaxCategory", mock.Anything).Return(taxCategory, nil).Once()
}

func (m testMocks) mockFinishRun(wantRun *models.Run) {
	m.storage.On("FinishRun", mock.Anything, wantRun).Return(nil).Once()
}

func createdVariants(_ context.Context, _ *models.RequestContext, inputs []models.VariantInput) []models.Variant {
	return lo.Map(inputs, func(in models.VariantInput, ix int) models.Variant {
		return models.Variant{ID: 1000 + ix, ProductID: in.ProductID, SKU: in.SKU, Name: in.Name, Price: in.Price}
	})
}

func finishedRun(success bool, status *string, r populator.Result) *models.Run {
	return &models.Run{
		ID:                runID,
		CreatedAt:         now,
		FinishedAt:        &now,
		IsSuccess:         lo.ToPtr(success),
		StatusMessage:     status,
		FetchedRecords:    lo.ToPtr(r.Fetched),
		CreatedProducts:   lo.ToPtr(r.Created),
		SkippedProducts:   lo.ToPtr(r.Skipped),
		FailedProducts:    lo.ToPtr(r.Failed),
		DroppedVariations: lo.ToPtr(r.Dropped),
		CreatedVariants:   lo.ToPtr(r.Variants),
	}
}

func TestUnitPopulate(t *testing.T) {
	shirtImage := models.Image{URL: "https://shop.example.com/shirt.jpg", Name: "shirt"}
	mediumImage := models.Image{URL: "https://shop.example.com/hoodie-m.jpg", Name: "hoodie-m"}

	shirt := modelstesting.FakeSimple(func(p *models.Simple) {
		p.ID, p.Name, p.Slug, p.SKU, p.Price, p.StockQuantity, p.Weight = "1", "Shirt", "shirt", "SH-1", "19.99", 5, "0.3"
		p.Images = []models.Image{shirtImage}
	})
	capProduct := modelstesting.FakeSimple(func(p *models.Simple) {
		p.ID, p.Name, p.Slug, p.SKU, p.Price, p.StockQuantity, p.Weight = "2", "Cap", "", "", "", 0, ""
		p.Images = nil
	})
	hoodie := modelstesting.FakeVariable(0, func(p *models.Variable) {
		p.ID, p.Name, p.Slug, p.SKU, p.Price = "3", "Hoodie", "hoodie", "", "49.50"
		p.Images = nil
		p.Attributes = []models.Attribute{{Name: "Size", Options: []string{"S", "M"}}}
		p.Variations = []models.Variation{{
			ID: "31", ParentID: "3", StockQuantity: 2,
			Attributes: []models.AttributeValue{{Name: "Size", Option: "S"}},
		}}
	})
	hoodieMedium := modelstesting.FakeVariation("3", func(v *models.Variation) {
		v.ID, v.SKU, v.Price, v.StockQuantity, v.Weight = "32", "HD-M", "51.00", 1, "0.5"
		v.Attributes = []models.AttributeValue{{Name: "Size", Option: "M"}}
		v.Image = &mediumImage
	})
	imported := modelstesting.FakeSimple(func(p *models.Simple) { p.ID = "4" })
	mugRed := modelstesting.FakeVariation("5", func(v *models.Variation) {
		v.ID, v.SKU, v.Price, v.StockQuantity, v.Weight = "51", "", "9", 7, ""
		v.Attributes = []models.AttributeValue{{Name: "Color", Option: "Red"}}
		v.Image = nil
	})
	mugBlue := modelstesting.FakeVariation("5", func(v *models.Variation) { v.ID = "52" })
	lost := modelstesting.FakeVariation("6", func(v *models.Variation) { v.ID = "61" })

	results := []models.ParsingResult{
		{Record: shirt},
		{Record: capProduct},
		{Error: assert.AnError},
		{Record: hoodie},
		{Record: mugRed},
		{Record: hoodieMedium},
		{Record: imported},
		{Record: mugBlue},
		{Record: lost},
	}

	m := newMocks(t)
	m.mockStart(results)

	// shirt: simple product with sku and image.
	m.storage.On("FindProductByExternalID", mock.Anything, rc, "1").Return(nil, nil).Once()
	m.assets.On("ImportImages", mock.Anything, []models.Image{shirtImage}).Return([]int{11}).Once()
	m.storage.On("CreateProduct", mock.Anything, rc, &models.ProductInput{
		Name: "Shirt", Slug: "shirt", Description: shirt.Description, ExternalID: "1", AssetIDs: []int{11},
	}).Return(&models.Product{ID: 101, Name: "Shirt"}, nil).Once()
	m.storage.On("CreateVariants", mock.Anything, rc, []models.VariantInput{{
		ProductID: 101, SKU: "SH-1", Name: "Shirt - Default Variant", Price: 1999, StockOnHand: 5,
		StockLocationID: 3, TaxCategoryID: 4, Weight: lo.ToPtr("0.3"), AssetIDs: []int{11},
	}}).Return(createdVariants, nil).Once()

	// cap: simple product without sku, slug and price.
	m.storage.On("FindProductByExternalID", mock.Anything, rc, "2").Return(nil, nil).Once()
	m.assets.On("ImportImages", mock.Anything, []models.Image(nil)).Return([]int{}).Twice()
	m.storage.On("CreateProduct", mock.Anything, rc, &models.ProductInput{
		Name: "Cap", Slug: "cap", Description: capProduct.Description, ExternalID: "2", AssetIDs: []int{},
	}).Return(&models.Product{ID: 102, Name: "Cap"}, nil).Once()
	m.storage.On("CreateVariants", mock.Anything, rc, []models.VariantInput{{
		ProductID: 102, SKU: "Cap-1700000000000", Name: "Cap - Default Variant", Price: 0,
		StockLocationID: 3, TaxCategoryID: 4, AssetIDs: []int{},
	}}).Return(createdVariants, nil).Once()

	// hoodie: variable product with embedded and top-level variation.
	m.storage.On("FindProductByExternalID", mock.Anything, rc, "3").Return(nil, nil).Once()
	m.storage.On("CreateProduct", mock.Anything, rc, &models.ProductInput{
		Name: "Hoodie", Slug: "hoodie", Description: hoodie.Description, ExternalID: "3", AssetIDs: []int{},
	}).Return(&models.Product{ID: 103, Name: "Hoodie"}, nil).Once()
	m.assets.On("ImportImages", mock.Anything, []models.Image{mediumImage}).Return([]int{12}).Once()
	m.storage.On("CreateVariants", mock.Anything, rc, []models.VariantInput{
		{
			ProductID: 103, SKU: "Hoodie-1700000000000", Name: "Hoodie - S", Price: 4950, StockOnHand: 2,
			StockLocationID: 3, TaxCategoryID: 4, ExternalID: lo.ToPtr("31"),
		},
		{
			ProductID: 103, SKU: "HD-M", Name: "Hoodie - M", Price: 5100, StockOnHand: 1,
			StockLocationID: 3, TaxCategoryID: 4, ExternalID: lo.ToPtr("32"), Weight: lo.ToPtr("0.5"),
			AssetIDs: []int{12},
		},
	}).Return(createdVariants, nil).Once()

	// mug variations: parent imported earlier, blue variation already imported.
	m.storage.On("FindProductByExternalID", mock.Anything, rc, "5").
		Return(&models.Product{ID: 105, Name: "Mug"}, nil).Once()
	m.storage.On("FindVariantByExternalID", mock.Anything, rc, "51").Return(nil, nil).Once()
	m.storage.On("FindVariantByExternalID", mock.Anything, rc, "52").Return(&models.Variant{ID: 501}, nil).Once()
	m.storage.On("CreateVariants", mock.Anything, rc, []models.VariantInput{{
		ProductID: 105, SKU: "Mug-1700000000000", Name: "Mug - Red", Price: 900, StockOnHand: 7,
		StockLocationID: 3, TaxCategoryID: 4, ExternalID: lo.ToPtr("51"),
	}}).Return(createdVariants, nil).Once()

	// already imported product.
	m.storage.On("FindProductByExternalID", mock.Anything, rc, "4").Return(&models.Product{ID: 104}, nil).Once()

	// variation without parent anywhere.
	m.storage.On("FindProductByExternalID", mock.Anything, rc, "6").Return(nil, nil).Once()

	wantResult := populator.Result{Fetched: 9, Created: 3, Skipped: 1, Failed: 1, Dropped: 1, Variants: 5}
	m.reindexer.On("Reindex", mock.Anything, runID).Return(nil).Once()
	m.mockFinishRun(finishedRun(true, nil, wantResult))

	result, err := m.populator(settings).Populate(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, wantResult, *result, "should return correct summary")
	assert.Equal(t, int32(4), result.Successes(), "should count skipped products as successes")
}

func TestUnitPopulatePartialFailure(t *testing.T) {
	products := make([]*models.Simple, 0, 10)
	results := make([]models.ParsingResult, 0, 10)
	for ix := range 10 {
		product := modelstesting.FakeSimple(func(p *models.Simple) {
			p.ID = strconv.Itoa(ix + 1)
			p.Price = "1.00"
		})
		products = append(products, product)
		results = append(results, models.ParsingResult{Record: product})
	}

	m := newMocks(t)
	m.mockStart(results)

	m.storage.On("FindProductByExternalID", mock.Anything, rc, mock.Anything).Return(nil, nil).Times(10)
	m.assets.On("ImportImages", mock.Anything, mock.Anything).Return([]int{}).Times(10)
	m.storage.On("CreateProduct", mock.Anything, rc, mock.MatchedBy(func(in *models.ProductInput) bool {
		return in.ExternalID == "5"
	})).Return(nil, assert.AnError).Once()
	m.storage.On("CreateProduct", mock.Anything, rc, mock.MatchedBy(func(in *models.ProductInput) bool {
		return in.ExternalID != "5"
	})).Return(func(_ context.Context, _ *models.RequestContext, in *models.ProductInput) *models.Product {
		id, _ := strconv.Atoi(in.ExternalID)
		return &models.Product{ID: 100 + id, Name: in.Name}
	}, nil).Times(9)
	m.storage.On("CreateVariants", mock.Anything, rc, mock.Anything).Return(createdVariants, nil).Times(9)

	wantResult := populator.Result{Fetched: 10, Created: 9, Failed: 1, Variants: 9}
	m.reindexer.On("Reindex", mock.Anything, runID).Return(nil).Once()
	m.mockFinishRun(finishedRun(true, nil, wantResult))

	result, err := m.populator(settings).Populate(context.TODO())

	require.NoError(t, err, "single product failure shouldn't fail population")
	assert.Equal(t, wantResult, *result)
	m.storage.AssertNumberOfCalls(t, "CreateProduct", 10)
}

func TestUnitPopulateVariantsError(t *testing.T) {
	simple := modelstesting.FakeSimple(func(p *models.Simple) { p.Price = "2.00" })

	m := newMocks(t)
	m.mockStart([]models.ParsingResult{{Record: simple}})

	m.storage.On("FindProductByExternalID", mock.Anything, rc, simple.ID).Return(nil, nil).Once()
	m.assets.On("ImportImages", mock.Anything, mock.Anything).Return([]int{}).Once()
	m.storage.On("CreateProduct", mock.Anything, rc, mock.Anything).Return(&models.Product{ID: 1}, nil).Once()
	m.storage.On("CreateVariants", mock.Anything, rc, mock.Anything).Return(nil, assert.AnError).Once()

	wantResult := populator.Result{Fetched: 1, Failed: 1}
	m.reindexer.On("Reindex", mock.Anything, runID).Return(nil).Once()
	m.mockFinishRun(finishedRun(true, nil, wantResult))

	result, err := m.populator(settings).Populate(context.TODO())

	require.NoError(t, err)
	assert.Equal(t, wantResult, *result, "product without variant should be counted as failed")
}

func TestUnitPopulateRejectPricePolicy(t *testing.T) {
	rejectSettings := settings
	rejectSettings.PricePolicy = pricing.PolicyReject

	badSimple := modelstesting.FakeSimple(func(p *models.Simple) { p.Price = "abc" })
	badVariable := modelstesting.FakeVariable(2, func(p *models.Variable) {
		p.Variations[1].Price = ""
		p.Price = ""
	})

	m := newMocks(t)
	m.mockStart([]models.ParsingResult{{Record: badSimple}, {Record: badVariable}})

	m.storage.On("FindProductByExternalID", mock.Anything, rc, badSimple.ID).Return(nil, nil).Once()
	m.storage.On("FindProductByExternalID", mock.Anything, rc, badVariable.ID).Return(nil, nil).Once()

	wantResult := populator.Result{Fetched: 2, Failed: 2}
	m.reindexer.On("Reindex", mock.Anything, runID).Return(nil).Once()
	m.mockFinishRun(finishedRun(true, nil, wantResult))

	result, err := m.populator(rejectSettings).Populate(context.TODO())

	require.NoError(t, err)
	assert.Equal(t, wantResult, *result, "products with invalid prices should fail before any write")
	m.storage.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitPopulateBatchBoundary(t *testing.T) {
	batchSettings := settings
	batchSettings.BatchSize = 1

	variable := modelstesting.FakeVariable(0, func(p *models.Variable) {
		p.ID = "7"
		p.Price = "3.00"
		p.Images = nil
	})
	variation := modelstesting.FakeVariation("7", func(v *models.Variation) {
		v.Price = "4.00"
		v.Image = nil
	})

	m := newMocks(t)
	m.mockStart([]models.ParsingResult{{Record: variable}, {Record: variation}})

	m.storage.On("FindProductByExternalID", mock.Anything, rc, "7").Return(nil, nil).Once()
	m.assets.On("ImportImages", mock.Anything, []models.Image(nil)).Return([]int{}).Once()
	m.storage.On("CreateProduct", mock.Anything, rc, mock.Anything).Return(&models.Product{ID: 70}, nil).Once()
	m.storage.On("CreateVariants", mock.Anything, rc, mock.MatchedBy(func(in []models.VariantInput) bool {
		return len(in) == 1 && in[0].ProductID == 70 && *in[0].ExternalID == variation.ID && in[0].Price == 400
	})).Return(createdVariants, nil).Once()

	wantResult := populator.Result{Fetched: 2, Created: 1, Variants: 1}
	m.reindexer.On("Reindex", mock.Anything, runID).Return(nil).Once()
	m.mockFinishRun(finishedRun(true, nil, wantResult))

	result, err := m.populator(batchSettings).Populate(context.TODO())

	require.NoError(t, err)
	assert.Equal(t, wantResult, *result, "variation in next record should be attached to its parent")
}

func TestUnitPopulateFatalErrors(t *testing.T) {
	simple := modelstesting.FakeSimple()
	results := []models.ParsingResult{{Record: simple}}

	tests := map[string]struct {
		setup      func(m testMocks)
		wantErrMsg string
		wantResult populator.Result
	}{
		"superadmin error": {
			setup: func(m testMocks) {
				m.storage.On("SuperadminContext", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, platform.ErrSuperadminNotFound).Once()
			},
			wantErrMsg: "can't create superadmin context",
		},
		"start run error": {
			setup: func(m testMocks) {
				m.storage.On("SuperadminContext", mock.Anything, mock.Anything, mock.Anything).Return(rc, nil).Once()
				m.storage.On("StartRun", mock.Anything).Return(nil, platform.ErrAlreadyRunning).Once()
			},
			wantErrMsg: "can't start population",
		},
		"fetch error": {
			setup: func(m testMocks) {
				m.storage.On("SuperadminContext", mock.Anything, mock.Anything, mock.Anything).Return(rc, nil).Once()
				m.storage.On("StartRun", mock.Anything).Return(&models.Run{ID: runID, CreatedAt: now}, nil).Once()
				m.source.On("FetchAll", mock.Anything).Return(nil, assert.AnError).Once()
				m.mockFinishRun(finishedRun(false,
					lo.ToPtr("can't fetch products: assert.AnError general error for testing"),
					populator.Result{},
				))
			},
			wantErrMsg: "can't fetch products",
		},
		"stock location error": {
			setup: func(m testMocks) {
				m.storage.On("SuperadminContext", mock.Anything, mock.Anything, mock.Anything).Return(rc, nil).Once()
				m.storage.On("StartRun", mock.Anything).Return(&models.Run{ID: runID, CreatedAt: now}, nil).Once()
				m.source.On("FetchAll", mock.Anything).Return(results, nil).Once()
				m.storage.On("DefaultStockLocation", mock.Anything, rc).Return(nil, platform.ErrNoStockLocation).Once()
				m.mockFinishRun(finishedRun(false,
					lo.ToPtr("can't get default stock location: no default stock location"),
					populator.Result{Fetched: 1},
				))
			},
			wantErrMsg: "can't get default stock location",
			wantResult: populator.Result{Fetched: 1},
		},
		"tax category error": {
			setup: func(m testMocks) {
				m.storage.On("SuperadminContext", mock.Anything, mock.Anything, mock.Anything).Return(rc, nil).Once()
				m.storage.On("StartRun", mock.Anything).Return(&models.Run{ID: runID, CreatedAt: now}, nil).Once()
				m.source.On("FetchAll", mock.Anything).Return(results, nil).Once()
				m.storage.On("DefaultStockLocation", mock.Anything, rc).Return(stockLocation, nil).Once()
				m.storage.On("DefaultTaxCategory", mock.Anything).Return(nil, platform.ErrNoTaxCategory).Once()
				m.mockFinishRun(finishedRun(false,
					lo.ToPtr("can't get default tax category: no default tax category"),
					populator.Result{Fetched: 1},
				))
			},
			wantErrMsg: "can't get default tax category",
			wantResult: populator.Result{Fetched: 1},
		},
		"reindex error": {
			setup: func(m testMocks) {
				m.mockStart(results)
				m.storage.On("FindProductByExternalID", mock.Anything, rc, simple.ID).Return(&models.Product{ID: 1}, nil).Once()
				m.reindexer.On("Reindex", mock.Anything, runID).Return(assert.AnError).Once()
				m.mockFinishRun(finishedRun(false,
					lo.ToPtr("can't reindex search: assert.AnError general error for testing"),
					populator.Result{Fetched: 1, Skipped: 1},
				))
			},
			wantErrMsg: "can't reindex search",
			wantResult: populator.Result{Fetched: 1, Skipped: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newMocks(t)
			tt.setup(m)

			result, err := m.populator(settings).Populate(context.TODO())

			require.ErrorContains(t, err, tt.wantErrMsg, "should return correct error")
			assert.Equal(t, tt.wantResult, *result)
		})
	}
}

func TestUnitPopulateFinishRunError(t *testing.T) {
	m := newMocks(t)
	m.mockStart(nil)
	m.reindexer.On("Reindex", mock.Anything, runID).Return(nil).Once()
	m.storage.On("FinishRun", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := m.populator(settings).Populate(context.TODO())

	require.ErrorContains(t, err, "can't finish population")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
}

func TestUnitPopulateCanceled(t *testing.T) {
	first := modelstesting.FakeSimple(func(p *models.Simple) { p.ID, p.Price = "1", "1.00" })
	second := modelstesting.FakeSimple(func(p *models.Simple) { p.ID, p.Price = "2", "1.00" })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newMocks(t)
	m.mockStart([]models.ParsingResult{{Record: first}, {Record: second}})

	m.storage.On("FindProductByExternalID", mock.Anything, rc, "1").Return(nil, nil).Once()
	m.assets.On("ImportImages", mock.Anything, mock.Anything).Return([]int{}).Once()
	m.storage.On("CreateProduct", mock.Anything, rc, mock.Anything).Return(&models.Product{ID: 1}, nil).Once()
	m.storage.On("CreateVariants", mock.Anything, rc, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(createdVariants, nil).Once()
	m.storage.On("FinishRun", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }),
		mock.MatchedBy(func(run *models.Run) bool {
			return !*run.IsSuccess && *run.CreatedProducts == 1 && *run.StatusMessage == "population interrupted: context canceled"
		}),
	).Return(nil).Once()

	result, err := m.populator(settings).Populate(ctx)

	require.ErrorIs(t, err, context.Canceled, "should return cancellation error")
	assert.Equal(t, populator.Result{Fetched: 2, Created: 1, Variants: 1}, *result)
}
