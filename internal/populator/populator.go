package populator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/MichalMitros/woocommerce-populator/internal/pricing"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Source --filename source.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name AssetImporter --filename assetimporter.go
//go:generate mockery --name Reindexer --filename reindexer.go

// DefaultBatchSize is number of product groups in batch when none is configured.
const DefaultBatchSize = 10

// Source fetches all source records.
type Source interface {
	FetchAll(ctx context.Context) ([]models.ParsingResult, error)
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp in milliseconds.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is destination catalog and runs storage.
type Storage interface {
	// StartRun creates new run if there is no run in progress.
	StartRun(ctx context.Context) (*models.Run, error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// SuperadminContext returns request context of superadmin in channel with provided code.
	SuperadminContext(ctx context.Context, identifier, channelCode string) (*models.RequestContext, error)
	// DefaultStockLocation returns default stock location of request context channel.
	DefaultStockLocation(ctx context.Context, rc *models.RequestContext) (*models.StockLocation, error)
	// DefaultTaxCategory returns default tax category.
	DefaultTaxCategory(ctx context.Context) (*models.TaxCategory, error)
	// FindProductByExternalID returns not deleted product imported from source product with provided id or nil.
	FindProductByExternalID(ctx context.Context, rc *models.RequestContext, externalID string) (*models.Product, error)
	// FindVariantByExternalID returns not deleted variant imported from source variation with provided id or nil.
	FindVariantByExternalID(ctx context.Context, rc *models.RequestContext, externalID string) (*models.Variant, error)
	// CreateProduct creates product with its assets.
	CreateProduct(ctx context.Context, rc *models.RequestContext, input *models.ProductInput) (*models.Product, error)
	// CreateVariants creates variants with stock levels and assets.
	CreateVariants(ctx context.Context, rc *models.RequestContext, inputs []models.VariantInput) ([]models.Variant, error)
}

// AssetImporter imports images as assets and returns ids of created assets.
type AssetImporter interface {
	ImportImages(ctx context.Context, images []models.Image) []int
}

// Reindexer rebuilds search index after population.
type Reindexer interface {
	Reindex(ctx context.Context, runID int) error
}

// Settings are population settings.
type Settings struct {
	SuperadminIdentifier string
	ChannelCode          string
	BatchSize            int
	PricePolicy          pricing.Policy
}

// Result is population summary.
type Result struct {
	Fetched  int32
	Created  int32
	Skipped  int32
	Failed   int32
	Dropped  int32
	Variants int32
}

// Successes returns number of processed products which didn't fail. Skipped products count as successes.
func (r Result) Successes() int32 {
	return r.Created + r.Skipped
}

// Option is custom configuration of Populator.
type Option func(p *Populator)

// Populator imports source catalog into destination store.
type Populator struct {
	source    Source
	storage   Storage
	assets    AssetImporter
	reindexer Reindexer
	settings  Settings
	clock     Clock
	logger    *zerolog.Logger
}

// NewPopulator returns new Populator.
func NewPopulator(
	source Source,
	storage Storage,
	assets AssetImporter,
	reindexer Reindexer,
	settings Settings,
	logger *zerolog.Logger,
	ops ...Option,
) *Populator {
	if settings.BatchSize <= 0 {
		settings.BatchSize = DefaultBatchSize
	}
	if settings.PricePolicy == "" {
		settings.PricePolicy = pricing.PolicyZero
	}

	pop := &Populator{
		source:    source,
		storage:   storage,
		assets:    assets,
		reindexer: reindexer,
		settings:  settings,
		clock:     systemClock{},
		logger:    logger,
	}

	for _, op := range ops {
		op(pop)
	}

	return pop
}

// importEnv is destination state shared by all product groups of a run.
type importEnv struct {
	rc            *models.RequestContext
	stockLocation *models.StockLocation
	taxCategory   *models.TaxCategory
}

// Populate fetches whole source catalog and imports it.
// Errors of single products are counted and logged, returned error means population failed as a whole.
func (p *Populator) Populate(ctx context.Context) (*Result, error) {
	result := &Result{}

	rc, err := p.storage.SuperadminContext(ctx, p.settings.SuperadminIdentifier, p.settings.ChannelCode)
	if err != nil {
		return result, fmt.Errorf("can't create superadmin context: %w", err)
	}

	// insert new run in storage.
	run, err := p.storage.StartRun(ctx)
	if err != nil {
		return result, fmt.Errorf("can't start population: %w", err)
	}

	logger := p.logger.With().Int("runID", run.ID).Logger()

	// fetch source catalog.
	results, err := p.source.FetchAll(ctx)
	if err != nil {
		return result, p.finishPopulation(ctx, run, result, fmt.Errorf("can't fetch products: %w", err))
	}
	result.Fetched = int32(len(results))
	logger.Info().Int32("records", result.Fetched).Msg("total records fetched")

	env, err := p.importEnv(ctx, rc)
	if err != nil {
		return result, p.finishPopulation(ctx, run, result, err)
	}

	records := p.filterRecords(&logger, results, result)
	groups := groupRecords(records)
	batches := createBatches(groups, p.settings.BatchSize)

	for ix, batch := range batches {
		logger.Debug().Int("batch", ix+1).Int("batches", len(batches)).Msg("processing batch")
		if err := p.processBatch(ctx, &logger, env, batch, result); err != nil {
			return result, p.finishPopulation(ctx, run, result, err)
		}
	}

	if err := p.reindexer.Reindex(ctx, run.ID); err != nil {
		return result, p.finishPopulation(ctx, run, result, fmt.Errorf("can't reindex search: %w", err))
	}

	return result, p.finishPopulation(ctx, run, result, nil)
}

func (p *Populator) importEnv(ctx context.Context, rc *models.RequestContext) (*importEnv, error) {
	stockLocation, err := p.storage.DefaultStockLocation(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("can't get default stock location: %w", err)
	}

	taxCategory, err := p.storage.DefaultTaxCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get default tax category: %w", err)
	}

	return &importEnv{
		rc:            rc,
		stockLocation: stockLocation,
		taxCategory:   taxCategory,
	}, nil
}

// filterRecords returns valid records and counts invalid ones as failed.
func (p *Populator) filterRecords(logger *zerolog.Logger, results []models.ParsingResult, result *Result) []models.Record {
	records := make([]models.Record, 0, len(results))

	for _, res := range results {
		if res.Error != nil || res.Record == nil {
			result.Failed++
			logger.Warn().Err(res.Error).Msg("skipping invalid record")
			continue
		}
		records = append(records, res.Record)
	}

	return records
}

// processBatch processes groups one by one. Only context cancellation stops processing.
func (p *Populator) processBatch(
	ctx context.Context,
	logger *zerolog.Logger,
	env *importEnv,
	batch []*productGroup,
	result *Result,
) error {
	for _, group := range batch {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("population interrupted: %w", err)
		}

		groupLogger := logger.With().Str("externalID", group.externalID()).Logger()

		err := p.processGroup(ctx, &groupLogger, env, group, result)
		if err == nil {
			continue
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("population interrupted: %w", err)
		}

		result.Failed++
		groupLogger.Error().Err(err).Str("name", groupName(group)).Msg("can't process product")
	}

	return nil
}

func (p *Populator) processGroup(
	ctx context.Context,
	logger *zerolog.Logger,
	env *importEnv,
	group *productGroup,
	result *Result,
) error {
	if group.isOrphan() {
		return p.processOrphans(ctx, logger, env, group, result)
	}

	logger.Info().Str("name", groupName(group)).Msg("processing product")

	existing, err := p.storage.FindProductByExternalID(ctx, env.rc, group.externalID())
	if err != nil {
		return fmt.Errorf("can't check if product exists: %w", err)
	}
	if existing != nil {
		result.Skipped++
		logger.Info().Int("productID", existing.ID).Msg("product already imported, skipping")
		return nil
	}

	switch product := group.product.(type) {
	case *models.Simple:
		return p.importSimple(ctx, logger, env, product, result)
	case *models.Variable:
		return p.importVariable(ctx, logger, env, product, group.variations, result)
	default:
		return fmt.Errorf("unexpected record type %q", group.product.Type())
	}
}

func (p *Populator) importSimple(
	ctx context.Context,
	logger *zerolog.Logger,
	env *importEnv,
	simple *models.Simple,
	result *Result,
) error {
	price, err := p.resolvePrice(logger, simple.Price)
	if err != nil {
		return err
	}

	product, assetIDs, err := p.createProduct(ctx, env, &simple.ProductFields)
	if err != nil {
		return err
	}
	result.Created++

	input := models.VariantInput{
		ProductID:       product.ID,
		SKU:             lo.Ternary(simple.SKU != "", simple.SKU, p.syntheticSKU(simple.Name)),
		Name:            withSuffix(simple.Name, " - Default Variant"),
		Price:           price,
		StockOnHand:     simple.StockQuantity,
		StockLocationID: env.stockLocation.ID,
		TaxCategoryID:   env.taxCategory.ID,
		Weight:          lo.EmptyableToPtr(simple.Weight),
		AssetIDs:        assetIDs,
	}

	variants, err := p.storage.CreateVariants(ctx, env.rc, []models.VariantInput{input})
	if err != nil {
		result.Created--
		return fmt.Errorf("can't create default variant of product %d: %w", product.ID, err)
	}
	result.Variants += int32(len(variants))

	logger.Info().Int("productID", product.ID).Msg("product created with default variant")

	return nil
}

func (p *Populator) importVariable(
	ctx context.Context,
	logger *zerolog.Logger,
	env *importEnv,
	variable *models.Variable,
	variations []models.Variation,
	result *Result,
) error {
	prices, err := p.variationPrices(logger, variable.Price, variations)
	if err != nil {
		return err
	}

	product, _, err := p.createProduct(ctx, env, &variable.ProductFields)
	if err != nil {
		return err
	}
	result.Created++

	if len(variations) == 0 {
		logger.Warn().Int("productID", product.ID).Msg("variable product has no variations")
		return nil
	}

	inputs := p.variationInputs(ctx, env, product.ID, variable.Name, variable.SKU, variable.Attributes, variations, prices)

	variants, err := p.storage.CreateVariants(ctx, env.rc, inputs)
	if err != nil {
		result.Created--
		return fmt.Errorf("can't create variants of product %d: %w", product.ID, err)
	}
	result.Variants += int32(len(variants))

	logger.Info().Int("productID", product.ID).Int("variants", len(variants)).Msg("product created with variants")

	return nil
}

// processOrphans attaches variations to parent product found in destination by its external id.
// Variations are dropped when parent doesn't exist.
func (p *Populator) processOrphans(
	ctx context.Context,
	logger *zerolog.Logger,
	env *importEnv,
	group *productGroup,
	result *Result,
) error {
	parent, err := p.storage.FindProductByExternalID(ctx, env.rc, group.parentID)
	if err != nil {
		return fmt.Errorf("can't find parent product: %w", err)
	}
	if parent == nil {
		result.Dropped += int32(len(group.variations))
		logger.Warn().
			Int("variations", len(group.variations)).
			Msg("parent product not found, dropping variations")
		return nil
	}

	toCreate := make([]models.Variation, 0, len(group.variations))
	for _, variation := range group.variations {
		existing, err := p.storage.FindVariantByExternalID(ctx, env.rc, variation.ID)
		if err != nil {
			return fmt.Errorf("can't check if variation exists: %w", err)
		}
		if existing != nil {
			logger.Debug().Str("variationID", variation.ID).Msg("variation already imported, skipping")
			continue
		}
		toCreate = append(toCreate, variation)
	}

	if len(toCreate) == 0 {
		return nil
	}

	prices, err := p.variationPrices(logger, "", toCreate)
	if err != nil {
		return err
	}

	inputs := p.variationInputs(ctx, env, parent.ID, parent.Name, "", nil, toCreate, prices)

	variants, err := p.storage.CreateVariants(ctx, env.rc, inputs)
	if err != nil {
		return fmt.Errorf("can't attach variations to product %d: %w", parent.ID, err)
	}
	result.Variants += int32(len(variants))

	logger.Info().Int("productID", parent.ID).Int("variants", len(variants)).Msg("variations attached to existing product")

	return nil
}

// createProduct imports product images and creates product. Returns ids of imported assets.
func (p *Populator) createProduct(
	ctx context.Context,
	env *importEnv,
	fields *models.ProductFields,
) (*models.Product, []int, error) {
	assetIDs := p.assets.ImportImages(ctx, fields.Images)

	product, err := p.storage.CreateProduct(ctx, env.rc, &models.ProductInput{
		Name:        fields.Name,
		Slug:        lo.Ternary(fields.Slug != "", fields.Slug, slugify(fields.Name)),
		Description: fields.Description,
		ExternalID:  fields.ID,
		AssetIDs:    assetIDs,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("can't create product: %w", err)
	}

	return product, assetIDs, nil
}

// variationInputs builds variant inputs for variations. SKUs repeated within product get index suffix.
func (p *Populator) variationInputs(
	ctx context.Context,
	env *importEnv,
	productID int,
	productName, productSKU string,
	attributes []models.Attribute,
	variations []models.Variation,
	prices []int64,
) []models.VariantInput {
	inputs := make([]models.VariantInput, 0, len(variations))
	usedSKUs := make(map[string]bool, len(variations))
	skuBase := lo.Ternary(productSKU != "", productSKU, productName)

	for ix := range variations {
		variation := &variations[ix]

		sku := lo.Ternary(variation.SKU != "", variation.SKU, p.syntheticSKU(skuBase))
		if usedSKUs[sku] {
			sku = withSuffix(sku, fmt.Sprintf("-%d", ix))
		}
		usedSKUs[sku] = true

		var assetIDs []int
		if variation.Image != nil {
			assetIDs = p.assets.ImportImages(ctx, []models.Image{*variation.Image})
		}

		inputs = append(inputs, models.VariantInput{
			ProductID:       productID,
			SKU:             sku,
			Name:            variantName(productName, attributes, variation.Attributes),
			Price:           prices[ix],
			StockOnHand:     variation.StockQuantity,
			StockLocationID: env.stockLocation.ID,
			TaxCategoryID:   env.taxCategory.ID,
			ExternalID:      lo.ToPtr(variation.ID),
			Weight:          lo.EmptyableToPtr(variation.Weight),
			AssetIDs:        assetIDs,
		})
	}

	return inputs
}

// variationPrices resolves variation prices before any write. Empty variation price falls back to parentPrice.
func (p *Populator) variationPrices(logger *zerolog.Logger, parentPrice string, variations []models.Variation) ([]int64, error) {
	prices := make([]int64, 0, len(variations))

	for ix := range variations {
		raw := lo.Ternary(variations[ix].Price != "", variations[ix].Price, parentPrice)

		variationLogger := logger.With().Str("variationID", variations[ix].ID).Logger()

		price, err := p.resolvePrice(&variationLogger, raw)
		if err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}

	return prices, nil
}

func (p *Populator) resolvePrice(logger *zerolog.Logger, raw string) (int64, error) {
	price, keep, err := p.settings.PricePolicy.Resolve(raw)
	if !keep {
		return 0, fmt.Errorf("can't convert price: %w", err)
	}
	if err != nil {
		logger.Warn().Err(err).Str("price", raw).Msg("invalid price, setting price to 0")
	}
	return price, nil
}

// syntheticSKU returns "<base>-<timestamp>" with base cut to fit sku column.
func (p *Populator) syntheticSKU(base string) string {
	return withSuffix(base, fmt.Sprintf("-%d", p.clock.Timestamp()))
}

func (p *Populator) finishPopulation(ctx context.Context, run *models.Run, result *Result, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = p.clock.Now()
	run.FetchedRecords = lo.ToPtr(result.Fetched)
	run.CreatedProducts = lo.ToPtr(result.Created)
	run.SkippedProducts = lo.ToPtr(result.Skipped)
	run.FailedProducts = lo.ToPtr(result.Failed)
	run.DroppedVariations = lo.ToPtr(result.Dropped)
	run.CreatedVariants = lo.ToPtr(result.Variants)

	// run is recorded even when population was canceled.
	err := p.storage.FinishRun(context.WithoutCancel(ctx), run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish population: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed population: %w (fail reason: %w)", err, status)
	}

	return status
}

// WithClock sets Populator's custom Clock.
func WithClock(c Clock) Option {
	return func(p *Populator) {
		p.clock = c
	}
}
