package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// Destination is ids of rows seeded by SeedDestination.
type Destination struct {
	AdministratorID int32
	ChannelID       int32
	StockLocationID int32
	TaxCategoryID   int32
}

// SeedDestination inserts superadmin, channel, stock location and default tax category.
func SeedDestination(t *testing.T, exc qrm.Queryable, identifier, channelCode string) Destination {
	t.Helper()

	var (
		dest     Destination
		admin    pgmodels.Administrator
		channel  pgmodels.Channel
		location pgmodels.StockLocation
		category pgmodels.TaxCategory
	)

	err := table.Administrator.INSERT(table.Administrator.Identifier, table.Administrator.EmailAddress).
		VALUES(identifier, identifier+"@example.com").
		RETURNING(table.Administrator.ID).
		Query(exc, &admin)
	if err != nil {
		t.Fatal("can't insert administrator", err)
	}

	err = table.Channel.INSERT(table.Channel.Code, table.Channel.Token).
		VALUES(channelCode, channelCode+"-token").
		RETURNING(table.Channel.ID).
		Query(exc, &channel)
	if err != nil {
		t.Fatal("can't insert channel", err)
	}

	err = table.StockLocation.INSERT(table.StockLocation.Name, table.StockLocation.ChannelID).
		VALUES("Default Stock Location", channel.ID).
		RETURNING(table.StockLocation.ID).
		Query(exc, &location)
	if err != nil {
		t.Fatal("can't insert stock location", err)
	}

	err = table.TaxCategory.INSERT(table.TaxCategory.Name, table.TaxCategory.IsDefault).
		VALUES("Standard Tax", true).
		RETURNING(table.TaxCategory.ID).
		Query(exc, &category)
	if err != nil {
		t.Fatal("can't insert tax category", err)
	}

	dest.AdministratorID = admin.ID
	dest.ChannelID = channel.ID
	dest.StockLocationID = location.ID
	dest.TaxCategoryID = category.ID

	return dest
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.PopulateRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.PopulateRun, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.PopulateRun.INSERT(table.PopulateRun.MutableColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	toInsert = append(toInsert, products...)

	_, err := table.Product.INSERT(table.Product.MutableColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// GetRuns is a helper test function to get all runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.PopulateRun {
	t.Helper()

	runs := []pgmodels.PopulateRun{}
	err := table.PopulateRun.SELECT(table.PopulateRun.AllColumns).
		WHERE(table.PopulateRun.ID.IS_NOT_NULL()).
		ORDER_BY(table.PopulateRun.ID.ASC()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetProducts is a helper test function to get all products ordered by id.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		ORDER_BY(table.Product.ID.ASC()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetVariants is a helper test function to get all variants ordered by id.
func GetVariants(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductVariant {
	t.Helper()

	variants := []pgmodels.ProductVariant{}
	err := table.ProductVariant.SELECT(table.ProductVariant.AllColumns).
		WHERE(table.ProductVariant.ID.IS_NOT_NULL()).
		ORDER_BY(table.ProductVariant.ID.ASC()).
		Query(queryable, &variants)
	if err != nil {
		t.Fatal("can't get variants", err)
	}

	return variants
}

// GetVariantsByProductID is a helper test function to get variants of product ordered by id.
func GetVariantsByProductID(t *testing.T, queryable qrm.Queryable, productID int32) []pgmodels.ProductVariant {
	t.Helper()

	variants := []pgmodels.ProductVariant{}
	err := table.ProductVariant.SELECT(table.ProductVariant.AllColumns).
		WHERE(table.ProductVariant.ProductID.EQ(pg.Int32(productID))).
		ORDER_BY(table.ProductVariant.ID.ASC()).
		Query(queryable, &variants)
	if err != nil {
		t.Fatal("can't get variants", err)
	}

	return variants
}

// GetStockLevels is a helper test function to get all stock levels.
func GetStockLevels(t *testing.T, queryable qrm.Queryable) []pgmodels.StockLevel {
	t.Helper()

	levels := []pgmodels.StockLevel{}
	err := table.StockLevel.SELECT(table.StockLevel.AllColumns).
		WHERE(table.StockLevel.ID.IS_NOT_NULL()).
		ORDER_BY(table.StockLevel.ID.ASC()).
		Query(queryable, &levels)
	if err != nil {
		t.Fatal("can't get stock levels", err)
	}

	return levels
}

// GetProductAssets is a helper test function to get all product assets.
func GetProductAssets(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductAsset {
	t.Helper()

	assets := []pgmodels.ProductAsset{}
	err := table.ProductAsset.SELECT(table.ProductAsset.AllColumns).
		WHERE(table.ProductAsset.ID.IS_NOT_NULL()).
		ORDER_BY(table.ProductAsset.ID.ASC()).
		Query(queryable, &assets)
	if err != nil {
		t.Fatal("can't get product assets", err)
	}

	return assets
}

// GetSearchIndexItems is a helper test function to get all search index items ordered by variant id.
func GetSearchIndexItems(t *testing.T, queryable qrm.Queryable) []pgmodels.SearchIndexItem {
	t.Helper()

	items := []pgmodels.SearchIndexItem{}
	err := table.SearchIndexItem.SELECT(table.SearchIndexItem.AllColumns).
		WHERE(table.SearchIndexItem.ProductVariantID.IS_NOT_NULL()).
		ORDER_BY(table.SearchIndexItem.ProductVariantID.ASC()).
		Query(queryable, &items)
	if err != nil {
		t.Fatal("can't get search index items", err)
	}

	return items
}

// CleanupData deletes all rows from tables used by tests.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	tables := []struct {
		name string
		stmt pg.Statement
	}{
		{"search index", table.SearchIndexItem.DELETE().WHERE(table.SearchIndexItem.ProductVariantID.IS_NOT_NULL())},
		{"stock levels", table.StockLevel.DELETE().WHERE(table.StockLevel.ID.IS_NOT_NULL())},
		{"variant assets", table.ProductVariantAsset.DELETE().WHERE(table.ProductVariantAsset.ID.IS_NOT_NULL())},
		{"variants", table.ProductVariant.DELETE().WHERE(table.ProductVariant.ID.IS_NOT_NULL())},
		{"product assets", table.ProductAsset.DELETE().WHERE(table.ProductAsset.ID.IS_NOT_NULL())},
		{"products", table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL())},
		{"assets", table.Asset.DELETE().WHERE(table.Asset.ID.IS_NOT_NULL())},
		{"runs", table.PopulateRun.DELETE().WHERE(table.PopulateRun.ID.IS_NOT_NULL())},
		{"tax categories", table.TaxCategory.DELETE().WHERE(table.TaxCategory.ID.IS_NOT_NULL())},
		{"stock locations", table.StockLocation.DELETE().WHERE(table.StockLocation.ID.IS_NOT_NULL())},
		{"channels", table.Channel.DELETE().WHERE(table.Channel.ID.IS_NOT_NULL())},
		{"administrators", table.Administrator.DELETE().WHERE(table.Administrator.ID.IS_NOT_NULL())},
	}

	for _, tbl := range tables {
		if _, err := tbl.stmt.Exec(exc); err != nil {
			t.Fatalf("can't delete %s data: %s", tbl.name, err)
		}
	}
}
