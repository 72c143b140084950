package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/woocommerce-populator/internal/platform"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for runs, products, variants, assets and search index.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// StartRun creates new unfinished run in database and returns it.
// It returns ErrAlreadyRunning if previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context) (*models.Run, error) {
	run := &models.Run{}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		// serializes concurrent starts, lock is released with transaction.
		if _, err := tx.ExecContext(ctx, "LOCK TABLE populate_run IN SHARE ROW EXCLUSIVE MODE"); err != nil {
			return fmt.Errorf("can't lock runs table: %w", err)
		}

		lastRun, err := getLastRun(ctx, tx)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		var newRun pgmodels.PopulateRun
		err = table.PopulateRun.INSERT(table.PopulateRun.FinishedAt).
			VALUES(pg.NULL).
			RETURNING(table.PopulateRun.AllColumns).
			QueryContext(ctx, tx, &newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run = FromDBRun(&newRun)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.PopulateRun.AllColumns.Except(table.PopulateRun.ID, table.PopulateRun.CreatedAt)

	result, err := table.PopulateRun.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.PopulateRun.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run: %w", errors.Join(err, sql.ErrNoRows))
	}

	return nil
}

// SuperadminContext returns request context of superadmin administrator in channel with provided code.
func (p Postgres) SuperadminContext(ctx context.Context, identifier, channelCode string) (*models.RequestContext, error) {
	var admin pgmodels.Administrator
	err := table.Administrator.SELECT(table.Administrator.ID).
		WHERE(pg.AND(
			table.Administrator.Identifier.EQ(pg.String(identifier)),
			table.Administrator.DeletedAt.IS_NULL(),
		)).
		LIMIT(1).
		QueryContext(ctx, p.db, &admin)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", platform.ErrSuperadminNotFound, identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get superadmin: %w", err)
	}

	var channel pgmodels.Channel
	err = table.Channel.SELECT(table.Channel.ID, table.Channel.Code).
		WHERE(table.Channel.Code.EQ(pg.String(channelCode))).
		QueryContext(ctx, p.db, &channel)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", platform.ErrChannelNotFound, channelCode)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get channel: %w", err)
	}

	return &models.RequestContext{
		AdministratorID: int(admin.ID),
		ChannelID:       int(channel.ID),
		ChannelCode:     channel.Code,
	}, nil
}

// DefaultStockLocation returns first stock location of request context channel.
func (p Postgres) DefaultStockLocation(ctx context.Context, rc *models.RequestContext) (*models.StockLocation, error) {
	var location pgmodels.StockLocation
	err := table.StockLocation.SELECT(table.StockLocation.AllColumns).
		WHERE(table.StockLocation.ChannelID.EQ(pg.Int32(int32(rc.ChannelID)))).
		ORDER_BY(table.StockLocation.ID.ASC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &location)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNoStockLocation
	}
	if err != nil {
		return nil, fmt.Errorf("can't get stock location: %w", err)
	}

	return &models.StockLocation{
		ID:        int(location.ID),
		Name:      location.Name,
		ChannelID: int(location.ChannelID),
	}, nil
}

// DefaultTaxCategory returns tax category marked as default.
func (p Postgres) DefaultTaxCategory(ctx context.Context) (*models.TaxCategory, error) {
	var category pgmodels.TaxCategory
	err := table.TaxCategory.SELECT(table.TaxCategory.AllColumns).
		WHERE(table.TaxCategory.IsDefault.IS_TRUE()).
		ORDER_BY(table.TaxCategory.ID.ASC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &category)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNoTaxCategory
	}
	if err != nil {
		return nil, fmt.Errorf("can't get tax category: %w", err)
	}

	return &models.TaxCategory{
		ID:        int(category.ID),
		Name:      category.Name,
		IsDefault: category.IsDefault,
	}, nil
}

func getLastRun(ctx context.Context, db qrm.DB) (*pgmodels.PopulateRun, error) {
	var run pgmodels.PopulateRun
	err := table.PopulateRun.SELECT(
		table.PopulateRun.ID,
		table.PopulateRun.CreatedAt,
		table.PopulateRun.FinishedAt,
		table.PopulateRun.Success,
	).
		ORDER_BY(table.PopulateRun.CreatedAt.DESC(), table.PopulateRun.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
