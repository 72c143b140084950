package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/MichalMitros/woocommerce-populator/cmd/populate/config"
	"github.com/MichalMitros/woocommerce-populator/internal/assets"
	"github.com/MichalMitros/woocommerce-populator/internal/fetcher"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/rabbitmq"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/storage"
	"github.com/MichalMitros/woocommerce-populator/internal/populator"
	"github.com/MichalMitros/woocommerce-populator/internal/search"
	"github.com/MichalMitros/woocommerce-populator/internal/woocommerce"
	"github.com/MichalMitros/woocommerce-populator/pkg/v1/commander"
	"github.com/caarlos0/env/v6"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// UserAgent is user agent header value used in requests to store and image hosts.
	UserAgent = "woocommerce-populator/0.1.0"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Error().
			Err(err).
			Msg("can't parse env variables")
		return 1
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("can't open Postgres connection")
		return 1
	}
	defer func() {
		if err := pgDB.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	postgres := storage.NewPostgres(pgDB)

	reindexer, closeReindexer, err := newReindexer(&cfg, postgres, &logger)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("can't create search reindexer")
		return 1
	}
	defer closeReindexer()

	httpClient := woocommerce.NewHTTPClient(cfg.WooCommerce.MaxRetries, cfg.HTTPTimeout, &logger)
	client := woocommerce.NewClient(
		httpClient,
		cfg.WooCommerce.APIURL,
		cfg.WooCommerce.Version,
		woocommerce.Credentials{
			ConsumerKey:    cfg.WooCommerce.ConsumerKey,
			ConsumerSecret: cfg.WooCommerce.ConsumerSecret,
		},
		UserAgent,
	)

	// images are fetched without retries.
	imagesClient := woocommerce.NewHTTPClient(0, cfg.HTTPTimeout, &logger)
	images := populator.NewImageImporter(
		fetcher.NewFetcher(imagesClient.StandardClient(), UserAgent).WithMaxSize(cfg.ImageMaxSize),
		assets.NewService(afero.NewBasePathFs(afero.NewOsFs(), cfg.AssetUploadDir), postgres),
		&logger,
	)

	pop := populator.NewPopulator(
		woocommerce.NewPageFetcher(client, cfg.WooCommerce.PageSize, cfg.WooCommerce.StartPage, &logger),
		postgres,
		images,
		reindexer,
		populator.Settings{
			SuperadminIdentifier: cfg.Superadmin.Identifier,
			ChannelCode:          cfg.Superadmin.ChannelCode,
			BatchSize:            cfg.BatchSize,
			PricePolicy:          cfg.PricePolicy,
		},
		&logger,
	)

	logger.Info().Str("store", cfg.WooCommerce.APIURL).Msg("population started")

	result, err := pop.Populate(ctx)

	summary := logger.Info()
	if err != nil {
		summary = logger.Error().Err(err)
	}
	summary.
		Int32("fetched", result.Fetched).
		Int32("created", result.Created).
		Int32("skipped", result.Skipped).
		Int32("successes", result.Successes()).
		Int32("errors", result.Failed).
		Int32("droppedVariations", result.Dropped).
		Int32("variants", result.Variants).
		Msg("population finished")

	if err != nil {
		return 1
	}

	return 0
}

// newReindexer returns reindexer publishing reindex commands when RabbitMQ is configured
// and in process reindexer otherwise.
func newReindexer(cfg *config.Config, postgres storage.Postgres, logger *zerolog.Logger) (populator.Reindexer, func(), error) {
	if cfg.RabbitMQ.URL == "" {
		return search.NewIndexer(postgres, cfg.Search.BatchSize, logger), func() {}, nil
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, nil, err
	}

	mq, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		_ = amqpConnection.Close()
		return nil, nil, err
	}

	// queue is declared too so commands wait for reindex worker which hasn't started yet.
	if err := mq.Setup(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
		_ = amqpConnection.Close()
		return nil, nil, err
	}

	if err := mq.EnableConfirms(); err != nil {
		_ = amqpConnection.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}

	sender := commander.NewRabbitMQSender(mq, cfg.RabbitMQ.RoutingKey)

	return search.NewRemote(commander.NewReindexCommander(sender), logger), closeFn, nil
}
