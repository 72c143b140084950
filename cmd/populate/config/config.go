package config

import (
	"time"

	"github.com/MichalMitros/woocommerce-populator/internal/pricing"
)

// Config holds populate job configuration.
type Config struct {
	DatabaseURL    string         `env:"DATABASE_URL,required"`
	LogLevel       string         `env:"LOG_LEVEL" envDefault:"info"`
	BatchSize      int            `env:"BATCH_SIZE" envDefault:"10"`
	PricePolicy    pricing.Policy `env:"INVALID_PRICE_POLICY" envDefault:"zero"`
	AssetUploadDir string         `env:"ASSET_UPLOAD_DIR" envDefault:"static/assets"`
	HTTPTimeout    time.Duration  `env:"HTTP_TIMEOUT" envDefault:"0s"`
	ImageMaxSize   int64          `env:"IMAGE_MAX_SIZE" envDefault:"33554432"`

	Superadmin  Superadmin
	WooCommerce WooCommerce
	Search      Search
	RabbitMQ    RabbitMQ
}

// Superadmin holds identity used for all destination writes.
type Superadmin struct {
	Identifier  string `env:"SUPERADMIN_IDENTIFIER" envDefault:"superadmin"`
	ChannelCode string `env:"CHANNEL_CODE" envDefault:"__default_channel__"`
}

// WooCommerce holds source store configuration.
type WooCommerce struct {
	APIURL         string `env:"API_URL,required"`
	ConsumerKey    string `env:"CONSUMER_KEY"`
	ConsumerSecret string `env:"CONSUMER_SECRET"`
	Version        string `env:"WC_API_VERSION" envDefault:"wc/v3"`
	PageSize       int    `env:"WC_PAGE_SIZE" envDefault:"100"`
	StartPage      int    `env:"WC_START_PAGE" envDefault:"1"`
	MaxRetries     int    `env:"WC_MAX_RETRIES" envDefault:"0"`
}

// Search holds search index configuration.
type Search struct {
	BatchSize uint `env:"SEARCH_BATCH_SIZE" envDefault:"100"`
}

// RabbitMQ holds RabbitMQ configuration. Reindex is done in process when URL is empty.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"wcp-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"woocommerce-populator.reindex"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"woocommerce-populator.reindex"`
}
