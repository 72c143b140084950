package config

// Config holds reindex worker configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	BatchSize   uint   `env:"SEARCH_BATCH_SIZE" envDefault:"100"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL,required"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"wcp-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"woocommerce-populator.reindex"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"woocommerce-populator.reindex"`
	Prefetch   int    `env:"RABBITMQ_PREFETCH" envDefault:"1"`
}
