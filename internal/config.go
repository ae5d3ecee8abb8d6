package internal

import "time"

type Config struct {
	Host                 string        `env:"HOST"`
	Port                 int           `env:"PORT,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,required=true"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`
	WsReadLimit          int64         `env:"WS_READ_LIMIT"`
	AuthRequired         bool          `env:"AUTH_REQUIRED"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION"`

	// PendingRequestTTL of zero disables expiry: entries then live
	// until their origin disconnects.
	PendingRequestTTL    time.Duration `env:"PENDING_REQUEST_TTL"`
	PendingSweepInterval time.Duration `env:"PENDING_SWEEP_INTERVAL"`
}
