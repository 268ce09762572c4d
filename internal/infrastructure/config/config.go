package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StoreBackend selects the durable store: redis or mongo.
	StoreBackend string `env:"STORE_BACKEND, default=redis"`

	// SignInDelay models the identity-provider round trip of the stubbed
	// sign-in.
	SignInDelay   time.Duration `env:"SIGNIN_DELAY,   default=800ms"`
	UploadWorkers int           `env:"UPLOAD_WORKERS, default=4"`

	Redis RedisConfig
	Mongo MongoConfig
	Media MediaConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ondo_homes"`
}

// MediaConfig selects the photo storage: simulated (default, no external
// service) or minio.
type MediaConfig struct {
	Backend        string        `env:"MEDIA_BACKEND,         default=simulated"`
	SimulatedDelay time.Duration `env:"MEDIA_SIMULATED_DELAY, default=1500ms"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT,   default=localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET,     default=ondo-listing-photos"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL,    default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
