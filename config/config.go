package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	Database      DatabaseConfig      `envconfig:"DATABASE"`
	Storage       StorageConfig       `envconfig:"STORAGE"`
	Auth          AuthConfig          `envconfig:"AUTH"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
	SMTP          SMTPConfig          `envconfig:"SMTP"`
}

type HttpServerConfig struct {
	Port             string        `envconfig:"PORT" default:"8080"`
	CorsAllowOrigins string        `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	RateLimitMax     int           `envconfig:"RATE_LIMIT_MAX" default:"100"`
	RateLimitWindow  time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
	BodyLimit        int           `envconfig:"BODY_LIMIT" default:"26214400"`
}

// HttpClientConfig drives the circuit breaker wrapped client used for the
// remote row store.
type HttpClientConfig struct {
	Type       string        `envconfig:"TYPE" default:"consecutive"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"15s"`
	Threshold  int64         `envconfig:"THRESHOLD" default:"5"`
	ErrorRate  float64       `envconfig:"ERROR_RATE" default:"0.5"`
	MinSamples int64         `envconfig:"MIN_SAMPLES" default:"10"`
}

type DatabaseConfig struct {
	// Driver is one of d1, postgres or sqlite.
	Driver      string   `envconfig:"DRIVER" default:"d1"`
	DSN         string   `envconfig:"DSN"`
	AutoMigrate bool     `envconfig:"AUTO_MIGRATE" default:"false"`
	D1          D1Config `envconfig:"D1"`
}

type D1Config struct {
	BaseURL    string `envconfig:"BASE_URL" default:"https://api.cloudflare.com/client/v4"`
	AccountID  string `envconfig:"ACCOUNT_ID"`
	DatabaseID string `envconfig:"DATABASE_ID"`
	APIToken   string `envconfig:"API_TOKEN"`
}

type StorageConfig struct {
	// Driver is one of s3 or memory.
	Driver          string `envconfig:"DRIVER" default:"s3"`
	Bucket          string `envconfig:"BUCKET"`
	Region          string `envconfig:"REGION" default:"auto"`
	Endpoint        string `envconfig:"ENDPOINT"`
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	PublicURL       string `envconfig:"PUBLIC_URL" default:"https://pub-xxxxx.r2.dev"`
	MaxFileSize     int64  `envconfig:"MAX_FILE_SIZE" default:"5242880"`
}

type AuthConfig struct {
	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpires time.Duration `envconfig:"JWT_EXPIRES" default:"168h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"12"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type SchedulerConfig struct {
	Enabled     bool `envconfig:"ENABLED" default:"false"`
	Concurrency int  `envconfig:"CONCURRENCY" default:"10"`
}

type SMTPConfig struct {
	Host       string `envconfig:"HOST"`
	Port       string `envconfig:"PORT" default:"587"`
	Username   string `envconfig:"USERNAME"`
	Password   string `envconfig:"PASSWORD"`
	From       string `envconfig:"FROM" default:"no-reply@travel.local"`
	AdminEmail string `envconfig:"ADMIN_EMAIL"`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment only")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	return &cfg
}
