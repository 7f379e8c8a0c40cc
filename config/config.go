package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServerPort  string `env:"SERVER_PORT" envDefault:"8888"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"tripweave"`

	// PostgreSQL 配置
	PostgreSQLHost     string `env:"POSTGRESQL_HOST" envDefault:"localhost"`
	PostgreSQLPort     string `env:"POSTGRESQL_PORT" envDefault:"5432"`
	PostgreSQLUser     string `env:"POSTGRESQL_USER" envDefault:"postgres"`
	PostgreSQLPassword string `env:"POSTGRESQL_PASSWORD" envDefault:"postgres"`
	PostgreSQLDatabase string `env:"POSTGRESQL_DATABASE" envDefault:"tripweave"`
	PostgreSQLSchema   string `env:"POSTGRESQL_SCHEMA" envDefault:"public"`
	PostgreSQLSSLMode  string `env:"POSTGRESQL_SSLMODE" envDefault:"disable"`
	PostgreSQLMaxIdle  int    `env:"POSTGRESQL_MAX_IDLE" envDefault:"30"`
	PostgreSQLMaxOpen  int    `env:"POSTGRESQL_MAX_OPEN" envDefault:"200"`

	// Redis 配置
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"tw"`

	// RabbitMQ 配置
	RabbitMQAddr     string `env:"RABBITMQ_ADDR" envDefault:"localhost"`
	RabbitMQPort     string `env:"RABBITMQ_PORT" envDefault:"5672"`
	RabbitMQUsername string `env:"RABBITMQ_USERNAME" envDefault:"guest"`
	RabbitMQPassword string `env:"RABBITMQ_PASSWORD" envDefault:"guest"`
	RabbitMQVhost    string `env:"RABBITMQ_VHOST" envDefault:"/"`

	// JWT 配置
	JWTSecret        string `env:"JWT_SECRET"` // 必填，用于签名 JWT
	JWTExpireMinutes int    `env:"JWT_EXPIRE_MINUTES" envDefault:"30"`
	JWTRefreshDays   int    `env:"JWT_REFRESH_DAYS" envDefault:"7"`

	// 第三方认证服务（OIDC）配置
	AuthProviderIssuer       string `env:"AUTH_PROVIDER_ISSUER"`
	AuthProviderClientID     string `env:"AUTH_PROVIDER_CLIENT_ID"`
	AuthProviderClientSecret string `env:"AUTH_PROVIDER_CLIENT_SECRET"`
	AuthProviderTokenURL     string `env:"AUTH_PROVIDER_TOKEN_URL"`
	AuthProviderUserInfoURL  string `env:"AUTH_PROVIDER_USERINFO_URL"`

	// CSRF / Session 配置
	CSRFEnabled   bool   `env:"CSRF_ENABLED" envDefault:"false"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"tripweave-session"`

	// S3 对象存储配置（行程图片与头像）
	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey     string `env:"S3_ACCESS_KEY"`
	S3SecretKey     string `env:"S3_SECRET_KEY"`
	S3Bucket        string `env:"S3_BUCKET" envDefault:"tripweave-media"`
	S3UsePathStyle  bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`

	// 地点预览 / 酒店搜索配置
	PlacePreviewTimeout  int    `env:"PLACE_PREVIEW_TIMEOUT_SECONDS" envDefault:"8"`
	PlacePreviewCacheTTL int    `env:"PLACE_PREVIEW_CACHE_TTL_MINUTES" envDefault:"1440"`
	HotelProvider        string `env:"HOTEL_PROVIDER" envDefault:"mock"` // mock, http
	HotelProviderBaseURL string `env:"HOTEL_PROVIDER_BASE_URL"`
	HotelProviderAPIKey  string `env:"HOTEL_PROVIDER_API_KEY"`
	HotelCacheTTLMinutes int    `env:"HOTEL_CACHE_TTL_MINUTES" envDefault:"30"`

	// Snowflake ID 生成器配置
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// OpenTelemetry 配置
	OtelEnabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint    string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	ServiceVersion  string  `env:"SERVICE_VERSION" envDefault:"dev"`
	OtelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"0.1"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// 速率限制配置, 配置在中间件内
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"100"` // 每秒请求数

	// 行程业务配置
	MaxTravelers       int `env:"TRIP_MAX_TRAVELERS" envDefault:"20"`
	MaxItineraryDays   int `env:"TRIP_MAX_ITINERARY_DAYS" envDefault:"90"`
	BioMaxWords        int `env:"PROFILE_BIO_MAX_WORDS" envDefault:"600"`
	ProposalExpireDays int `env:"PROPOSAL_EXPIRE_DAYS" envDefault:"14"`
	TripReminderHour   int `env:"TRIP_REMINDER_HOUR_UTC" envDefault:"8"` // 开始前一天的提醒时刻
}

func init() {

	if err := godotenv.Load(); err != nil {

		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.JWTSecret == "" {
		if Cfg.IsProduction() {
			log.Fatal("JWT_SECRET is required")
		}
		log.Printf("WARN: JWT_SECRET is not set, using insecure development secret")
		Cfg.JWTSecret = "tripweave-dev-secret"
	}

	if Cfg.AuthProviderClientID == "" {
		log.Printf("WARN: AUTH_PROVIDER_CLIENT_ID is not set, auth code exchange will not work")
	}

	if Cfg.S3AccessKey == "" {
		log.Printf("WARN: S3_ACCESS_KEY is not set, image upload will be disabled")
	}

	if Cfg.HotelProvider == "http" && Cfg.HotelProviderBaseURL == "" {
		log.Printf("WARN: HOTEL_PROVIDER_BASE_URL is not set, hotel search may not work properly")
	}
}

func (c *Config) GetDSN() string {
	return "host=" + c.PostgreSQLHost +
		" port=" + c.PostgreSQLPort +
		" user=" + c.PostgreSQLUser +
		" password=" + c.PostgreSQLPassword +
		" dbname=" + c.PostgreSQLDatabase +
		" sslmode=" + c.PostgreSQLSSLMode +
		" search_path=" + c.PostgreSQLSchema
}

func (c *Config) GetRabbitMQURL() string {
	return "amqp://" + c.RabbitMQUsername + ":" + c.RabbitMQPassword + "@" + c.RabbitMQAddr + ":" + c.RabbitMQPort + c.RabbitMQVhost
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
