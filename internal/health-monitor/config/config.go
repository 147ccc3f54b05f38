package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server      ServerConfig
	HealthCheck HealthCheckConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Mail        MailConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/health-monitor.log"`
}

type HealthCheckConfig struct {
	FailureThreshold int `envconfig:"HEALTH_CHECK_FAILURE_THRESHOLD" default:"3"`
	SuccessThreshold int `envconfig:"HEALTH_CHECK_SUCCESS_THRESHOLD" default:"2"`
	TimeoutSeconds   int `envconfig:"HEALTH_CHECK_TIMEOUT_SECONDS" default:"10"`
	IntervalSeconds  int `envconfig:"HEALTH_CHECK_INTERVAL_SECONDS" default:"300"`
	SweepConcurrency int `envconfig:"HEALTH_CHECK_SWEEP_CONCURRENCY" default:"10"`
}

func (h HealthCheckConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

func (h HealthCheckConfig) Interval() time.Duration {
	return time.Duration(h.IntervalSeconds) * time.Second
}

func (h HealthCheckConfig) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.FailureThreshold, validation.Required, validation.Min(1)),
		validation.Field(&h.SuccessThreshold, validation.Required, validation.Min(1)),
		validation.Field(&h.TimeoutSeconds, validation.Required, validation.Min(1)),
		validation.Field(&h.IntervalSeconds, validation.Required, validation.Min(1)),
		validation.Field(&h.SweepConcurrency, validation.Required, validation.Min(1)),
	)
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" required:"true"`
	Port         int    `envconfig:"POSTGRES_PORT" required:"true"`
	User         string `envconfig:"POSTGRES_USER" required:"true"`
	Password     string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName       string `envconfig:"POSTGRES_DB" required:"true"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"20"`
}

// RedisConfig is optional, an empty host disables the snapshot cache.
type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"30s"`
}

// KafkaConfig is optional, no brokers means probe records are not published.
type KafkaConfig struct {
	Brokers    []string `envconfig:"KAFKA_BROKERS"`
	ProbeTopic string   `envconfig:"KAFKA_PROBE_TOPIC" default:"health-probe-records"`
}

// MailConfig is optional, an empty host disables status change alerts.
type MailConfig struct {
	Host       string   `envconfig:"MAIL_HOST"`
	Port       int      `envconfig:"MAIL_PORT" default:"587"`
	Username   string   `envconfig:"MAIL_USERNAME"`
	Password   string   `envconfig:"MAIL_PASSWORD"`
	From       string   `envconfig:"MAIL_FROM"`
	Recipients []string `envconfig:"MAIL_ALERT_RECIPIENTS"`
}

func (m MailConfig) Enabled() bool {
	return m.Host != ""
}

func (m MailConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Port, validation.When(m.Enabled(), validation.Required, validation.Min(1))),
		validation.Field(&m.From, validation.When(m.Enabled(), validation.Required, is.EmailFormat)),
		validation.Field(&m.Recipients, validation.When(m.Enabled(), validation.Required, validation.Each(is.EmailFormat))),
	)
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.HealthCheck.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.Mail.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
