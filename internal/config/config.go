package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env            string               `yaml:"env" env:"ENV" env-default:"local"`
	HTTP           HTTPConfig           `yaml:"http"`
	Postgres       PostgresConfig       `yaml:"postgres"`
	Kafka          KafkaConfig          `yaml:"kafka"`
	Cache          CacheConfig          `yaml:"cache"`
	Redis          RedisConfig          `yaml:"redis"`
	Outbox         OutboxConfig         `yaml:"outbox"`
	Reconciliation ReconciliationConfig `yaml:"reconciliation"`
}

type HTTPConfig struct {
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type PostgresConfig struct {
	Port         string        `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Host         string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	DbName       string        `yaml:"db_name" env:"POSTGRES_DB"`
	User         string        `yaml:"user" env:"POSTGRES_USER"`
	Pwd          string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	SslMode      string        `yaml:"sslmode" env-default:"disable"`
	MaxOpenConns int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns int           `yaml:"max_idle_conns" env-default:"5"`
	ConnLifetime time.Duration `yaml:"conn_lifetime" env-default:"30m"`
}

type KafkaConfig struct {
	BrokerList          []string      `yaml:"broker_list" env:"KAFKA_BROKERS" env-separator:","`
	OrderCreatedTopic   string        `yaml:"order_created_topic" env-default:"order-created"`
	OrderCancelledTopic string        `yaml:"order_cancelled_topic" env-default:"order-cancelled"`
	StockResultTopic    string        `yaml:"stock_result_topic" env-default:"stock-update-result"`
	DeadLetterTopic     string        `yaml:"dead_letter_topic" env-default:"order-saga-dlq"`
	ConsumerGroup       string        `yaml:"consumer_group"`
	MaxRetries          int           `yaml:"max_retries" env-default:"3"`
	RetryBackoff        time.Duration `yaml:"retry_backoff" env-default:"500ms"`
}

type CacheConfig struct {
	// Driver is either "local" or "redis".
	Driver    string        `yaml:"driver" env:"CACHE_DRIVER" env-default:"local"`
	TTL       time.Duration `yaml:"ttl" env-default:"10m"`
	Size      int           `yaml:"size" env-default:"1024"`
	KeyPrefix string        `yaml:"key_prefix"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type OutboxConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" env-default:"2s"`
	BatchSize    int           `yaml:"batch_size" env-default:"100"`
	MaxAttempts  int           `yaml:"max_attempts" env-default:"10"`
	Lease        time.Duration `yaml:"lease" env-default:"30s"`
}

type ReconciliationConfig struct {
	Interval         time.Duration `yaml:"interval" env-default:"1m"`
	PendingThreshold time.Duration `yaml:"pending_threshold" env-default:"5m"`
	BatchSize        int           `yaml:"batch_size" env-default:"100"`
}

func InitConfig() Config {
	configPath := getConfigPath()

	if configPath == "" {
		panic("config path is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func Load(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return cfg, nil
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		p.Host, p.Port, p.User, p.DbName, p.Pwd, p.SslMode)
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
