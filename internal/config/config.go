package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	HTTPPort      string        `envconfig:"HTTP_PORT" default:":8080"`
	MySQLDSN      string        `envconfig:"MYSQL_DSN" default:"root:root@tcp(localhost:3306)/boilerparts?parseTime=true"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	MigrationsURL string        `envconfig:"MIGRATIONS_URL" default:"file://migrations"`

	YooKassaURL    string `envconfig:"YOOKASSA_URL" default:"https://api.yookassa.ru/v3"`
	YooKassaShopID string `envconfig:"YOOKASSA_SHOP_ID"`
	YooKassaSecret string `envconfig:"YOOKASSA_SECRET_KEY"`
	ReturnURL      string `envconfig:"PAYMENT_RETURN_URL" default:"http://localhost:3000/order"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	return &cfg, nil
}
