package config

import "time"

type Redis struct {
	// Address пустой — процесс работает без Redis: внутрипроцессный guard
	// клеймов и синхронная доставка уведомлений.
	Address        string        `env:"REDIS_ADDRESS"`
	Username       string        `env:"REDIS_USERNAME"`
	Password       string        `env:"REDIS_PASSWORD"`
	DatabaseNumber int           `env:"REDIS_DATABASE_NUMBER"`
	ClaimLockTTL   time.Duration `env:"REDIS_CLAIM_LOCK_TTL" envDefault:"30s"`
}
