package config

import "time"

type Notify struct {
	// AutomationWebhookURL — endpoint внешней автоматизации, куда уходит
	// каждый записанный клейм. Пустой URL отключает этот канал.
	AutomationWebhookURL string        `env:"NOTIFY_AUTOMATION_WEBHOOK_URL"`
	RequestTimeout       time.Duration `env:"NOTIFY_REQUEST_TIMEOUT" envDefault:"10s"`
}
