package config

import "time"

type Bot struct {
	Token string `env:"BOT_TOKEN,required"`
	// BroadcastChatIDs — чаты, в которые публикуются карточки сделок.
	BroadcastChatIDs []int64 `env:"BOT_BROADCAST_CHAT_IDS,required" envSeparator:","`
	// AllowedChatIDs — чаты, из которых бот принимает взаимодействия.
	// Пустой список означает «те же, что и BroadcastChatIDs».
	AllowedChatIDs []int64 `env:"BOT_ALLOWED_CHAT_IDS" envSeparator:","`
	// PromptTTL — сколько живёт приглашение ввести код/сумму до протухания.
	PromptTTL time.Duration `env:"BOT_PROMPT_TTL" envDefault:"5m"`
}
