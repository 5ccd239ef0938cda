package handler

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	service "dealdesk/internal/domain/service/deal"
)

type promptKind int

const (
	promptClaim promptKind = iota
	promptOffer
)

// pendingPrompt — ожидание ответа на force-reply приглашение: какого рода
// ввод ждём и с какой карточки он пришёл.
type pendingPrompt struct {
	Kind promptKind
	Card service.CardContext
}

// PromptStore хранит открытые приглашения, ключ — сообщение-приглашение.
// TTL ограничивает жизнь приглашения: протухший ответ отклоняется.
type PromptStore struct {
	cache *cache.Cache
}

func NewPromptStore(ttl time.Duration) *PromptStore {
	return &PromptStore{
		cache: cache.New(ttl, ttl),
	}
}

func (s *PromptStore) Put(chatID int64, promptMessageID int, prompt pendingPrompt) {
	s.cache.SetDefault(promptKey(chatID, promptMessageID), prompt)
}

// Pop одноразовый: приглашение гасится первым же ответом.
func (s *PromptStore) Pop(chatID int64, promptMessageID int) (pendingPrompt, bool) {
	key := promptKey(chatID, promptMessageID)

	value, found := s.cache.Get(key)
	if !found {
		return pendingPrompt{}, false
	}

	s.cache.Delete(key)

	prompt, ok := value.(pendingPrompt)

	return prompt, ok
}

func promptKey(chatID int64, messageID int) string {
	return fmt.Sprintf("%d:%d", chatID, messageID)
}
