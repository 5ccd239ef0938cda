package handler

import (
	service "dealdesk/internal/domain/service/deal"
	"dealdesk/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

type Handler struct {
	svc     *service.Service
	prompts *PromptStore
}

func New(svc *service.Service, prompts *PromptStore) *Handler {
	return &Handler{
		svc:     svc,
		prompts: prompts,
	}
}
