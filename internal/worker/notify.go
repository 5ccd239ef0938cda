package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"dealdesk/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	TypeNotifySeller     = "notify:seller"
	TypeNotifyAutomation = "notify:automation"
)

const (
	notifyMaxRetry = 5
	notifyTimeout  = 30 * time.Second
)

type notifyPayload struct {
	Seller entity.Seller `json:"seller"`
	Claim  entity.Claim  `json:"claim"`
}

// Enqueuer откладывает доставку уведомлений в очередь: клейм не должен ждать
// чужие webhook-и и не должен теряться из-за их временной недоступности.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) NotifySeller(ctx context.Context, seller entity.Seller, claim entity.Claim) error {
	return e.enqueue(ctx, TypeNotifySeller, notifyPayload{Seller: seller, Claim: claim})
}

func (e *Enqueuer) NotifyAutomation(ctx context.Context, claim entity.Claim) error {
	return e.enqueue(ctx, TypeNotifyAutomation, notifyPayload{Claim: claim})
}

func (e *Enqueuer) enqueue(ctx context.Context, typename string, payload notifyPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	task := asynq.NewTask(typename, raw,
		asynq.MaxRetry(notifyMaxRetry),
		asynq.Timeout(notifyTimeout),
	)

	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("asynq.EnqueueContext: %w", err)
	}

	return nil
}

type deliverer interface {
	NotifySeller(ctx context.Context, seller entity.Seller, claim entity.Claim) error
	NotifyAutomation(ctx context.Context, claim entity.Claim) error
}

// Handlers — воркерная сторона очереди: разбирает задачу и доставляет
// уведомление. Ошибка доставки отдаётся asynq на ретрай.
type Handlers struct {
	deliverer deliverer
}

func NewHandlers(deliverer deliverer) *Handlers {
	return &Handlers{deliverer: deliverer}
}

func (h *Handlers) HandleNotifySeller(ctx context.Context, task *asynq.Task) error {
	payload, err := parsePayload(task)
	if err != nil {
		return err
	}

	if err := h.deliverer.NotifySeller(ctx, payload.Seller, payload.Claim); err != nil {
		return fmt.Errorf("deliverer.NotifySeller: %w", err)
	}

	return nil
}

func (h *Handlers) HandleNotifyAutomation(ctx context.Context, task *asynq.Task) error {
	payload, err := parsePayload(task)
	if err != nil {
		return err
	}

	if err := h.deliverer.NotifyAutomation(ctx, payload.Claim); err != nil {
		return fmt.Errorf("deliverer.NotifyAutomation: %w", err)
	}

	return nil
}

// Битый payload ретраить бессмысленно.
func parsePayload(task *asynq.Task) (notifyPayload, error) {
	var payload notifyPayload

	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return notifyPayload{}, fmt.Errorf("json.Unmarshal: %v: %w", err, asynq.SkipRetry)
	}

	return payload, nil
}
