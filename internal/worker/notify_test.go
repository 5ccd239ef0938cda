package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"dealdesk/internal/domain/entity"
)

type fakeDeliverer struct {
	sellers    []entity.Seller
	claims     []entity.Claim
	automation []entity.Claim
	err        error
}

func (f *fakeDeliverer) NotifySeller(_ context.Context, seller entity.Seller, claim entity.Claim) error {
	f.sellers = append(f.sellers, seller)
	f.claims = append(f.claims, claim)

	return f.err
}

func (f *fakeDeliverer) NotifyAutomation(_ context.Context, claim entity.Claim) error {
	f.automation = append(f.automation, claim)
	return f.err
}

func notifyTask(t *testing.T, typename string) *asynq.Task {
	t.Helper()

	payload := notifyPayload{
		Seller: entity.Seller{RecordID: "selRec1", Code: "SE-00007"},
		Claim: entity.Claim{
			RecordID:      "invRec1",
			ProductName:   "Shoe A",
			PurchasePrice: 100.00,
			PurchaseDate:  time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC),
		},
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return asynq.NewTask(typename, raw)
}

func TestHandleNotifySeller(t *testing.T) {
	rq := require.New(t)
	d := &fakeDeliverer{}

	err := NewHandlers(d).HandleNotifySeller(context.Background(), notifyTask(t, TypeNotifySeller))
	rq.NoError(err)

	rq.Len(d.sellers, 1)
	rq.Equal("SE-00007", d.sellers[0].Code)
	rq.Equal("invRec1", d.claims[0].RecordID)
}

func TestHandleNotifyAutomation(t *testing.T) {
	rq := require.New(t)
	d := &fakeDeliverer{}

	err := NewHandlers(d).HandleNotifyAutomation(context.Background(), notifyTask(t, TypeNotifyAutomation))
	rq.NoError(err)
	rq.Len(d.automation, 1)
}

func TestHandleDeliveryErrorIsRetryable(t *testing.T) {
	rq := require.New(t)
	d := &fakeDeliverer{err: errors.New("webhook down")}

	err := NewHandlers(d).HandleNotifySeller(context.Background(), notifyTask(t, TypeNotifySeller))
	rq.Error(err)
	rq.False(errors.Is(err, asynq.SkipRetry))
}

func TestHandleMalformedPayloadSkipsRetry(t *testing.T) {
	rq := require.New(t)

	task := asynq.NewTask(TypeNotifySeller, []byte("{broken"))

	err := NewHandlers(&fakeDeliverer{}).HandleNotifySeller(context.Background(), task)
	rq.Error(err)
	rq.True(errors.Is(err, asynq.SkipRetry))
}
