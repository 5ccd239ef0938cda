package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	service "dealdesk/internal/domain/service/deal"
	"dealdesk/pkg/errcodes"
	"dealdesk/pkg/rest"
	"dealdesk/pkg/tests"
)

type fakeDealService struct {
	published []entity.Deal
	disabled  []string

	publishErr error
	disableErr error
	claimErr   error
}

func (f *fakeDealService) Publish(_ context.Context, deal entity.Deal) ([]service.PostedCard, error) {
	if f.publishErr != nil {
		return nil, f.publishErr
	}

	f.published = append(f.published, deal)

	return []service.PostedCard{
		{ChatID: -1001, MessageID: "101"},
		{ChatID: -1002, MessageID: "102"},
	}, nil
}

func (f *fakeDealService) Disable(_ context.Context, orderRecordID string) error {
	if f.disableErr != nil {
		return f.disableErr
	}

	f.disabled = append(f.disabled, orderRecordID)

	return nil
}

func (f *fakeDealService) ClaimByOrder(_ context.Context, _, sellerCode string) (*service.ClaimResult, error) {
	if f.claimErr != nil {
		return nil, f.claimErr
	}

	return &service.ClaimResult{
		Seller: entity.Seller{RecordID: "selRec1", Code: "SE-00007"},
		Claim:  entity.Claim{RecordID: "invRec1"},
	}, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newTestAPI(t *testing.T, svc *fakeDealService) tests.APIClient {
	t.Helper()

	router := chi.NewRouter()
	NewServer(NewDealServer(svc)).RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return tests.NewAPIClient(srv.URL, nil)
}

func TestPostV1Deal(t *testing.T) {
	rq := require.New(t)
	svc := &fakeDealService{}
	api := newTestAPI(t, svc)

	request := rest.CreateDealRequest{
		ProductName: "Shoe A",
		SKU:         "SKU1",
		Size:        "42",
		Brand:       "B",
		StartPayout: 100.00,
		DealID:      "D-100",
		RecordID:    "ordRec1",
	}

	var response rest.CreateDealResponse

	resp, err := api.Post(context.Background(), "/v1/deals", nil, request, &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal([]string{"101", "102"}, response.MessageIDs)

	rq.Len(svc.published, 1)
	rq.Equal("ordRec1", svc.published[0].OrderRecordID)
}

func TestPostV1DealValidation(t *testing.T) {
	rq := require.New(t)
	api := newTestAPI(t, &fakeDealService{})

	var errResp errorResponse

	resp, err := api.PostJSON(context.Background(), "/v1/deals", nil,
		`{"sku":"SKU1","size":"42","brand":"B","startPayout":100}`, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.ValidationError.String(), errResp.Code)
}

func TestPostV1DealClaim(t *testing.T) {
	rq := require.New(t)
	api := newTestAPI(t, &fakeDealService{})

	var response rest.ClaimDealResponse

	resp, err := api.Post(context.Background(), "/v1/deals/claim", nil,
		rest.ClaimDealRequest{OrderRecordID: "ordRec1", SellerCode: "00007"}, &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("SE-00007", response.SellerCode)
	rq.Equal("invRec1", response.InventoryRecord)
}

func TestPostV1DealClaimConflict(t *testing.T) {
	rq := require.New(t)
	svc := &fakeDealService{
		claimErr: domain.NewError(errcodes.DealAlreadyClaimed, "this deal has already been claimed"),
	}
	api := newTestAPI(t, svc)

	var errResp errorResponse

	resp, err := api.Post(context.Background(), "/v1/deals/claim", nil,
		rest.ClaimDealRequest{OrderRecordID: "ordRec1", SellerCode: "00007"}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusConflict, resp.StatusCode)
	rq.Equal(errcodes.DealAlreadyClaimed.String(), errResp.Code)
}

func TestPostV1DealDisable(t *testing.T) {
	rq := require.New(t)
	svc := &fakeDealService{}
	api := newTestAPI(t, svc)

	resp, err := api.Post(context.Background(), "/v1/deals/disable", nil,
		rest.DisableDealRequest{RecordID: "ordRec1"}, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal([]string{"ordRec1"}, svc.disabled)
}

func TestPostV1DealDisableNotFound(t *testing.T) {
	rq := require.New(t)
	svc := &fakeDealService{
		disableErr: domain.NewError(errcodes.OrderNotFound, "order record not found"),
	}
	api := newTestAPI(t, svc)

	var errResp errorResponse

	resp, err := api.Post(context.Background(), "/v1/deals/disable", nil,
		rest.DisableDealRequest{RecordID: "ordMissing"}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(errcodes.OrderNotFound.String(), errResp.Code)
}
